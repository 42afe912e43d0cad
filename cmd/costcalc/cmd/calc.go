package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/winget-powershelll/fourchef/internal/costing"
	"github.com/winget-powershelll/fourchef/internal/db"
)

// calcCmd prices an ad-hoc list of ingredient lines. Each argument is
// ITEM[:UNIT]=QTY where ITEM and UNIT are ids from the database; a line
// without a unit is priced as Needs conversion, matching the engine.
var calcCmd = &cobra.Command{
	Use:   "calc ITEM[:UNIT]=QTY ...",
	Short: "Cost a list of ingredient lines",
	Example: `  costcalc --db kitchen.db calc 100:2=48
  costcalc calc 100:2=48 214:1=3.5 87=2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := make([]costing.Line, 0, len(args))
		for _, arg := range args {
			line, err := parseLine(arg)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}

		path, err := requireDB()
		if err != nil {
			return err
		}
		conn, err := db.OpenSQLite(path)
		if err != nil {
			return err
		}
		defer conn.Close()

		engine := costing.NewEngine(costing.NewSQLiteStore(conn), nil)
		result, err := engine.EvaluateAll(context.Background(), lines)
		if err != nil {
			return err
		}

		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func parseLine(arg string) (costing.Line, error) {
	ref, qtyPart, ok := strings.Cut(arg, "=")
	if !ok {
		return costing.Line{}, fmt.Errorf("invalid line %q: expected ITEM[:UNIT]=QTY", arg)
	}

	itemPart, unitPart, hasUnit := strings.Cut(ref, ":")
	itemID, err := strconv.ParseInt(itemPart, 10, 64)
	if err != nil {
		return costing.Line{}, fmt.Errorf("invalid item id in %q: %w", arg, err)
	}

	var unitID int64
	if hasUnit {
		unitID, err = strconv.ParseInt(unitPart, 10, 64)
		if err != nil {
			return costing.Line{}, fmt.Errorf("invalid unit id in %q: %w", arg, err)
		}
	}

	qty, err := strconv.ParseFloat(qtyPart, 64)
	if err != nil {
		return costing.Line{}, fmt.Errorf("invalid quantity in %q: %w", arg, err)
	}

	return costing.Line{ItemID: itemID, UnitID: unitID, Qty: qty}, nil
}

func printResult(result *costing.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tQTY\tUNIT\tPRICE\tCOST\tSTATUS")
	for _, lr := range result.Lines {
		price := "-"
		if lr.Price != nil {
			price = fmt.Sprintf("%.2f", *lr.Price)
		}
		cost := "-"
		if lr.ExtendedCost != nil {
			cost = fmt.Sprintf("%.2f", *lr.ExtendedCost)
		}
		fmt.Fprintf(w, "%s\t%g\t%s\t%s\t%s\t%s\n",
			lr.ItemName, lr.Qty, lr.UnitName, price, cost, lr.CostStatus)
	}
	fmt.Fprintf(w, "\t\t\t\tTOTAL\t%.2f\n", result.TotalCost)
	if result.MissingCosts > 0 {
		fmt.Fprintf(w, "\t\t\t\t\t%d line(s) missing cost data\n", result.MissingCosts)
	}
	w.Flush()
}
