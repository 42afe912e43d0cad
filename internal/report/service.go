package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/winget-powershelll/fourchef/internal/costing"
	"github.com/winget-powershelll/fourchef/internal/recipe"
)

type Service struct {
	repo    Repository
	recipes recipe.Repository
	engine  *costing.Engine
	logger  *zap.Logger
}

func NewService(repo Repository, recipes recipe.Repository, engine *costing.Engine, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:    repo,
		recipes: recipes,
		engine:  engine,
		logger:  logger,
	}
}

// --------------------------------------------------
// Rebuild the missing-data report
// --------------------------------------------------
// Recalculate runs the costing engine over every recipe and records, per
// recipe, how many lines were blocked and why. Recipes with no gaps are left
// out of the report.
func (s *Service) Recalculate(ctx context.Context) (*Summary, error) {
	recipes, err := s.recipes.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	var rows []MissingDataRow
	for _, rec := range recipes {
		lines, err := s.recipes.Lines(ctx, rec.RecipeID)
		if err != nil {
			return nil, fmt.Errorf("load lines for recipe %d: %w", rec.RecipeID, err)
		}
		if len(lines) == 0 {
			continue
		}

		input := make([]costing.Line, len(lines))
		for i, line := range lines {
			input[i] = costing.Line{ItemID: line.ItemID, UnitID: line.UnitID, Qty: line.Qty}
		}

		result, err := s.engine.EvaluateAll(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("cost recipe %d: %w", rec.RecipeID, err)
		}

		row := MissingDataRow{RecipeID: rec.RecipeID, RecipeName: rec.Name}
		for _, lr := range result.Lines {
			switch lr.Status {
			case costing.StatusMissingQty:
				row.MissingQty++
			case costing.StatusMissingPurchUnit:
				row.MissingUnit++
			case costing.StatusMissingPrice:
				row.MissingPrice++
			case costing.StatusNeedsConversion:
				row.NeedsConversion++
			}
		}
		if row.MissingQty+row.MissingUnit+row.MissingPrice+row.NeedsConversion > 0 {
			rows = append(rows, row)
		}
	}

	if err := s.repo.ReplaceMissingData(ctx, rows); err != nil {
		return nil, fmt.Errorf("store missing-data report: %w", err)
	}

	summary := &Summary{
		RecipesScanned:  int64(len(recipes)),
		RecipesWithGaps: int64(len(rows)),
	}
	s.logger.Info("recalculated missing-data report",
		zap.Int64("recipes_scanned", summary.RecipesScanned),
		zap.Int64("recipes_with_gaps", summary.RecipesWithGaps),
	)
	return summary, nil
}

// --------------------------------------------------
// Dashboard overview
// --------------------------------------------------
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	itemCount, err := s.repo.CountItemsMissingPurchaseUnit(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListMissingData(ctx)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		ItemsMissingPurchUnit: itemCount,
		RecipesWithGaps:       int64(len(rows)),
	}
	for _, row := range rows {
		overview.LinesNeedingConversion += row.NeedsConversion
	}
	return overview, nil
}

func (s *Service) MissingData(ctx context.Context) ([]MissingDataRow, error) {
	rows, err := s.repo.ListMissingData(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []MissingDataRow{}
	}
	return rows, nil
}
