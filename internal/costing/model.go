package costing

import "fmt"

// Status is the reason a line's cost was or was not computable.
type Status string

const (
	StatusOK               Status = "OK"
	StatusMissingQty       Status = "Missing qty"
	StatusMissingPurchUnit Status = "Missing purch unit"
	StatusMissingPrice     Status = "Missing price"
	StatusNeedsConversion  Status = "Needs conversion"
)

// Display renders the status the way the UI shows it. A cost derived through
// intermediate units is still OK but says how many edges it crossed.
func (s Status) Display(hops int) string {
	if s == StatusOK && hops > 0 {
		return fmt.Sprintf("OK (%d hops)", hops)
	}
	return string(s)
}

// GlobalVendor marks a conversion edge as applicable regardless of vendor.
const GlobalVendor int64 = 0

// ConversionEdge records that QtyA of UnitA equals QtyB of UnitB for an item.
// VendorID narrows the edge to one vendor; GlobalVendor applies everywhere.
type ConversionEdge struct {
	ItemID   int64
	VendorID int64
	UnitA    int64
	UnitB    int64
	QtyA     float64
	QtyB     float64
}

// PriceQuote is a resolved unit price together with the vendor quoting it.
type PriceQuote struct {
	Price    float64
	VendorID int64
}

// PurchaseUnitAssignment links an item to a unit its prices are quoted in.
type PurchaseUnitAssignment struct {
	UnitID    int64
	IsDefault bool
}

// Line is one engine input: a quantity of an item expressed in a recipe unit.
// A zero UnitID means the caller did not supply a unit.
type Line struct {
	ItemID int64   `json:"item_id"`
	UnitID int64   `json:"unit_id"`
	Qty    float64 `json:"qty"`
}

// LineResult is the outcome for one input line, including the display fields
// the browse surfaces render.
type LineResult struct {
	ItemID        int64    `json:"item_id"`
	ItemName      string   `json:"item_name"`
	UnitID        int64    `json:"unit_id,omitempty"`
	UnitName      string   `json:"unit_name"`
	Qty           float64  `json:"qty"`
	PurchUnitID   int64    `json:"purch_unit_id,omitempty"`
	PurchUnitName string   `json:"purch_unit_name"`
	Price         *float64 `json:"price"`
	PriceVendorID int64    `json:"price_vendor_id,omitempty"`
	ExtendedCost  *float64 `json:"extended_cost"`
	Hops          int      `json:"hops,omitempty"`
	Status        Status   `json:"-"`
	CostStatus    string   `json:"cost_status"`
}

// Result is the aggregate over one batch of lines. TotalCost sums only lines
// that produced a cost; MissingCosts counts every other line.
type Result struct {
	Lines        []LineResult `json:"lines"`
	TotalCost    float64      `json:"total_cost"`
	MissingCosts int64        `json:"missing_costs"`
}
