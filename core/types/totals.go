package types

import "github.com/shopspring/decimal"

// Category is a cost category of the estimate.
type Category string

const (
	CategoryMaterials  Category = "materials"
	CategoryEdgeband   Category = "edgeband"
	CategoryHardware   Category = "hardware"
	CategoryCNC        Category = "cnc"
	CategoryPanelSaw   Category = "panel_saw"
	CategoryAssembly   Category = "assembly"
	CategoryInstall    Category = "install"
	CategoryFingerPull Category = "finger_pull"
	CategoryDelivery   Category = "delivery"
	CategoryOverhead   Category = "overhead"

	// CategoryAllowances and CategorySurcharges are optional pass-through
	// lines added by policy; they are absent unless configured.
	CategoryAllowances Category = "allowances"
	CategorySurcharges Category = "surcharges"
)

// CategoryOrder is the fixed display and iteration order for categories.
var CategoryOrder = []Category{
	CategoryMaterials,
	CategoryEdgeband,
	CategoryHardware,
	CategoryCNC,
	CategoryPanelSaw,
	CategoryAssembly,
	CategoryInstall,
	CategoryFingerPull,
	CategoryDelivery,
	CategoryOverhead,
	CategoryAllowances,
	CategorySurcharges,
}

// CategoryTotals maps categories to ex-GST costs.
type CategoryTotals map[Category]decimal.Decimal

// Get returns the total for a category, zero when absent.
func (t CategoryTotals) Get(c Category) decimal.Decimal {
	if v, ok := t[c]; ok {
		return v
	}
	return decimal.Zero
}

// Sum returns the sum of every category total.
func (t CategoryTotals) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range t {
		total = total.Add(v)
	}
	return total
}

// Clone returns a copy of the totals map.
func (t CategoryTotals) Clone() CategoryTotals {
	out := make(CategoryTotals, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// PriceSummary is the margin-adjusted, GST-inclusive price of a job.
// GST is always recomputed from the final (rounded) ex-GST price.
type PriceSummary struct {
	// SubtotalExGST is the sum of category costs before margin
	SubtotalExGST decimal.Decimal `json:"subtotal_ex_gst"`

	// PriceExGST is the margin-adjusted, rounded price
	PriceExGST decimal.Decimal `json:"price_ex_gst"`

	// GST is PriceExGST times the GST rate
	GST decimal.Decimal `json:"gst"`

	// TotalIncGST is PriceExGST plus GST
	TotalIncGST decimal.Decimal `json:"total_inc_gst"`
}
