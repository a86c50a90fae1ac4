package pricing

import (
	"github.com/shopspring/decimal"

	"cabinet-cost/core/types"
)

// ResidualCategory absorbs the rounding residue of the client display so
// the breakdown sums exactly to the rounded price. The choice of install
// is historical and must be kept for output compatibility.
const ResidualCategory = types.CategoryInstall

// ReconcileDisplay builds the client-facing category breakdown: every cost
// category that entered pricing under the margin — allowances included — is
// independently grossed up by the margin factor and rounded to cents,
// surcharges are carried at face value (they ride on top of the price,
// unmargined), and the residual between the final rounded price and the
// scaled sum is assigned entirely to the residual category. The returned
// map always sums exactly to summary.PriceExGST.
func ReconcileDisplay(totals types.CategoryTotals, summary types.PriceSummary, policy types.Document) types.CategoryTotals {
	margin := policy.Float("target_margin", DefaultTargetMargin)
	factor := decimal.NewFromInt(1).Div(marginDenominator(margin))

	display := make(types.CategoryTotals, len(totals))
	for cat, v := range totals {
		if cat == types.CategorySurcharges {
			display[cat] = v.Round(2)
			continue
		}
		display[cat] = v.Mul(factor).Round(2)
	}
	// The residual category must exist even when it had no cost.
	if _, ok := display[ResidualCategory]; !ok {
		display[ResidualCategory] = decimal.Zero
	}

	delta := summary.PriceExGST.Sub(display.Sum()).Round(2)
	display[ResidualCategory] = display[ResidualCategory].Add(delta).Round(2)
	return display
}
