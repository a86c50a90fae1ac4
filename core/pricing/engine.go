// Package pricing converts aggregated category costs into a margin-adjusted,
// rounded, GST-inclusive price, and reconciles the client-facing category
// breakdown with that price.
package pricing

import (
	"github.com/shopspring/decimal"

	"cabinet-cost/core/types"
)

// Defaults used when policy or rates omit the corresponding keys.
const (
	DefaultTargetMargin = 0.30
	DefaultGSTRate      = 0.10
	DefaultRounding     = 10.0
)

// marginDenominator returns 1-margin floored at a small epsilon so a
// misconfigured 100% margin cannot divide by zero.
func marginDenominator(margin float64) decimal.Decimal {
	d := 1.0 - margin
	if d < 0.0001 {
		d = 0.0001
	}
	return decimal.NewFromFloat(d)
}

// Price aggregates the category totals into a PriceSummary. The subtotal is
// grossed up by the target margin and rounded half-up to the configured
// increment; GST and the inc-GST total are always recomputed from the final
// rounded ex-GST price, never from the pre-rounding figure.
func Price(totals types.CategoryTotals, rates, policy types.Document) types.PriceSummary {
	margin := policy.Float("target_margin", DefaultTargetMargin)
	gstRate := decimal.NewFromFloat(rates.Section("taxes").Float("gst", DefaultGSTRate))
	rounding := policy.Float("rounding", DefaultRounding)

	subtotal := totals.Sum()
	price := subtotal.Div(marginDenominator(margin))

	if rounding > 0 {
		price = roundHalfUpTo(price, decimal.NewFromFloat(rounding))
	}

	gst := price.Mul(gstRate).Round(2)
	return types.PriceSummary{
		SubtotalExGST: subtotal.Round(2),
		PriceExGST:    price.Round(2),
		GST:           gst,
		TotalIncGST:   price.Add(gst).Round(2),
	}
}

// AddPassThrough adds a cost on top of an already-priced summary without
// margin: subtotal and price both grow by the amount and GST is recomputed
// from the new final price.
func AddPassThrough(summary types.PriceSummary, amount decimal.Decimal, rates types.Document) types.PriceSummary {
	gstRate := decimal.NewFromFloat(rates.Section("taxes").Float("gst", DefaultGSTRate))

	price := summary.PriceExGST.Add(amount).Round(2)
	gst := price.Mul(gstRate).Round(2)
	return types.PriceSummary{
		SubtotalExGST: summary.SubtotalExGST.Add(amount).Round(2),
		PriceExGST:    price,
		GST:           gst,
		TotalIncGST:   price.Add(gst).Round(2),
	}
}

// roundHalfUpTo rounds v half-up to the nearest positive increment:
// floor((v + inc/2) / inc) * inc.
func roundHalfUpTo(v, inc decimal.Decimal) decimal.Decimal {
	half := inc.Div(decimal.NewFromInt(2))
	return v.Add(half).Div(inc).Floor().Mul(inc)
}
