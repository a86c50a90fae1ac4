// Package calculators holds the per-category estimators that turn bill-of-
// quantity rows and products into hours and ex-GST costs. Each estimator is
// a pure function of its inputs and the effective configuration; lookups
// fall back to explicit defaults so degraded input still yields a complete
// estimate.
package calculators

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"cabinet-cost/core/types"
)

// ProductRow is one per-product line of a labor breakdown.
type ProductRow struct {
	Item        string  `json:"item"`
	Description string  `json:"description"`
	Room        string  `json:"room,omitempty"`
	WidthMM     float64 `json:"width_mm"`
	HeightMM    float64 `json:"height_mm"`
	DepthMM     float64 `json:"depth_mm"`
	Qty         int     `json:"qty"`
	Hours       float64 `json:"hours"`
}

// LaborResult is the common shape of a labor-category estimate.
type LaborResult struct {
	Hours    float64         `json:"hours"`
	Cost     decimal.Decimal `json:"cost"`
	Products []ProductRow    `json:"products"`
}

// complexityMultiplier multiplies together every keyword multiplier whose
// key appears in the description. All matches apply, not just the first.
func complexityMultiplier(desc string, complexity types.Document) float64 {
	comp := 1.0
	dlow := strings.ToLower(desc)
	for key, raw := range complexity {
		if !strings.Contains(dlow, strings.ToLower(key)) {
			continue
		}
		if mult := types.LenientFloat(raw); mult > 0 {
			comp *= mult
		}
	}
	return comp
}

// overrideFor returns the per-product override entry for an item id.
func overrideFor(productOverrides types.Document, item string) types.Document {
	if item == "" {
		return types.Document{}
	}
	return productOverrides.Section(item)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
