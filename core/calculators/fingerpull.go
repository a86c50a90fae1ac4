package calculators

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"cabinet-cost/core/types"
)

var (
	fpDrawerRe = regexp.MustCompile(`(?i)base\s+(\d+)\s+drawer`)
	fpDoorRe   = regexp.MustCompile(`(?i)base\s+(\d+)\s+door`)
)

// FingerPullResult is the finger-pull surcharge estimate. Beyond its own
// cost, applied parts add assembly and install minutes and remove one edged
// side each from the parts-based edgeband time.
type FingerPullResult struct {
	ComputedDoors   int             `json:"computed_doors"`
	ComputedDrawers int             `json:"computed_drawers"`
	AppliedDoors    int             `json:"applied_doors"`
	AppliedDrawers  int             `json:"applied_drawers"`
	TotalParts      int             `json:"total_parts"`
	PerPartFee      decimal.Decimal `json:"per_part_fee"`
	PickupFee       decimal.Decimal `json:"pickup_fee"`
	Cost            decimal.Decimal `json:"cost"`
	AssemblyHours   float64         `json:"assembly_hours"`
	InstallHours    float64         `json:"install_hours"`
	EdgesRemoved    int             `json:"edges_removed"`
}

// EstimateFingerPull counts finger-pull doors and drawers from base-cabinet
// descriptions, applies override counts and subtractions, and prices the
// applied parts plus a one-time pickup fee.
func EstimateFingerPull(products *types.ProductList, rates, fpOverrides types.Document) FingerPullResult {
	defaults := rates.Section("finger_pull")

	applyDoors := fpOverrides.Bool("apply_doors", true)
	applyDrawers := fpOverrides.Bool("apply_drawers", true)
	baseOnly := fpOverrides.Bool("base_only", true)
	perPartFee := fpOverrides.Float("per_part_fee", defaults.Float("per_part_fee", 15.5))
	pickupFee := fpOverrides.Float("pickup_fee", defaults.Float("pickup_fee", 35.0))

	computedDoors, computedDrawers := countFingerPullParts(products, baseOnly)

	doors := fpOverrides.Int("override_doors", computedDoors)
	drawers := fpOverrides.Int("override_drawers", computedDrawers)
	doors = maxi(0, doors-fpOverrides.Int("subtract_doors", 0))
	drawers = maxi(0, drawers-fpOverrides.Int("subtract_drawers", 0))

	applied := 0
	appliedDoors, appliedDrawers := 0, 0
	if applyDoors {
		appliedDoors = doors
		applied += doors
	}
	if applyDrawers {
		appliedDrawers = drawers
		applied += drawers
	}

	cost := float64(applied) * perPartFee
	pickup := 0.0
	if applied > 0 {
		pickup = pickupFee
		cost += pickupFee
	}

	asmMinPerPart := defaults.Float("assembly_minutes_per_part", 10)
	instMinPerPart := defaults.Float("install_minutes_per_part", 2)

	return FingerPullResult{
		ComputedDoors:   computedDoors,
		ComputedDrawers: computedDrawers,
		AppliedDoors:    appliedDoors,
		AppliedDrawers:  appliedDrawers,
		TotalParts:      applied,
		PerPartFee:      money(perPartFee),
		PickupFee:       money(pickup),
		Cost:            money(cost),
		AssemblyHours:   round2(float64(applied) * asmMinPerPart / 60.0),
		InstallHours:    round2(float64(applied) * instMinPerPart / 60.0),
		EdgesRemoved:    applied,
	}
}

func countFingerPullParts(products *types.ProductList, baseOnly bool) (doors, drawers int) {
	for _, p := range products.Products {
		if baseOnly && !strings.HasPrefix(strings.ToLower(p.Description), "base") {
			continue
		}
		if m := fpDrawerRe.FindStringSubmatch(p.Description); m != nil {
			drawers += int(types.LenientFloat(m[1]))
		}
		if m := fpDoorRe.FindStringSubmatch(p.Description); m != nil {
			doors += int(types.LenientFloat(m[1]))
		}
	}
	return doors, drawers
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
