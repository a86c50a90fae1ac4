package calculators

import (
	"strings"

	"cabinet-cost/core/hardware"
	"cabinet-cost/core/types"
)

// EstimateAssembly estimates shop assembly time per product using the
// minutes model: an area-driven base floored at a minimum, plus hardware
// adder minutes corrected by the reconciliation scales, plus a fixed setout
// allowance, all scaled by description complexity and per-product override
// complexity. Products described as adjustable kicks take a fixed base
// instead of the area formula.
func EstimateAssembly(products *types.ProductList, inf *hardware.Inference, scales types.ScaleFactors, rules, rates, productOverrides types.Document) LaborResult {
	shopRate := rates.Section("labor_rates").Float("shop", 150)

	asm := rates.Section("assembly")
	baseMinPerM2 := asm.Float("base_minutes_per_m2", 44.44)
	minMinPerProduct := asm.Float("min_minutes_per_product", 10)
	setoutMin := asm.Float("setout_minutes_per_product", 5)

	adders := rules.Section("minutes_adders")
	addDrawer := adders.Float("drawer", 20)
	addInner := adders.Float("inner_drawer", 20)
	addHinge := adders.Float("hinge", 1)
	addFoot := adders.Float("foot", 1)
	addBin := adders.Float("bin", 25)

	complexity := rules.Section("complexity")

	result := LaborResult{}
	totalHours := 0.0
	for _, p := range products.Products {
		comp := complexityMultiplier(p.Description, complexity)
		ov := overrideFor(productOverrides, p.Item)

		hours := 0.0
		if !ov.Bool("exclude", false) {
			extraComp := ov.Float("complexity", 1.0)
			if extraComp <= 0 {
				extraComp = 1.0
			}
			var minutes float64
			if strings.Contains(strings.ToLower(p.Description), "adjustable kick") {
				minutes = 20.0 * comp * extraComp
			} else {
				areaMin := maxf(minMinPerProduct, p.AreaM2()*baseMinPerM2)
				c := inf.CountsFor(p.Item)
				addMin := c[types.InferredDrawers]*scales.Get(types.InferredDrawers)*addDrawer +
					c[types.InferredInnerDrawers]*scales.Get(types.InferredInnerDrawers)*addInner +
					c[types.InferredHinges]*scales.Get(types.InferredHinges)*addHinge +
					c[types.InferredFeet]*scales.Get(types.InferredFeet)*addFoot +
					c[types.InferredBins]*scales.Get(types.InferredBins)*addBin
				minutes = (areaMin + addMin + setoutMin) * comp * extraComp
			}
			hours = (minutes / 60.0) * float64(p.Quantity())
		}

		result.Products = append(result.Products, ProductRow{
			Item:        p.Item,
			Description: p.Description,
			Room:        p.Room,
			WidthMM:     p.WidthMM,
			HeightMM:    p.HeightMM,
			DepthMM:     p.DepthMM,
			Qty:         p.Quantity(),
			Hours:       round2(hours),
		})
		totalHours += hours
	}

	result.Hours = round2(totalHours)
	result.Cost = money(totalHours * shopRate)
	return result
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
