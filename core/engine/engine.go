// Package engine orchestrates a full job estimate: it applies the override
// document, runs the hardware reconciliation and the category calculators,
// prices the aggregate and reconciles the client display. Estimate is pure
// and synchronous; all I/O happens in the callers.
package engine

import (
	"math"

	"github.com/shopspring/decimal"

	"cabinet-cost/core/calculators"
	"cabinet-cost/core/hardware"
	"cabinet-cost/core/overrides"
	"cabinet-cost/core/pricing"
	"cabinet-cost/core/types"
	"cabinet-cost/internal/config"
)

// Result is the complete job estimate: internal cost totals, the priced
// summary, the client display breakdown and every per-category detail.
type Result struct {
	Totals  types.CategoryTotals `json:"totals"`
	Summary types.PriceSummary   `json:"summary"`
	Display types.CategoryTotals `json:"display"`

	Classified types.HardwareCounts `json:"classified"`
	Predicted  types.InferredCounts `json:"predicted"`
	Scales     types.ScaleFactors   `json:"scales"`

	Materials    calculators.MaterialsResult  `json:"materials"`
	Edgeband     calculators.EdgebandResult   `json:"edgeband"`
	HardwareCost decimal.Decimal              `json:"hardware_cost"`
	Machining    calculators.MachiningResult  `json:"machining"`
	Assembly     calculators.LaborResult      `json:"assembly"`
	Install      calculators.InstallResult    `json:"install"`
	FingerPull   calculators.FingerPullResult `json:"finger_pull"`
	Delivery     calculators.DeliveryResult   `json:"delivery"`
	Overhead     decimal.Decimal              `json:"overhead"`
	Allowances   decimal.Decimal              `json:"allowances"`
	Surcharges   decimal.Decimal              `json:"surcharges"`
}

// Estimate runs the estimation pipeline over one job. The override document
// is merged over base configuration once, up front; the effective snapshot
// then feeds every calculator. parts may be nil when no part rows exist, in
// which case edgeband time comes from the linear-meter model.
func Estimate(boq types.BillOfQuantities, products types.ProductList, parts *types.PartsList, cfg *config.JobConfig, ov types.Document) *Result {
	rates := overrides.Merge(cfg.Rates, ov.Section("rates"))
	policy := overrides.Merge(cfg.Policy, ov.Section("policy"))
	rules := overrides.Merge(cfg.AssemblyRules, ov.Section("assembly_rules"))
	productOv := ov.Section("products")
	materialOv := ov.Section("materials")
	fpOv := ov.Section("finger_pull")

	res := &Result{}

	res.Materials = calculators.EstimateMaterials(boq.Sheets, cfg.Materials, policy, cfg.MaterialsPricing)
	res.Edgeband = calculators.EstimateEdgeband(boq.Edgeband, cfg.Edgeband, rates)
	res.HardwareCost = calculators.EstimateHardwareCost(boq.Hardware, cfg.Hardware, cfg.HardwareAliases)
	res.Machining = calculators.EstimateMachining(res.Materials, rates, materialOv)

	res.Classified = hardware.Classify(boq.Hardware)
	hingesPerDoor := rules.Section("minutes_adders").Int("hinges_per_door", hardware.DefaultHingesPerDoor)
	inf := hardware.Infer(products.Products, hingesPerDoor)
	res.Predicted = inf.Predicted
	res.Scales = hardware.Reconcile(res.Classified, inf.Predicted)

	res.Assembly = calculators.EstimateAssembly(&products, inf, res.Scales, rules, rates, productOv)
	res.Install = calculators.EstimateInstall(&products, inf, res.Scales, rules, rates, productOv)
	res.FingerPull = calculators.EstimateFingerPull(&products, rates, fpOv)

	// Finger-pull parts add shop and site labor to their host categories.
	shopRate := rates.Section("labor_rates").Float("shop", 150)
	if fp := res.FingerPull; fp.TotalParts > 0 {
		res.Assembly.Hours = round2(res.Assembly.Hours + fp.AssemblyHours)
		res.Assembly.Cost = res.Assembly.Cost.Add(money(fp.AssemblyHours * shopRate))
		blended := calculators.BlendedInstallRate(rates).InexactFloat64()
		res.Install.Hours = round2(res.Install.Hours + fp.InstallHours)
		res.Install.Cost = res.Install.Cost.Add(money(fp.InstallHours * blended))
	}

	res.Delivery = calculators.EstimateDelivery(&products, rates, productOv)

	defaults := rates.Section("defaults")
	draftingHours := defaults.Float("drafting_hours", 10)
	pmHours := defaults.Float("pm_hours", 10)
	res.Overhead = calculators.AllocateOverhead(draftingHours, pmHours, res.Assembly.Hours, rates)

	applyEdgebandTime(res, parts, rates)

	totals := types.CategoryTotals{
		types.CategoryMaterials:  res.Materials.Total,
		types.CategoryEdgeband:   res.Edgeband.Cost,
		types.CategoryHardware:   res.HardwareCost,
		types.CategoryCNC:        res.Machining.CNC.Cost,
		types.CategoryPanelSaw:   res.Machining.PanelSaw.Cost,
		types.CategoryAssembly:   res.Assembly.Cost,
		types.CategoryInstall:    res.Install.Cost,
		types.CategoryFingerPull: res.FingerPull.Cost,
		types.CategoryDelivery:   res.Delivery.Cost,
		types.CategoryOverhead:   res.Overhead,
	}

	if flat := policy.Section("allowances").Float("flat_aud_ex_gst", 0); flat > 0 {
		res.Allowances = money(flat)
		totals[types.CategoryAllowances] = res.Allowances
	}

	res.Summary = pricing.Price(totals, rates, policy)

	// Percentage surcharges ride on the cost base and pass through the
	// margin untouched.
	if amount := surchargeAmount(totals, policy); amount.IsPositive() {
		res.Surcharges = amount
		totals[types.CategorySurcharges] = amount
		res.Summary = pricing.AddPassThrough(res.Summary, amount, rates)
	}

	res.Totals = totals
	res.Display = pricing.ReconcileDisplay(totals, res.Summary, policy)
	return res
}

// applyEdgebandTime finishes the edgeband category: when part rows exist
// their edge-count time model replaces the linear-meter one, less one edge
// per applied finger-pull part, and the edgebander machine time is costed
// into the category.
func applyEdgebandTime(res *Result, parts *types.PartsList, rates types.Document) {
	eb := rates.Section("edgeband")
	if parts != nil && len(parts.Parts) > 0 {
		minutes := calculators.EdgeMinutesFromParts(parts, rates)
		minutes -= float64(res.FingerPull.EdgesRemoved) * eb.Float("minutes_per_edge", 1.0)
		if minutes < 0 {
			minutes = 0
		}
		res.Edgeband.Hours = round2(minutes / 60.0)
	}

	rental := rates.Section("machine_rental")
	machine := rates.Section("machine_rates")
	rate := rental.Float("edgebander", machine.Float("edgebander", 0))
	if rate > 0 && res.Edgeband.Hours > 0 {
		res.Edgeband.Cost = res.Edgeband.Cost.Add(money(res.Edgeband.Hours * rate))
	}
}

// surchargeAmount sums the configured percentage surcharges over the
// pre-margin cost base. Keys hold whole percents (5 means 5%).
func surchargeAmount(totals types.CategoryTotals, policy types.Document) decimal.Decimal {
	sur := policy.Section("surcharges")
	percent := sur.Float("warranty_percent", 0) + sur.Float("contingency_percent", 0) + sur.Float("merchant_fee_percent", 0)
	if percent <= 0 {
		return decimal.Zero
	}
	return totals.Sum().Mul(decimal.NewFromFloat(percent / 100.0)).Round(2)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
