package calculators

import (
	"testing"

	"cabinet-cost/core/hardware"
	"cabinet-cost/core/types"
)

func assemblyRates() types.Document {
	return types.Document{
		"labor_rates": map[string]any{"shop": 150.0},
		"assembly": map[string]any{
			"base_minutes_per_m2":        50.0,
			"min_minutes_per_product":    10.0,
			"setout_minutes_per_product": 5.0,
		},
	}
}

func TestEstimateAssemblyScaledAdders(t *testing.T) {
	products := &types.ProductList{Products: []types.Product{
		{Item: "P1", Description: "Base 2 Drawer", Qty: 1, WidthMM: 1000, HeightMM: 1000, DepthMM: 560},
	}}
	inf := hardware.Infer(products.Products, 2)
	scales := types.NewScaleFactors()
	scales[types.InferredDrawers] = 1.5

	rules := types.Document{
		"minutes_adders": map[string]any{"drawer": 20.0, "foot": 1.0},
	}

	got := EstimateAssembly(products, inf, scales, rules, assemblyRates(), types.Document{})

	// area 1 m2 at 50 min/m2, drawers 2*1.5*20, feet 6*1*1, setout 5:
	// 121 minutes, 2.0166 hours.
	if got.Hours != 2.02 {
		t.Errorf("hours = %v, want 2.02", got.Hours)
	}
	if !got.Cost.Equal(dec(302.5)) {
		t.Errorf("cost = %s, want 302.50", got.Cost)
	}
	if len(got.Products) != 1 || got.Products[0].Hours != 2.02 {
		t.Errorf("product rows = %+v, want one row with 2.02 hours", got.Products)
	}
}

func TestEstimateAssemblyAdjustableKick(t *testing.T) {
	products := &types.ProductList{Products: []types.Product{
		{Item: "K1", Description: "Adjustable Kick 2400", Qty: 1, WidthMM: 2400, HeightMM: 150, DepthMM: 560},
	}}
	inf := hardware.Infer(products.Products, 2)

	got := EstimateAssembly(products, inf, types.NewScaleFactors(), types.Document{}, assemblyRates(), types.Document{})

	// Fixed 20-minute base regardless of area or inferred hardware.
	if got.Hours != 0.33 {
		t.Errorf("hours = %v, want 0.33", got.Hours)
	}
	if !got.Cost.Equal(dec(50)) {
		t.Errorf("cost = %s, want 50", got.Cost)
	}
}

func TestEstimateAssemblyComplexity(t *testing.T) {
	products := &types.ProductList{Products: []types.Product{
		{Item: "C1", Description: "Curved wall unit", Qty: 1, WidthMM: 1000, HeightMM: 1200, DepthMM: 300},
	}}
	inf := hardware.Infer(products.Products, 2)
	rules := types.Document{"complexity": map[string]any{"curved": 1.5}}

	got := EstimateAssembly(products, inf, types.NewScaleFactors(), rules, assemblyRates(), types.Document{})

	// (60 area + 5 setout) * 1.5 = 97.5 minutes.
	if got.Hours != 1.63 {
		t.Errorf("hours = %v, want 1.63", got.Hours)
	}
	if !got.Cost.Equal(dec(243.75)) {
		t.Errorf("cost = %s, want 243.75", got.Cost)
	}
}

func TestEstimateAssemblyOverrides(t *testing.T) {
	products := &types.ProductList{Products: []types.Product{
		{Item: "A", Description: "Base unit", Qty: 1, WidthMM: 1000, HeightMM: 1000, DepthMM: 300},
		{Item: "B", Description: "Base unit", Qty: 1, WidthMM: 1000, HeightMM: 1000, DepthMM: 300},
	}}
	inf := hardware.Infer(products.Products, 2)
	overrides := types.Document{
		"A": map[string]any{"exclude": true},
		"B": map[string]any{"complexity": 2.0},
	}

	got := EstimateAssembly(products, inf, types.NewScaleFactors(), types.Document{}, assemblyRates(), overrides)

	if len(got.Products) != 2 {
		t.Fatalf("product rows = %d, want 2", len(got.Products))
	}
	if got.Products[0].Hours != 0 {
		t.Errorf("excluded product hours = %v, want 0", got.Products[0].Hours)
	}
	// (50 + 5) * 2 = 110 minutes for B, A contributes nothing.
	if got.Hours != 1.83 {
		t.Errorf("hours = %v, want 1.83", got.Hours)
	}
}

func TestEstimateAssemblyQuantityMultiplies(t *testing.T) {
	products := &types.ProductList{Products: []types.Product{
		{Item: "Q1", Description: "Wall unit", Qty: 3, WidthMM: 1000, HeightMM: 1000, DepthMM: 300},
	}}
	inf := hardware.Infer(products.Products, 2)

	got := EstimateAssembly(products, inf, types.NewScaleFactors(), types.Document{}, assemblyRates(), types.Document{})

	// 55 minutes each, three off.
	if got.Hours != 2.75 {
		t.Errorf("hours = %v, want 2.75", got.Hours)
	}
}
