package calculators

import (
	"testing"

	"cabinet-cost/core/hardware"
	"cabinet-cost/core/types"
)

func installRates() types.Document {
	return types.Document{
		"install_team": map[string]any{
			"two_person_fraction": 0.8,
			"one_person_fraction": 0.2,
			"two_person_rate":     190.0,
			"one_person_rate":     95.0,
		},
	}
}

func TestBlendedInstallRate(t *testing.T) {
	// 0.8*190 + 0.2*95 = 171
	if got := BlendedInstallRate(installRates()); !got.Equal(dec(171)) {
		t.Errorf("blended rate = %s, want 171", got)
	}
}

func TestCrewModelNormalizesFractions(t *testing.T) {
	rates := types.Document{
		"install_team": map[string]any{
			"two_person_fraction": 1.0,
			"one_person_fraction": 1.0,
			"two_person_rate":     190.0,
			"one_person_rate":     95.0,
		},
	}
	crew := crewModel(rates)
	if crew.TwoPersonFraction != 0.5 || crew.OnePersonFraction != 0.5 {
		t.Errorf("fractions = %v/%v, want 0.5/0.5", crew.TwoPersonFraction, crew.OnePersonFraction)
	}
	if !crew.BlendedRate.Equal(dec(142.5)) {
		t.Errorf("blended rate = %s, want 142.50", crew.BlendedRate)
	}
}

func TestCrewModelZeroFractionsCollapseToTwoPerson(t *testing.T) {
	rates := types.Document{
		"install_team": map[string]any{
			"two_person_fraction": 0.0,
			"one_person_fraction": 0.0,
			"two_person_rate":     190.0,
		},
	}
	crew := crewModel(rates)
	if crew.TwoPersonFraction != 1.0 || crew.OnePersonFraction != 0.0 {
		t.Errorf("fractions = %v/%v, want 1/0", crew.TwoPersonFraction, crew.OnePersonFraction)
	}
}

func TestEstimateInstallManualHours(t *testing.T) {
	rates := installRates()
	rates["defaults"] = map[string]any{"install_hours": 40.0}

	products := &types.ProductList{Products: []types.Product{
		{Item: "P1", Description: "Base 2 Drawer", Qty: 1, WidthMM: 600, HeightMM: 720, DepthMM: 560},
	}}
	inf := hardware.Infer(products.Products, 2)

	got := EstimateInstall(products, inf, types.NewScaleFactors(), types.Document{}, rates, types.Document{})

	if got.Hours != 40 {
		t.Errorf("site hours = %v, want the 40-hour manual figure", got.Hours)
	}
	if !got.Cost.Equal(dec(6840)) {
		t.Errorf("cost = %s, want 6840 (40h at blended 171)", got.Cost)
	}
	// 40 site hours at a 1.8-person average crew.
	if got.PersonHours != 72 {
		t.Errorf("person hours = %v, want 72", got.PersonHours)
	}
	if got.Products != nil {
		t.Errorf("manual mode should not produce per-product rows, got %d", len(got.Products))
	}
}

func TestEstimateInstallPerProduct(t *testing.T) {
	products := &types.ProductList{Products: []types.Product{
		{Item: "P1", Description: "Wall unit", Qty: 1, WidthMM: 1000, HeightMM: 1000, DepthMM: 300},
	}}
	inf := hardware.Infer(products.Products, 2)

	got := EstimateInstall(products, inf, types.NewScaleFactors(), types.Document{}, installRates(), types.Document{})

	// 30 minutes of person time over a 1.8-person crew.
	if got.PersonHours != 0.5 {
		t.Errorf("person hours = %v, want 0.5", got.PersonHours)
	}
	if got.Hours != 0.28 {
		t.Errorf("site hours = %v, want 0.28", got.Hours)
	}
	if !got.Cost.Equal(dec(47.5)) {
		t.Errorf("cost = %s, want 47.50", got.Cost)
	}
}

func TestEstimateInstallSpecialCases(t *testing.T) {
	tests := []struct {
		name        string
		desc        string
		widthMM     float64
		wantPersonH float64
	}{
		{"floating shelf scales with width", "Floating Shelf", 2000, 1.0},
		{"adjustable kick scales with width", "Adjustable Kick", 2000, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := &types.ProductList{Products: []types.Product{
				{Item: "S1", Description: tt.desc, Qty: 1, WidthMM: tt.widthMM, HeightMM: 200, DepthMM: 300},
			}}
			inf := hardware.Infer(products.Products, 2)

			got := EstimateInstall(products, inf, types.NewScaleFactors(), types.Document{}, installRates(), types.Document{})

			if got.PersonHours != tt.wantPersonH {
				t.Errorf("person hours = %v, want %v", got.PersonHours, tt.wantPersonH)
			}
		})
	}
}

func TestEstimateInstallExclude(t *testing.T) {
	products := &types.ProductList{Products: []types.Product{
		{Item: "X1", Description: "Wall unit", Qty: 1, WidthMM: 1000, HeightMM: 1000, DepthMM: 300},
	}}
	inf := hardware.Infer(products.Products, 2)
	overrides := types.Document{"X1": map[string]any{"exclude": true}}

	got := EstimateInstall(products, inf, types.NewScaleFactors(), types.Document{}, installRates(), overrides)

	if got.Hours != 0 || !got.Cost.IsZero() {
		t.Errorf("excluded product produced hours=%v cost=%s, want zero", got.Hours, got.Cost)
	}
}
