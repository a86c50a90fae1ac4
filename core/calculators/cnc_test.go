package calculators

import (
	"testing"

	"cabinet-cost/core/types"
)

func TestEstimateMachiningSplit(t *testing.T) {
	materials := MaterialsResult{Items: []MaterialRow{
		{Material: "CNC Board", Qty: 2, AreaM2: 5.76},
		{Material: "Melamine White", Qty: 4, AreaM2: 11.52},
	}}
	overrides := types.Document{
		"Melamine White": map[string]any{"panel_saw": true},
	}

	got := EstimateMachining(materials, types.Document{}, overrides)

	// CNC sees only the unflagged area: 5.76 m2 at 10 m2/h.
	if got.CNC.Hours != 0.58 {
		t.Errorf("cnc hours = %v, want 0.58", got.CNC.Hours)
	}
	if !got.CNC.Cost.Equal(dec(86.4)) {
		t.Errorf("cnc cost = %s, want 86.40", got.CNC.Cost)
	}
	// Panel saw sees the flagged sheets: 4 sheets at 15 min each.
	if got.PanelSaw.Hours != 1 {
		t.Errorf("panel saw hours = %v, want 1", got.PanelSaw.Hours)
	}
	if !got.PanelSaw.Cost.Equal(dec(120)) {
		t.Errorf("panel saw cost = %s, want 120", got.PanelSaw.Cost)
	}
}

func TestEstimateMachiningRatePreference(t *testing.T) {
	materials := MaterialsResult{Items: []MaterialRow{
		{Material: "Board", Qty: 1, AreaM2: 10},
	}}
	rates := types.Document{
		"machine_rental": map[string]any{"cnc": 80.0},
		"machine_rates":  map[string]any{"cnc": 150.0},
	}

	got := EstimateMachining(materials, rates, types.Document{})

	// Rental rate wins over the machine rate: 1 hour at 80.
	if !got.CNC.Cost.Equal(dec(80)) {
		t.Errorf("cnc cost = %s, want 80", got.CNC.Cost)
	}
}

func TestEstimateMachiningEmpty(t *testing.T) {
	got := EstimateMachining(MaterialsResult{}, types.Document{}, types.Document{})
	if got.CNC.Hours != 0 || got.PanelSaw.Hours != 0 {
		t.Errorf("empty materials produced hours %v/%v, want zero", got.CNC.Hours, got.PanelSaw.Hours)
	}
	if !got.CNC.Cost.IsZero() || !got.PanelSaw.Cost.IsZero() {
		t.Errorf("empty materials produced costs %s/%s, want zero", got.CNC.Cost, got.PanelSaw.Cost)
	}
}
