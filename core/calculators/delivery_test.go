package calculators

import (
	"testing"

	"cabinet-cost/core/types"
)

func TestEstimateDeliveryTrips(t *testing.T) {
	// Two cabinets totalling 22 m3 against a 15 m3 truck: two trips.
	products := &types.ProductList{Products: []types.Product{
		{Item: "1", Description: "Pantry", Qty: 1, WidthMM: 2000, HeightMM: 2750, DepthMM: 2000},
		{Item: "2", Description: "Island", Qty: 1, WidthMM: 2000, HeightMM: 2750, DepthMM: 2000},
	}}

	got := EstimateDelivery(products, types.Document{}, types.Document{})

	if got.CBM != 22 {
		t.Errorf("cbm = %v, want 22", got.CBM)
	}
	if got.Trips != 2 {
		t.Errorf("trips = %d, want 2", got.Trips)
	}
	// Load scales with fill: 22/15 * 3h; unload and travel per trip; one
	// admin hour.
	if got.LoadHours != 4.4 {
		t.Errorf("load hours = %v, want 4.4", got.LoadHours)
	}
	if got.UnloadHours != 1 || got.TravelHours != 2 || got.AdminHours != 1 {
		t.Errorf("unload/travel/admin = %v/%v/%v, want 1/2/1", got.UnloadHours, got.TravelHours, got.AdminHours)
	}
	if got.TotalHours != 8.4 {
		t.Errorf("total hours = %v, want 8.4", got.TotalHours)
	}
	if !got.Cost.Equal(dec(924)) {
		t.Errorf("cost = %s, want 924 (8.4h at 110)", got.Cost)
	}
}

func TestEstimateDeliveryStepLoad(t *testing.T) {
	products := &types.ProductList{Products: []types.Product{
		{Item: "1", Qty: 1, WidthMM: 1000, HeightMM: 1000, DepthMM: 1000},
	}}
	rates := types.Document{
		"delivery": map[string]any{"scale_load_with_fill": false},
	}

	got := EstimateDelivery(products, rates, types.Document{})

	// One partial trip still loads as a full trip when scaling is off.
	if got.Trips != 1 {
		t.Errorf("trips = %d, want 1", got.Trips)
	}
	if got.LoadHours != 3 {
		t.Errorf("load hours = %v, want 3", got.LoadHours)
	}
}

func TestEstimateDeliveryExcludedProducts(t *testing.T) {
	products := &types.ProductList{Products: []types.Product{
		{Item: "1", Qty: 1, WidthMM: 2000, HeightMM: 2000, DepthMM: 2000},
		{Item: "2", Qty: 1, WidthMM: 2000, HeightMM: 2000, DepthMM: 2000},
	}}
	overrides := types.Document{"2": map[string]any{"exclude": true}}

	got := EstimateDelivery(products, types.Document{}, overrides)

	if got.CBM != 8 {
		t.Errorf("cbm = %v, want 8 (excluded product skipped)", got.CBM)
	}
}

func TestEstimateDeliveryEmptyJobStillAdmins(t *testing.T) {
	got := EstimateDelivery(&types.ProductList{}, types.Document{}, types.Document{})

	if got.Trips != 0 {
		t.Errorf("trips = %d, want 0", got.Trips)
	}
	// Admin time applies once per job regardless of volume.
	if got.TotalHours != 1 {
		t.Errorf("total hours = %v, want 1", got.TotalHours)
	}
	if !got.Cost.Equal(dec(110)) {
		t.Errorf("cost = %s, want 110", got.Cost)
	}
}
