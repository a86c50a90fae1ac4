package calculators

import (
	"math"

	"github.com/shopspring/decimal"

	"cabinet-cost/core/types"
)

// DeliveryResult is the loading and delivery estimate derived from total
// cargo volume.
type DeliveryResult struct {
	CBM         float64         `json:"cbm"`
	CapacityCBM float64         `json:"capacity_cbm"`
	Trips       int             `json:"trips"`
	LoadHours   float64         `json:"load_hours"`
	UnloadHours float64         `json:"unload_hours"`
	TravelHours float64         `json:"travel_hours"`
	AdminHours  float64         `json:"admin_hours"`
	TotalHours  float64         `json:"total_hours"`
	Rate        float64         `json:"rate"`
	Cost        decimal.Decimal `json:"cost"`
}

// EstimateDelivery sums cargo volume over non-excluded products and derives
// trips from truck capacity. Load hours either scale continuously with the
// fill fraction or step per full trip; unload and travel are per-trip
// constants and one admin allowance applies once per job.
func EstimateDelivery(products *types.ProductList, rates, productOverrides types.Document) DeliveryResult {
	cfg := rates.Section("delivery")
	capacity := cfg.Float("truck_capacity_cbm", 15.0)
	loadFullHours := cfg.Float("load_hours_per_full", 3.0)
	unloadHours := cfg.Float("unload_hours_per_trip", 0.5)
	travelHours := cfg.Float("travel_hours_per_trip", 1.0)
	adminHours := cfg.Float("rental_admin_hours", 1.0)
	scaleLoad := cfg.Bool("scale_load_with_fill", true)
	rate := cfg.Float("delivery_rate", rates.Section("labor_rates").Float("handling", 110))

	totalCBM := 0.0
	for _, p := range products.Products {
		if overrideFor(productOverrides, p.Item).Bool("exclude", false) {
			continue
		}
		totalCBM += p.VolumeM3()
	}

	trips := 0
	if capacity > 0 {
		trips = int(math.Ceil(totalCBM / capacity))
	}

	var loadHours float64
	if scaleLoad && capacity > 0 {
		loadHours = (totalCBM / capacity) * loadFullHours
	} else {
		loadHours = float64(trips) * loadFullHours
	}
	unloadTotal := float64(trips) * unloadHours
	travelTotal := float64(trips) * travelHours
	totalHours := loadHours + unloadTotal + travelTotal + adminHours

	return DeliveryResult{
		CBM:         round3(totalCBM),
		CapacityCBM: capacity,
		Trips:       trips,
		LoadHours:   round2(loadHours),
		UnloadHours: round2(unloadTotal),
		TravelHours: round2(travelTotal),
		AdminHours:  round2(adminHours),
		TotalHours:  round2(totalHours),
		Rate:        rate,
		Cost:        money(totalHours * rate),
	}
}
