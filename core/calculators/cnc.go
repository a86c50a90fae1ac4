package calculators

import (
	"github.com/shopspring/decimal"

	"cabinet-cost/core/types"
)

// MachineResult is a machine-time estimate for one station.
type MachineResult struct {
	Hours float64         `json:"hours"`
	Cost  decimal.Decimal `json:"cost"`
}

// MachiningResult splits sheet machining between the CNC and the panel saw.
type MachiningResult struct {
	CNC      MachineResult `json:"cnc"`
	PanelSaw MachineResult `json:"panel_saw"`
}

// EstimateMachining estimates CNC and panel-saw time from the material
// breakdown. Materials flagged panel_saw in the material overrides are
// excluded from CNC area and counted as sheets cut on the saw instead.
// Machine rates prefer rental rates, then machine rates, then fallbacks.
func EstimateMachining(materials MaterialsResult, rates, materialOverrides types.Document) MachiningResult {
	sqmPerHour := rates.Section("cnc_area").Float("sqm_per_hour", 10)
	if sqmPerHour < 0.0001 {
		sqmPerHour = 0.0001
	}
	minutesPerSheet := rates.Section("panel_saw").Float("minutes_per_sheet", 15)

	rental := rates.Section("machine_rental")
	machine := rates.Section("machine_rates")
	cncRate := rental.Float("cnc", machine.Float("cnc", rates.Section("labor_rates").Float("shop", 150)))
	sawRate := rental.Float("panel_saw", machine.Float("panel_saw", 120))

	cncArea := 0.0
	sawSheets := 0
	for _, it := range materials.Items {
		if overrideFor(materialOverrides, it.Material).Bool("panel_saw", false) {
			sawSheets += it.Qty
		} else {
			cncArea += it.AreaM2
		}
	}

	cncHours := cncArea / sqmPerHour
	sawHours := float64(sawSheets) * minutesPerSheet / 60.0
	return MachiningResult{
		CNC:      MachineResult{Hours: round2(cncHours), Cost: money(cncHours * cncRate)},
		PanelSaw: MachineResult{Hours: round2(sawHours), Cost: money(sawHours * sawRate)},
	}
}
