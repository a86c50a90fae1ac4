package calculators

import (
	"github.com/shopspring/decimal"

	"cabinet-cost/core/types"
)

// AllocateOverhead converts fixed monthly overhead into a per-job charge:
// the monthly figure spread over the configured internal hours per month,
// applied to this job's internal labor (drafting, project management and
// assembly).
func AllocateOverhead(draftingHours, pmHours, assemblyHours float64, rates types.Document) decimal.Decimal {
	oh := rates.Section("overhead")
	monthly := oh.Float("monthly_aud", 6516)
	internalHours := oh.Float("internal_hours", 140)
	if internalHours < 1 {
		internalHours = 1
	}

	perHour := monthly / internalHours
	totalInternal := draftingHours + pmHours + assemblyHours
	return money(perHour * totalInternal)
}
