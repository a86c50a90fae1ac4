package calculators

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cabinet-cost/core/types"
	"cabinet-cost/internal/logging"
)

// EstimateHardwareCost prices the hardware tally against the hardware
// catalog. Descriptions pass through the operator-confirmed alias map
// before lookup, and quantities round up to whole catalog packs.
func EstimateHardwareCost(lines []types.HardwareLine, hardwareCat, aliases types.Document) decimal.Decimal {
	total := decimal.Zero
	for _, h := range lines {
		desc := strings.TrimSpace(h.Description)
		key := aliases.Str(desc, desc)

		cat := hardwareCat.Section(key)
		unit := cat.Float("unit_price_aud_ex_gst", 0)
		if unit == 0 {
			logging.Warn("hardware line not priced", zap.String("description", desc))
		}
		pack := cat.Int("pack_size", 1)
		if pack <= 0 {
			pack = 1
		}

		packsNeeded := (h.Qty + pack - 1) / pack
		total = total.Add(money(float64(packsNeeded*pack) * unit))
	}
	return total
}
