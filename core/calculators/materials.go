package calculators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cabinet-cost/core/types"
	"cabinet-cost/internal/logging"
)

// MaterialRow is one costed sheet-material line.
type MaterialRow struct {
	Material   string          `json:"material"`
	Qty        int             `json:"qty"`
	SheetSize  string          `json:"sheet_size,omitempty"`
	AreaM2     float64         `json:"area_m2"`
	PricePerM2 float64         `json:"price_per_m2"`
	Cost       decimal.Decimal `json:"cost"`

	// Source records which pricing fallback produced the price:
	// name, attributes, unit or unknown.
	Source string `json:"source"`
}

// MaterialsResult is the sheet-materials breakdown.
type MaterialsResult struct {
	Items []MaterialRow   `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// EstimateMaterials costs the sheet rows against the materials catalog.
// Price fallback per material: explicit price_per_m2 by catalog name, then
// attribute-based pricing (supplier/finish/thickness/substrate parsed from
// the material name), then a per-sheet unit price converted through the
// sheet area, then zero.
func EstimateMaterials(sheets []types.SheetItem, materialsCat, policy, attrPricing types.Document) MaterialsResult {
	extraWaste := policy.Float("extra_sheet_waste", 0)

	result := MaterialsResult{Total: decimal.Zero}
	for _, s := range sheets {
		name := strings.TrimSpace(s.Material)
		cat := materialsCat.Section(name)
		areaPerSheet := sheetAreaM2(s, cat)

		pricePerM2 := 0.0
		source := "unknown"
		switch {
		case cat.Has("price_per_m2_aud_ex_gst"):
			pricePerM2 = cat.Float("price_per_m2_aud_ex_gst", 0)
			source = "name"
		default:
			if p, ok := priceFromAttributes(parseMaterialName(name), attrPricing); ok {
				pricePerM2 = p
				source = "attributes"
			} else if unit := cat.Float("unit_cost_aud_ex_gst", 0); unit > 0 && areaPerSheet > 0 {
				pricePerM2 = unit / areaPerSheet
				source = "unit"
			} else {
				logging.Warn("no price for material, costing at zero", zap.String("material", name))
			}
		}

		totalArea := float64(s.Qty) * areaPerSheet
		cost := totalArea * pricePerM2 * (1.0 + extraWaste)
		result.Items = append(result.Items, MaterialRow{
			Material:   name,
			Qty:        s.Qty,
			SheetSize:  sheetSizeLabel(s, cat),
			AreaM2:     round3(totalArea),
			PricePerM2: round2(pricePerM2),
			Cost:       money(cost),
			Source:     source,
		})
		result.Total = result.Total.Add(money(cost))
	}
	return result
}

// sheetAreaM2 derives the area of one sheet, preferring the row's own size
// string, then the catalog sheet_size_mm pair, then a 1 m² floor so a
// missing size never zeroes the cost.
func sheetAreaM2(s types.SheetItem, cat types.Document) float64 {
	if w, h, ok := parseSheetSize(s.SheetSize); ok {
		return w * h / 1_000_000.0
	}
	if sz, ok := cat["sheet_size_mm"].([]any); ok && len(sz) == 2 {
		w := types.LenientFloat(sz[0])
		h := types.LenientFloat(sz[1])
		if w > 0 && h > 0 {
			return w * h / 1_000_000.0
		}
	}
	return 1.0
}

func sheetSizeLabel(s types.SheetItem, cat types.Document) string {
	if strings.TrimSpace(s.SheetSize) != "" {
		return s.SheetSize
	}
	if sz, ok := cat["sheet_size_mm"].([]any); ok && len(sz) == 2 {
		return fmt.Sprintf("%v x %v", sz[0], sz[1])
	}
	return ""
}

// parseSheetSize parses strings like "1810 x 3620" into millimeter sides.
func parseSheetSize(text string) (w, h float64, ok bool) {
	if text == "" {
		return 0, 0, false
	}
	t := strings.ToLower(text)
	t = strings.ReplaceAll(t, "mm", "")
	t = strings.ReplaceAll(t, "×", "x")
	parts := strings.SplitN(t, "x", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	w = types.LenientFloat(strings.TrimSpace(parts[0]))
	h = types.LenientFloat(strings.TrimSpace(parts[1]))
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// materialAttrs are the pricing-relevant attributes parsed from a material
// name; color is ignored for pricing.
type materialAttrs struct {
	Supplier    string
	Finish      string
	ThicknessMM float64
	Substrate   string
}

var (
	finishKeywords = []string{"woodmatt", "ravine", "matt", "matte", "gloss", "texture", "sheen", "silk"}
	substrates     = []string{"HPL", "MDF", "PBD", "PB", "CL"}
	suppliers      = []string{"LX", "PT", "GBI"}

	typicalThicknesses = []float64{0.7, 12, 16, 18, 25, 32, 33}

	thicknessRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*mm`)
	mdfRe       = regexp.MustCompile(`(?i)\bMDF\b`)
)

// parseMaterialName extracts supplier, finish, thickness and substrate from
// a vendor material string like "G PT Black Woodmatt 18mm MDF - 36x18".
func parseMaterialName(name string) materialAttrs {
	attrs := materialAttrs{}
	if name == "" {
		return attrs
	}
	s := strings.ReplaceAll(name, "-", " ")

	for _, tok := range strings.Fields(s) {
		up := strings.ToUpper(tok)
		for _, sup := range suppliers {
			if up == sup {
				attrs.Supplier = sup
				break
			}
		}
		if attrs.Supplier != "" {
			break
		}
	}

	lower := strings.ToLower(s)
	for _, f := range finishKeywords {
		if strings.Contains(lower, f) {
			attrs.Finish = f
			break
		}
	}

	if m := thicknessRe.FindStringSubmatch(lower); m != nil {
		attrs.ThicknessMM = closestThickness(types.LenientFloat(m[1]))
	}

	for _, sub := range substrates {
		re := regexp.MustCompile(`(?i)\b` + sub + `\b`)
		if re.MatchString(name) {
			attrs.Substrate = sub
			if sub == "PB" {
				attrs.Substrate = "PBD"
			}
			break
		}
	}
	if attrs.Substrate == "" && mdfRe.MatchString(name) {
		attrs.Substrate = "MDF"
	}

	return attrs
}

// closestThickness snaps a parsed thickness to the nearest stocked one.
func closestThickness(v float64) float64 {
	if v <= 0 {
		return 0
	}
	best := typicalThicknesses[0]
	for _, t := range typicalThicknesses[1:] {
		if absf(t-v) < absf(best-v) {
			best = t
		}
	}
	return best
}

// priceFromAttributes looks the parsed attributes up in the attribute
// pricing catalog: exact supplier+finish+substrate+thickness match first,
// then a relaxed match ignoring substrate.
func priceFromAttributes(attrs materialAttrs, pricing types.Document) (float64, bool) {
	entries, ok := pricing["entries"].([]any)
	if !ok || len(entries) == 0 {
		return 0, false
	}

	match := func(relaxSubstrate bool) (float64, bool) {
		for _, raw := range entries {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			e := types.Document(m)
			if !strings.EqualFold(e.Str("supplier", ""), attrs.Supplier) {
				continue
			}
			if !strings.EqualFold(e.Str("finish", ""), attrs.Finish) {
				continue
			}
			if e.Float("thickness_mm", 0) != attrs.ThicknessMM {
				continue
			}
			if !relaxSubstrate && !strings.EqualFold(e.Str("substrate", ""), attrs.Substrate) {
				continue
			}
			return e.Float("price_per_m2_aud_ex_gst", 0), true
		}
		return 0, false
	}

	if p, ok := match(false); ok {
		return p, true
	}
	return match(true)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
