package calculators

import (
	"strings"

	"github.com/shopspring/decimal"

	"cabinet-cost/core/types"
)

// BandRow is one costed edgeband run.
type BandRow struct {
	Spec      string          `json:"spec"`
	LM        float64         `json:"lm"`
	PricePerM float64         `json:"price_per_m"`
	Cost      decimal.Decimal `json:"cost"`
}

// EdgebandResult is the edgeband material estimate plus a time figure.
type EdgebandResult struct {
	Cost  decimal.Decimal `json:"cost"`
	Hours float64         `json:"hours"`
	Items []BandRow       `json:"items"`
}

// EstimateEdgeband costs the edgeband runs. Per run: linear meters times a
// per-meter price, with a setup cost charged once per distinct spec.
// Pricing falls back from the band catalog through phrase heuristics to a
// global per-meter default. The LM time model here is superseded by the
// parts-based model (EdgeMinutesFromParts) whenever part rows exist.
func EstimateEdgeband(bands []types.BandItem, bandsCat, rates types.Document) EdgebandResult {
	eb := rates.Section("edgeband")
	result := EdgebandResult{Cost: decimal.Zero}

	totalLM := 0.0
	seen := map[string]bool{}
	setupCost := decimal.Zero
	for _, b := range bands {
		spec := strings.TrimSpace(b.Spec)
		lm := maxf(b.LM, 0)
		totalLM += lm

		cat := bandsCat.Section(spec)
		priceM, ok := catalogBandPrice(cat)
		if !ok {
			priceM, ok = phraseBandPrice(spec, eb)
		}
		if !ok {
			priceM = eb.Float("price_per_m", 0)
		}

		cost := money(lm * priceM)
		result.Cost = result.Cost.Add(cost)
		if spec != "" && !seen[spec] {
			seen[spec] = true
			setupCost = setupCost.Add(money(cat.Float("setup_cost", 0)))
		}
		result.Items = append(result.Items, BandRow{
			Spec:      spec,
			LM:        round2(lm),
			PricePerM: round2(priceM),
			Cost:      cost,
		})
	}
	result.Cost = result.Cost.Add(setupCost)

	minutes := eb.Float("minutes_per_m", 0)*totalLM + eb.Float("setup_minutes", 0)*float64(len(seen))
	result.Hours = round2(minutes / 60.0)
	return result
}

func catalogBandPrice(cat types.Document) (float64, bool) {
	if !cat.Has("price_per_m") {
		return 0, false
	}
	return cat.Float("price_per_m", 0), true
}

// phraseBandPrice maps spec phrases to configured phrase prices: any
// "woodmatt" spec, or a plain " black" token without woodmatt.
func phraseBandPrice(spec string, eb types.Document) (float64, bool) {
	phrase := eb.Section("phrase_pricing")
	sp := strings.ToLower(spec)
	if strings.Contains(sp, "woodmatt") {
		if phrase.Has("woodmatt") {
			return phrase.Float("woodmatt", 0), true
		}
		return 0, false
	}
	if strings.Contains(" "+sp, " black") && phrase.Has("plain_black") {
		return phrase.Float("plain_black", 0), true
	}
	return 0, false
}

// EdgeMinutesFromParts computes edgebanding minutes from part edge flags:
// one edge per non-empty flag, multiplied by the part quantity (a part with
// no usable quantity counts once).
func EdgeMinutesFromParts(parts *types.PartsList, rates types.Document) float64 {
	if parts == nil {
		return 0
	}
	minutesPerEdge := rates.Section("edgeband").Float("minutes_per_edge", 1.0)

	edges := 0
	for _, p := range parts.Parts {
		n := p.Edges.Count()
		if n == 0 {
			continue
		}
		qty := p.Qty
		if qty <= 0 {
			qty = 1
		}
		edges += n * qty
	}
	return float64(edges) * minutesPerEdge
}
