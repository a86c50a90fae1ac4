package calculators

import (
	"strings"

	"github.com/shopspring/decimal"

	"cabinet-cost/core/hardware"
	"cabinet-cost/core/types"
)

// CrewModel captures the blended two-person/one-person crew allocation used
// to convert person-hours into site hours and to price them.
type CrewModel struct {
	TwoPersonFraction float64         `json:"two_person_fraction"`
	OnePersonFraction float64         `json:"one_person_fraction"`
	TwoPersonRate     float64         `json:"two_person_rate"`
	OnePersonRate     float64         `json:"one_person_rate"`
	BlendedRate       decimal.Decimal `json:"blended_rate"`
}

// InstallResult is the install estimate: site hours, crew-blended cost and
// the person-hours they were derived from.
type InstallResult struct {
	LaborResult
	PersonHours float64   `json:"person_hours"`
	Crew        CrewModel `json:"crew"`
}

// crewModel reads and normalizes the crew allocation. Fractions that do not
// sum to 1 are renormalized; a non-positive sum collapses to all-two-person.
func crewModel(rates types.Document) CrewModel {
	team := rates.Section("install_team")
	twoFrac := team.Float("two_person_fraction", 0.8)
	oneFrac := team.Float("one_person_fraction", 0.2)

	total := twoFrac + oneFrac
	if total <= 0 {
		twoFrac, oneFrac = 1.0, 0.0
	} else {
		twoFrac /= total
		oneFrac /= total
	}

	twoRate := team.Float("two_person_rate", 190)
	oneRate := team.Float("one_person_rate", rates.Section("labor_rates").Float("installer_billed", 95))

	return CrewModel{
		TwoPersonFraction: twoFrac,
		OnePersonFraction: oneFrac,
		TwoPersonRate:     twoRate,
		OnePersonRate:     oneRate,
		BlendedRate:       money(twoFrac*twoRate + oneFrac*oneRate),
	}
}

// BlendedInstallRate returns the crew-blended hourly install rate.
func BlendedInstallRate(rates types.Document) decimal.Decimal {
	return crewModel(rates).BlendedRate
}

// EstimateInstall estimates on-site installation. A positive manual
// install-hours override in the configuration defaults replaces the
// per-product computation entirely: the override is already site hours.
// Otherwise per-product person-hours are estimated like assembly (with
// install's own rate table and two width-driven special cases) and divided
// by the blended crew-size denominator to produce site hours.
func EstimateInstall(products *types.ProductList, inf *hardware.Inference, scales types.ScaleFactors, rules, rates, productOverrides types.Document) InstallResult {
	crew := crewModel(rates)
	blended := crew.BlendedRate.InexactFloat64()

	if manual := rates.Section("defaults").Float("install_hours", 0); manual > 0 {
		personHours := manual * (crew.TwoPersonFraction*2.0 + crew.OnePersonFraction*1.0)
		return InstallResult{
			LaborResult: LaborResult{
				Hours:    round2(manual),
				Cost:     money(manual * blended),
				Products: nil,
			},
			PersonHours: round2(personHours),
			Crew:        crew,
		}
	}

	inst := rates.Section("install")
	baseMinPerM2 := inst.Float("base_minutes_per_m2", 30)
	minMinPerProduct := inst.Float("min_minutes_per_product", 5)

	adders := rules.Section("install_minutes_adders")
	addDrawer := adders.Float("drawer", 5)
	addInner := adders.Float("inner_drawer", 5)
	addHinge := adders.Float("hinge", 2)
	addFoot := adders.Float("foot", 1)
	addBin := adders.Float("bin", 10)

	complexity := rules.Section("install").Section("complexity")

	result := InstallResult{Crew: crew}
	personHours := 0.0
	for _, p := range products.Products {
		comp := complexityMultiplier(p.Description, complexity)
		ov := overrideFor(productOverrides, p.Item)

		hours := 0.0
		if !ov.Bool("exclude", false) {
			descLow := strings.ToLower(p.Description)
			widthM := p.WidthMM / 1000.0
			var minutes float64
			switch {
			case strings.Contains(descLow, "floating shelf"):
				minutes = 30.0 * widthM * comp
			case strings.Contains(descLow, "adjustable kick"):
				minutes = 15.0 * widthM * comp
			default:
				areaMin := maxf(minMinPerProduct, p.AreaM2()*baseMinPerM2)
				c := inf.CountsFor(p.Item)
				addMin := c[types.InferredDrawers]*scales.Get(types.InferredDrawers)*addDrawer +
					c[types.InferredInnerDrawers]*scales.Get(types.InferredInnerDrawers)*addInner +
					c[types.InferredHinges]*scales.Get(types.InferredHinges)*addHinge +
					c[types.InferredFeet]*scales.Get(types.InferredFeet)*addFoot +
					c[types.InferredBins]*scales.Get(types.InferredBins)*addBin
				minutes = (areaMin + addMin) * comp
			}
			hours = (minutes / 60.0) * float64(p.Quantity())
		}

		result.Products = append(result.Products, ProductRow{
			Item:        p.Item,
			Description: p.Description,
			Room:        p.Room,
			WidthMM:     p.WidthMM,
			HeightMM:    p.HeightMM,
			DepthMM:     p.DepthMM,
			Qty:         p.Quantity(),
			Hours:       round2(hours),
		})
		personHours += hours
	}

	denom := crew.TwoPersonFraction*2.0 + crew.OnePersonFraction*1.0
	if denom < 0.0001 {
		denom = 0.0001
	}
	siteHours := personHours / denom

	result.Hours = round2(siteHours)
	result.Cost = money(siteHours * blended)
	result.PersonHours = round2(personHours)
	return result
}
