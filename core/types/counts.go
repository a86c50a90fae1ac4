package types

// HardwareCategory is a coarse bucket for classified hardware.
type HardwareCategory string

const (
	HardwareDrawerKits   HardwareCategory = "drawer_kits"
	HardwareInnerDrawers HardwareCategory = "inner_drawers"
	HardwareHinges       HardwareCategory = "hinges"
	HardwareAdjFeet      HardwareCategory = "adj_feet"
	HardwareBins         HardwareCategory = "bins"
	HardwareLiftup       HardwareCategory = "liftup"
)

// HardwareCategories lists every classifier bucket.
var HardwareCategories = []HardwareCategory{
	HardwareDrawerKits,
	HardwareInnerDrawers,
	HardwareHinges,
	HardwareAdjFeet,
	HardwareBins,
	HardwareLiftup,
}

// HardwareCounts maps classifier buckets to aggregate quantities.
type HardwareCounts map[HardwareCategory]int

// NewHardwareCounts returns a zeroed count for every bucket.
func NewHardwareCounts() HardwareCounts {
	c := make(HardwareCounts, len(HardwareCategories))
	for _, k := range HardwareCategories {
		c[k] = 0
	}
	return c
}

// InferredKind is a per-product inferred hardware kind.
type InferredKind string

const (
	InferredDrawers      InferredKind = "drawers"
	InferredInnerDrawers InferredKind = "inner_drawers"
	InferredDoors        InferredKind = "doors"
	InferredFeet         InferredKind = "feet"
	InferredBins         InferredKind = "bins"
	InferredHinges       InferredKind = "hinges"
)

// ScaledKinds lists the inferred kinds that participate in reconciliation.
// Doors are not reconciled directly; they only drive hinge derivation.
var ScaledKinds = []InferredKind{
	InferredDrawers,
	InferredInnerDrawers,
	InferredHinges,
	InferredFeet,
	InferredBins,
}

// InferredCounts maps inferred kinds to counts for one product or for a
// whole-job aggregate.
type InferredCounts map[InferredKind]float64

// NewInferredCounts returns a zeroed count for every inferred kind.
func NewInferredCounts() InferredCounts {
	c := make(InferredCounts, len(ScaledKinds)+1)
	for _, k := range ScaledKinds {
		c[k] = 0
	}
	c[InferredDoors] = 0
	return c
}

// ScaleFactors maps inferred kinds to correction multipliers. A kind with no
// usable ground truth keeps the neutral factor 1.0.
type ScaleFactors map[InferredKind]float64

// NewScaleFactors returns the neutral factor for every reconciled kind.
func NewScaleFactors() ScaleFactors {
	s := make(ScaleFactors, len(ScaledKinds))
	for _, k := range ScaledKinds {
		s[k] = 1.0
	}
	return s
}

// Get returns the factor for a kind, defaulting to 1.0.
func (s ScaleFactors) Get(k InferredKind) float64 {
	if v, ok := s[k]; ok && v > 0 {
		return v
	}
	return 1.0
}
