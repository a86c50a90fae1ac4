package hardware

import "cabinet-cost/core/types"

// kindToBucket pairs each reconciled inference kind with its classifier
// ground-truth bucket.
var kindToBucket = map[types.InferredKind]types.HardwareCategory{
	types.InferredDrawers:      types.HardwareDrawerKits,
	types.InferredInnerDrawers: types.HardwareInnerDrawers,
	types.InferredHinges:       types.HardwareHinges,
	types.InferredFeet:         types.HardwareAdjFeet,
	types.InferredBins:         types.HardwareBins,
}

// Reconcile computes per-kind correction factors from the classified
// (authoritative) counts and the predicted aggregate. A factor is only
// computed when both sides are strictly positive; otherwise the kind keeps
// the neutral 1.0, which guards the divide and avoids correcting a kind the
// inferrer never predicted.
func Reconcile(classified types.HardwareCounts, predicted types.InferredCounts) types.ScaleFactors {
	scales := types.NewScaleFactors()
	for kind, bucket := range kindToBucket {
		actual := float64(classified[bucket])
		pred := predicted[kind]
		if actual > 0 && pred > 0 {
			scales[kind] = actual / pred
		}
	}
	return scales
}
