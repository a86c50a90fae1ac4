package hardware

import (
	"regexp"
	"strings"

	"cabinet-cost/core/types"
)

// DefaultHingesPerDoor is the hinge derivation constant used when the
// assembly rules carry no hinges_per_door value.
const DefaultHingesPerDoor = 2

// feetDepthThresholdMM is the depth at or above which a product is assumed
// floor-mounted and given a fixed set of adjustable feet.
const feetDepthThresholdMM = 500.0

var (
	drawerRe      = regexp.MustCompile(`(\d+)\s*drawer`)
	innerDrawerRe = regexp.MustCompile(`(\d+)\s*inner drawer`)
	doorRe        = regexp.MustCompile(`(\d+)\s*door`)
)

// Inference holds per-product inferred counts plus the job-wide aggregate.
type Inference struct {
	// PerProduct maps product item id to its inferred counts
	PerProduct map[string]types.InferredCounts

	// Predicted is the aggregate of PerProduct across the job
	Predicted types.InferredCounts
}

// CountsFor returns the inferred counts for a product item id, or an empty
// count set when the product was never seen.
func (inf *Inference) CountsFor(item string) types.InferredCounts {
	if c, ok := inf.PerProduct[item]; ok {
		return c
	}
	return types.InferredCounts{}
}

// Infer derives best-effort hardware counts for each product from its
// free-text description and depth. The heuristic is expected to be
// systematically biased; Reconcile corrects the bias against the classified
// tally downstream.
func Infer(products []types.Product, hingesPerDoor int) *Inference {
	if hingesPerDoor <= 0 {
		hingesPerDoor = DefaultHingesPerDoor
	}

	inf := &Inference{
		PerProduct: make(map[string]types.InferredCounts, len(products)),
		Predicted:  types.NewInferredCounts(),
	}
	for _, p := range products {
		c := inferOne(p, hingesPerDoor)
		inf.PerProduct[p.Item] = c
		for k, v := range c {
			inf.Predicted[k] += v
		}
	}
	return inf
}

func inferOne(p types.Product, hingesPerDoor int) types.InferredCounts {
	desc := strings.ToLower(p.Description)
	c := types.NewInferredCounts()

	if m := drawerRe.FindStringSubmatch(desc); m != nil {
		c[types.InferredDrawers] = types.LenientFloat(m[1])
	}
	if strings.Contains(desc, "inner drawer") {
		c[types.InferredInnerDrawers] = 1
		if m := innerDrawerRe.FindStringSubmatch(desc); m != nil {
			c[types.InferredInnerDrawers] = types.LenientFloat(m[1])
		}
	}
	if strings.Contains(desc, "door") {
		c[types.InferredDoors] = 1
		if m := doorRe.FindStringSubmatch(desc); m != nil {
			c[types.InferredDoors] = types.LenientFloat(m[1])
		}
	}
	if strings.Contains(desc, "bin") {
		c[types.InferredBins] = 1
	}
	if p.DepthMM >= feetDepthThresholdMM {
		c[types.InferredFeet] = 6
	}
	c[types.InferredHinges] = c[types.InferredDoors] * float64(hingesPerDoor)

	return c
}
