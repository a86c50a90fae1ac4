// Package hardware buckets hardware tallies, infers per-product hardware
// from product descriptions, and reconciles the two.
package hardware

import (
	"strings"

	"cabinet-cost/core/types"
)

// classifyRule maps a description predicate to a classifier bucket. Rules
// are evaluated in order and the first match wins, so precedence is encoded
// by position: feet before drawer kits, drawer-support suppression before
// drawer kits, drawers before hinges.
type classifyRule struct {
	match  func(desc string) bool
	bucket func(desc string) types.HardwareCategory
	ignore bool
}

func containsAny(desc string, keys ...string) bool {
	for _, k := range keys {
		if strings.Contains(desc, k) {
			return true
		}
	}
	return false
}

func fixedBucket(c types.HardwareCategory) func(string) types.HardwareCategory {
	return func(string) types.HardwareCategory { return c }
}

var classifyRules = []classifyRule{
	{
		match:  func(d string) bool { return containsAny(d, "adj leg", "adj feet", "adjustable leg", "adjustable feet") },
		bucket: fixedBucket(types.HardwareAdjFeet),
	},
	{
		// Drawer supports are runners, not drawers.
		match:  func(d string) bool { return strings.Contains(d, "drawer support") },
		ignore: true,
	},
	{
		match: func(d string) bool {
			return strings.Contains(d, "drawer kit") ||
				(strings.Contains(d, "inner drawer") && strings.Contains(d, "kit"))
		},
		bucket: func(d string) types.HardwareCategory {
			if strings.Contains(d, "inner") {
				return types.HardwareInnerDrawers
			}
			return types.HardwareDrawerKits
		},
	},
	{
		match:  func(d string) bool { return strings.Contains(d, "hinge") },
		bucket: fixedBucket(types.HardwareHinges),
	},
	{
		match:  func(d string) bool { return strings.Contains(d, "bin") },
		bucket: fixedBucket(types.HardwareBins),
	},
	{
		match:  func(d string) bool { return containsAny(d, "aventos", "liftup", "lift-up", "lift mechanism") },
		bucket: fixedBucket(types.HardwareLiftup),
	},
}

// Classify buckets an authoritative hardware tally into coarse categories.
// Each line contributes its quantity to at most one bucket; lines matching
// no rule are dropped.
func Classify(lines []types.HardwareLine) types.HardwareCounts {
	totals := types.NewHardwareCounts()
	for _, line := range lines {
		desc := strings.ToLower(line.Description)
		for _, rule := range classifyRules {
			if !rule.match(desc) {
				continue
			}
			if !rule.ignore {
				totals[rule.bucket(desc)] += line.Qty
			}
			break
		}
	}
	return totals
}
