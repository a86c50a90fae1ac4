package hardware

import (
	"testing"

	"cabinet-cost/core/types"
)

func TestClassifyBuckets(t *testing.T) {
	tests := []struct {
		name   string
		line   types.HardwareLine
		bucket types.HardwareCategory
		want   int
	}{
		{
			name:   "adjustable leg",
			line:   types.HardwareLine{Description: "Adjustable Leg 100-130mm Black", Qty: 24},
			bucket: types.HardwareAdjFeet,
			want:   24,
		},
		{
			name:   "adj feet shorthand",
			line:   types.HardwareLine{Description: "ADJ FEET 100mm", Qty: 12},
			bucket: types.HardwareAdjFeet,
			want:   12,
		},
		{
			name:   "drawer kit",
			line:   types.HardwareLine{Description: "Finista Swift Drawer Kit 500mm", Qty: 8},
			bucket: types.HardwareDrawerKits,
			want:   8,
		},
		{
			name:   "inner drawer kit",
			line:   types.HardwareLine{Description: "Inner Drawer Kit 450mm White", Qty: 3},
			bucket: types.HardwareInnerDrawers,
			want:   3,
		},
		{
			name:   "hinge beats door keyword",
			line:   types.HardwareLine{Description: "Hinge 165° soft-close for door", Qty: 40},
			bucket: types.HardwareHinges,
			want:   40,
		},
		{
			name:   "bin",
			line:   types.HardwareLine{Description: "Waste Bin 2x15L pull-out", Qty: 2},
			bucket: types.HardwareBins,
			want:   2,
		},
		{
			name:   "aventos lift mechanism",
			line:   types.HardwareLine{Description: "AVENTOS HK top stay lift", Qty: 4},
			bucket: types.HardwareLiftup,
			want:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]types.HardwareLine{tt.line})
			if got[tt.bucket] != tt.want {
				t.Errorf("bucket %s = %d, want %d (counts %v)", tt.bucket, got[tt.bucket], tt.want, got)
			}
			for _, other := range types.HardwareCategories {
				if other != tt.bucket && got[other] != 0 {
					t.Errorf("line leaked into bucket %s: %d", other, got[other])
				}
			}
		})
	}
}

func TestClassifyDrawerSupportIgnored(t *testing.T) {
	got := Classify([]types.HardwareLine{
		{Description: "Drawer Support Runner 450mm", Qty: 10},
	})
	for _, c := range types.HardwareCategories {
		if got[c] != 0 {
			t.Errorf("drawer support counted in %s: %d", c, got[c])
		}
	}
}

func TestClassifyFeetBeforeDrawer(t *testing.T) {
	// "adjustable leg" must win even when the line also mentions a drawer kit.
	got := Classify([]types.HardwareLine{
		{Description: "Adjustable Leg pack for drawer kit base", Qty: 6},
	})
	if got[types.HardwareAdjFeet] != 6 {
		t.Errorf("adj_feet = %d, want 6", got[types.HardwareAdjFeet])
	}
	if got[types.HardwareDrawerKits] != 0 {
		t.Errorf("drawer_kits = %d, want 0", got[types.HardwareDrawerKits])
	}
}

func TestClassifyUnmatchedDropped(t *testing.T) {
	got := Classify([]types.HardwareLine{
		{Description: "Shelf pin nickel 5mm", Qty: 200},
		{Description: "", Qty: 5},
	})
	for _, c := range types.HardwareCategories {
		if got[c] != 0 {
			t.Errorf("unmatched line counted in %s: %d", c, got[c])
		}
	}
}

func TestClassifySumsAcrossLines(t *testing.T) {
	got := Classify([]types.HardwareLine{
		{Description: "Hinge 110 soft close", Qty: 12},
		{Description: "HINGE 155 wide angle", Qty: 8},
	})
	if got[types.HardwareHinges] != 20 {
		t.Errorf("hinges = %d, want 20", got[types.HardwareHinges])
	}
}
