// Package types defines the domain model for the estimation pipeline.
package types

import "strings"

// SheetItem is one sheet-material row from the bill of quantities.
type SheetItem struct {
	// Material is the catalog key for this sheet material
	Material string `json:"material"`

	// Qty is the number of sheets
	Qty int `json:"qty"`

	// Thickness is the nominal thickness label, if known
	Thickness string `json:"thickness,omitempty"`

	// SheetSize is the raw size string (e.g. "1810 x 3620"), if known
	SheetSize string `json:"sheet_size,omitempty"`
}

// BandItem is one edgeband run from the bill of quantities.
type BandItem struct {
	// Spec is the edgeband specification string
	Spec string `json:"spec"`

	// LM is the linear meters of banding
	LM float64 `json:"lm"`
}

// HardwareLine is one hardware row from the authoritative hardware tally.
type HardwareLine struct {
	// Description is the free-text hardware description
	Description string `json:"description"`

	// Qty is the line quantity
	Qty int `json:"qty"`
}

// EdgeFlags holds the four edge-banding flag fields of a part row.
// A non-empty flag means that side of the part is edged.
type EdgeFlags struct {
	W1 string `json:"ebw1,omitempty"`
	L1 string `json:"ebl1,omitempty"`
	W2 string `json:"ebw2,omitempty"`
	L2 string `json:"ebl2,omitempty"`
}

// Count returns the number of edged sides flagged on the part.
func (f EdgeFlags) Count() int {
	n := 0
	for _, v := range []string{f.W1, f.L1, f.W2, f.L2} {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

// PartItem is one machined part row, used by the edge-based time model.
type PartItem struct {
	// Qty is the part quantity
	Qty int `json:"qty"`

	// Edges holds the edge-banding flags for this part
	Edges EdgeFlags `json:"edges"`
}

// BillOfQuantities is the structured input consumed to build a job.
type BillOfQuantities struct {
	// Sheets lists the sheet materials
	Sheets []SheetItem `json:"sheets"`

	// Edgeband lists the edgeband runs
	Edgeband []BandItem `json:"edgeband"`

	// Hardware is the authoritative hardware tally
	Hardware []HardwareLine `json:"hardware"`
}

// PartsList holds the machined part rows, when available.
type PartsList struct {
	Parts []PartItem `json:"parts"`
}
