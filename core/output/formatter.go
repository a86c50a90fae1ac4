// Package output renders an estimate for humans and machines.
// This package produces the CLI breakdown table and the JSON payload.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"cabinet-cost/core/calculators"
	"cabinet-cost/core/engine"
	"cabinet-cost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// categoryLabels are the human-readable names for the breakdown table.
var categoryLabels = map[types.Category]string{
	types.CategoryMaterials:  "Materials",
	types.CategoryEdgeband:   "Edgeband",
	types.CategoryHardware:   "Hardware",
	types.CategoryCNC:        "CNC",
	types.CategoryPanelSaw:   "Panel saw",
	types.CategoryAssembly:   "Assembly",
	types.CategoryInstall:    "Install",
	types.CategoryFingerPull: "Finger pull",
	types.CategoryDelivery:   "Delivery",
	types.CategoryOverhead:   "Overhead",
	types.CategoryAllowances: "Allowances",
	types.CategorySurcharges: "Surcharges",
}

// Render writes the result to w in the requested format.
func Render(w io.Writer, result *engine.Result, format Format, showDetails bool) error {
	switch format {
	case FormatJSON:
		return RenderJSON(w, result)
	default:
		return RenderCLI(w, result, showDetails)
	}
}

// RenderJSON writes the complete result as indented JSON.
func RenderJSON(w io.Writer, result *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// RenderCLI writes the internal cost breakdown, the client display breakdown
// and the price summary as a boxed table. With showDetails, labor categories
// also list their per-product rows.
func RenderCLI(w io.Writer, result *engine.Result, showDetails bool) error {
	line := func(format string, args ...any) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	line("┌─────────────────────────────────────────────────────────────────────────┐")
	line("│                          JOB COST BREAKDOWN                             │")
	line("├─────────────────────────────────────────────────────────────────────────┤")
	for _, cat := range types.CategoryOrder {
		v, ok := result.Totals[cat]
		if !ok {
			continue
		}
		line("│ %-50s %20s │", categoryLabels[cat], "$"+v.StringFixed(2))
		if showDetails {
			for _, row := range detailRows(result, cat) {
				line("│   └─ %-46s %20s │", truncate(row.label, 46), row.value)
			}
		}
	}
	line("├─────────────────────────────────────────────────────────────────────────┤")
	line("│ %-50s %20s │", "SUBTOTAL EX GST", "$"+result.Summary.SubtotalExGST.StringFixed(2))
	line("└─────────────────────────────────────────────────────────────────────────┘")

	line("")
	line("┌─────────────────────────────────────────────────────────────────────────┐")
	line("│                           CLIENT BREAKDOWN                              │")
	line("├─────────────────────────────────────────────────────────────────────────┤")
	for _, cat := range types.CategoryOrder {
		v, ok := result.Display[cat]
		if !ok {
			continue
		}
		line("│ %-50s %20s │", categoryLabels[cat], "$"+v.StringFixed(2))
	}
	line("├─────────────────────────────────────────────────────────────────────────┤")
	line("│ %-50s %20s │", "PRICE EX GST", "$"+result.Summary.PriceExGST.StringFixed(2))
	line("│ %-50s %20s │", "GST", "$"+result.Summary.GST.StringFixed(2))
	line("│ %-50s %20s │", "TOTAL INC GST", "$"+result.Summary.TotalIncGST.StringFixed(2))
	line("└─────────────────────────────────────────────────────────────────────────┘")
	return nil
}

type detailRow struct {
	label string
	value string
}

// detailRows expands the per-category detail lines shown under each total.
func detailRows(result *engine.Result, cat types.Category) []detailRow {
	var rows []detailRow
	switch cat {
	case types.CategoryMaterials:
		for _, it := range result.Materials.Items {
			label := fmt.Sprintf("%s x%d (%s)", it.Material, it.Qty, it.Source)
			rows = append(rows, detailRow{label, "$" + it.Cost.StringFixed(2)})
		}
	case types.CategoryEdgeband:
		for _, it := range result.Edgeband.Items {
			label := fmt.Sprintf("%s %.1f lm", it.Spec, it.LM)
			rows = append(rows, detailRow{label, "$" + it.Cost.StringFixed(2)})
		}
	case types.CategoryAssembly:
		for _, p := range result.Assembly.Products {
			rows = append(rows, productRow(p))
		}
	case types.CategoryInstall:
		for _, p := range result.Install.Products {
			rows = append(rows, productRow(p))
		}
	case types.CategoryDelivery:
		d := result.Delivery
		label := fmt.Sprintf("%.1f cbm, %d trip(s), %.1f h", d.CBM, d.Trips, d.TotalHours)
		rows = append(rows, detailRow{label, "$" + d.Cost.StringFixed(2)})
	case types.CategoryFingerPull:
		fp := result.FingerPull
		label := fmt.Sprintf("%d part(s) at $%s", fp.TotalParts, fp.PerPartFee.StringFixed(2))
		rows = append(rows, detailRow{label, "$" + fp.Cost.StringFixed(2)})
	}
	return rows
}

func productRow(p calculators.ProductRow) detailRow {
	label := p.Description
	if p.Qty > 1 {
		label = fmt.Sprintf("%s x%d", label, p.Qty)
	}
	return detailRow{label, fmt.Sprintf("%.2f h", p.Hours)}
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
