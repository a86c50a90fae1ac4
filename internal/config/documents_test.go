package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadJobConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rates.yaml", "labor_rates:\n  shop: 150\n")
	writeFile(t, dir, "policy.yaml", "target_margin: 0.3\nrounding: 10\n")
	writeFile(t, dir, "assembly_rules.yaml", "minutes_adders:\n  hinges_per_door: 2\n")
	writeFile(t, dir, "materials.yaml", "White Melamine:\n  price_per_m2_aud_ex_gst: 60\n")
	writeFile(t, dir, "edgeband.yaml", "ABS White 1mm:\n  price_per_m: 2\n")
	writeFile(t, dir, "hardware.yaml", "Hinge 165:\n  unit_price_aud_ex_gst: 3.5\n")

	jc, err := LoadJobConfig(dir)
	if err != nil {
		t.Fatalf("LoadJobConfig: %v", err)
	}

	if got := jc.Rates.Section("labor_rates").Float("shop", 0); got != 150 {
		t.Errorf("shop rate = %v, want 150", got)
	}
	if got := jc.Policy.Float("target_margin", 0); got != 0.3 {
		t.Errorf("margin = %v, want 0.3", got)
	}
	if got := jc.Materials.Section("White Melamine").Float("price_per_m2_aud_ex_gst", 0); got != 60 {
		t.Errorf("material price = %v, want 60", got)
	}
	// Optional documents default to empty.
	if len(jc.MaterialsPricing) != 0 || len(jc.HardwareAliases) != 0 {
		t.Error("optional documents should be empty when absent")
	}
}

func TestLoadJobConfigMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rates.yaml", "labor_rates: [unclosed\n")

	if _, err := LoadJobConfig(dir); err == nil {
		t.Fatal("want error for malformed rates.yaml")
	}
}

func TestLoadJobConfigMissingFilesAreEmpty(t *testing.T) {
	jc, err := LoadJobConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadJobConfig on empty dir: %v", err)
	}
	if len(jc.Rates) != 0 || len(jc.Policy) != 0 {
		t.Error("missing documents should load as empty, not fail")
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.json")

	// Missing file: empty document.
	if doc := LoadOverrides(path); len(doc) != 0 {
		t.Errorf("missing overrides = %v, want empty", doc)
	}

	writeFile(t, dir, "overrides.json", `{"policy": {"target_margin": 0.35}}`)
	doc := LoadOverrides(path)
	if got := doc.Section("policy").Float("target_margin", 0); got != 0.35 {
		t.Errorf("override margin = %v, want 0.35", got)
	}

	// Malformed file: empty document, never an error.
	writeFile(t, dir, "overrides.json", "{broken")
	if doc := LoadOverrides(path); len(doc) != 0 {
		t.Errorf("malformed overrides = %v, want empty", doc)
	}
}

func TestSaveOverridesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.json")

	in := map[string]any{"products": map[string]any{"7": map[string]any{"exclude": true}}}
	if err := SaveOverrides(path, in); err != nil {
		t.Fatalf("SaveOverrides: %v", err)
	}

	out := LoadOverrides(path)
	if !out.Section("products").Section("7").Bool("exclude", false) {
		t.Error("round-tripped override lost the exclude flag")
	}
}
