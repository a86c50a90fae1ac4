package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"cabinet-cost/core/types"
	"cabinet-cost/internal/errors"
	"cabinet-cost/internal/logging"
)

// JobConfig bundles the parsed rates, policy, rules and catalogs handed to
// the estimation pipeline. Every field is a lenient document; absent files
// yield empty documents so the pipeline never fails on missing optional
// configuration.
type JobConfig struct {
	Rates            types.Document
	Policy           types.Document
	AssemblyRules    types.Document
	Materials        types.Document
	MaterialsPricing types.Document
	Edgeband         types.Document
	Hardware         types.Document
	HardwareAliases  types.Document
}

// LoadJobConfig reads the YAML configuration documents from dir.
// rates.yaml, policy.yaml, materials.yaml, edgeband.yaml, hardware.yaml and
// assembly_rules.yaml are expected; materials_pricing.yaml and
// hardware_aliases.yaml are optional.
func LoadJobConfig(dir string) (*JobConfig, error) {
	jc := &JobConfig{}
	required := []struct {
		name string
		dst  *types.Document
	}{
		{"rates.yaml", &jc.Rates},
		{"policy.yaml", &jc.Policy},
		{"assembly_rules.yaml", &jc.AssemblyRules},
		{"materials.yaml", &jc.Materials},
		{"edgeband.yaml", &jc.Edgeband},
		{"hardware.yaml", &jc.Hardware},
	}
	for _, f := range required {
		doc, err := loadYAML(filepath.Join(dir, f.name))
		if err != nil {
			return nil, errors.Config("loading "+f.name, err)
		}
		*f.dst = doc
	}

	optional := []struct {
		name string
		dst  *types.Document
	}{
		{"materials_pricing.yaml", &jc.MaterialsPricing},
		{"hardware_aliases.yaml", &jc.HardwareAliases},
	}
	for _, f := range optional {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			*f.dst = types.Document{}
			continue
		}
		doc, err := loadYAML(path)
		if err != nil {
			return nil, errors.Config("loading "+f.name, err)
		}
		*f.dst = doc
	}

	return jc, nil
}

// LoadOverrides reads a persisted per-job override document (JSON).
// A missing or unreadable file yields an empty document; the job still
// computes from base configuration.
func LoadOverrides(path string) types.Document {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("override document unreadable, using base configuration",
				zap.String("path", path), zap.Error(err))
		}
		return types.Document{}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Warn("override document malformed, using base configuration",
			zap.String("path", path), zap.Error(err))
		return types.Document{}
	}
	return types.Document(doc)
}

// SaveOverrides persists a per-job override document (JSON).
func SaveOverrides(path string, doc types.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Internal("encoding override document", err)
	}
	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Document{}, nil
		}
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return types.Document{}, nil
	}
	return types.Document(doc), nil
}
