package types

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"cabinet-cost/internal/logging"
)

// Document is a nested key/value configuration document. Rates, policy,
// rules, catalogs and override documents all use this shape so that one
// recursive merge and one set of lenient readers cover them all.
//
// Every read takes an explicit default; an absent key is never an error.
type Document map[string]any

// Section returns the nested document at key, or an empty document.
func (d Document) Section(key string) Document {
	if d == nil {
		return Document{}
	}
	switch v := d[key].(type) {
	case Document:
		return v
	case map[string]any:
		return Document(v)
	}
	return Document{}
}

// Has reports whether the key is present.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Float returns the numeric value at key, or def when absent or unusable.
func (d Document) Float(key string, def float64) float64 {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		logging.Warn("config value not numeric, using default",
			zap.String("key", key), zap.Any("value", v), zap.Float64("default", def))
		return def
	}
	return f
}

// Int returns the integer value at key, or def when absent or unusable.
func (d Document) Int(key string, def int) int {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		logging.Warn("config value not numeric, using default",
			zap.String("key", key), zap.Any("value", v), zap.Int("default", def))
		return def
	}
	return int(f)
}

// Bool returns the boolean value at key, or def when absent or unusable.
func (d Document) Bool(key string, def bool) bool {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed
		}
	}
	return def
}

// Str returns the string value at key, or def when absent or empty.
func (d Document) Str(key string, def string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

// LenientFloat coerces a raw value to float64, resolving anything
// unparseable to zero. This is the single place the pipeline's
// parse-or-zero policy lives; swap this out for a validating variant
// without touching calculator logic.
func LenientFloat(v any) float64 {
	f, ok := toFloat(v)
	if !ok && v != nil {
		logging.Warn("unparseable numeric input coerced to zero", zap.Any("value", v))
	}
	return f
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
