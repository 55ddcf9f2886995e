// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output serializes asset records to the portfolio CSV schema.
// Records are projected into flat rows only here; every schema column is
// emitted for every row, empty where the record has no value.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrTemplateMissing is returned when a required template file does not exist.
var ErrTemplateMissing = errors.New("schema template not found")

// DefaultTemplate is the template file looked up when none is configured.
const DefaultTemplate = "portfolio_template.csv"

// DefaultSchema is the built-in column order used when no template file is
// present.
var DefaultSchema = []string{
	"class", "name", "note", "acquired_at", "book_value_jpy", "valuation_source", "liquidity_tier", "tags",
	"ticker", "exchange", "quantity", "avg_price_usd", "code", "avg_price_jpy", "brand", "model", "ref",
	"metal", "weight_g", "unit_price_jpy", "purity", "address", "land_area_sqm", "building_area_sqm",
	"category", "variant", "currency", "balance",
}

// ReadTemplateHeader returns the first row of the CSV template at path.
func ReadTemplateHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening template %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading template header %s: %w", path, err)
	}
	// Excel-saved templates often start with a byte order mark.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return header, nil
}

// ResolveSchema picks the output column order. The template at path wins
// when it exists. A missing template is an ErrTemplateMissing error when
// required; otherwise DefaultSchema is used.
func ResolveSchema(path string, required bool) ([]string, error) {
	if path == "" {
		if required {
			return nil, ErrTemplateMissing
		}
		return DefaultSchema, nil
	}
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking template %s: %w", path, err)
		}
		if required {
			return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, path)
		}
		return DefaultSchema, nil
	}
	return ReadTemplateHeader(path)
}
