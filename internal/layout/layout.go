// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout holds the two things a portfolio sheet may vary: the heading
// pattern that opens each asset section and the column positions of each
// section's table. Both have built-in defaults and may be overridden per class
// from a YAML file.
package layout

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/portfolio-extract/internal/markdown"
	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// ErrUnknownClass is returned when a layout file names a class that does not exist.
var ErrUnknownClass = errors.New("unknown asset class")

// Field names a logical column that a class builder reads.
type Field string

const (
	FieldName         Field = "name"
	FieldBookValue    Field = "book_value"
	FieldBrand        Field = "brand"
	FieldModel        Field = "model"
	FieldRef          Field = "ref"
	FieldMetal        Field = "metal"
	FieldWeight       Field = "weight"
	FieldSpot         Field = "spot"
	FieldAddress      Field = "address"
	FieldLandArea     Field = "land_area"
	FieldBuildingArea Field = "building_area"
	FieldAccount      Field = "account"
	FieldTicker       Field = "ticker"
	FieldExchange     Field = "exchange"
	FieldQuantity     Field = "quantity"
	FieldAvgPrice     Field = "avg_price"
	FieldCode         Field = "code"
	FieldCurrency     Field = "currency"
	FieldBalance      Field = "balance"
)

// requiredFields lists the columns a class cannot be built without.
var requiredFields = map[types.AssetClass][]Field{
	types.ClassCollection:    {FieldName},
	types.ClassWatch:         {FieldBrand, FieldModel},
	types.ClassPreciousMetal: {FieldMetal, FieldName},
	types.ClassRealEstate:    {FieldName},
	types.ClassUSStock:       {FieldTicker},
	types.ClassJPStock:       {FieldCode},
	types.ClassCash:          {FieldCurrency},
}

// Layout maps logical fields to column positions for one table shape.
// Negative positions count from the end of the row (-1 is the last cell).
type Layout struct {
	Name string `yaml:"name"`

	// MinCols is the narrowest row this layout accepts.
	MinCols int `yaml:"min_cols,omitempty"`

	// ExactCols, when non-zero, restricts the layout to rows of exactly this
	// width and takes precedence over MinCols.
	ExactCols int `yaml:"exact_cols,omitempty"`

	// HeaderAny selects the layout for tables whose header has any of these
	// cells. Layouts without HeaderAny apply when no marker matches.
	HeaderAny []string `yaml:"header_any,omitempty,flow"`

	Columns map[Field]int `yaml:"columns"`
}

// Width returns the row width the layout guarantees.
func (l Layout) Width() int {
	if l.ExactCols > 0 {
		return l.ExactCols
	}
	return l.MinCols
}

// Fits reports whether a row with n cells can be read with this layout.
func (l Layout) Fits(n int) bool {
	if l.ExactCols > 0 {
		return n == l.ExactCols
	}
	return n >= l.MinCols
}

// MatchesHeader reports whether any header cell equals one of the markers,
// ignoring case and surrounding space.
func (l Layout) MatchesHeader(header []string) bool {
	for _, h := range header {
		h = strings.TrimSpace(h)
		for _, m := range l.HeaderAny {
			if strings.EqualFold(h, m) {
				return true
			}
		}
	}
	return false
}

// Cell returns the raw cell for field f. The second result is false when the
// layout has no column for f or the row is too short to hold it.
func (l Layout) Cell(row []string, f Field) (string, bool) {
	idx, ok := l.Columns[f]
	if !ok {
		return "", false
	}
	if idx < 0 {
		idx += len(row)
	}
	if idx < 0 || idx >= len(row) {
		return "", false
	}
	return row[idx], true
}

func (l Layout) validate(class types.AssetClass) error {
	width := l.Width()
	if width <= 0 {
		return fmt.Errorf("layout %s/%s: min_cols or exact_cols must be positive", class, l.Name)
	}
	for f, idx := range l.Columns {
		if (idx >= 0 && idx >= width) || (idx < 0 && -idx > width) {
			return fmt.Errorf("layout %s/%s: column %s=%d outside guaranteed width %d", class, l.Name, f, idx, width)
		}
	}
	for _, f := range requiredFields[class] {
		if _, ok := l.Columns[f]; !ok {
			return fmt.Errorf("layout %s/%s: missing required column %s", class, l.Name, f)
		}
	}
	return nil
}

// SectionPattern is the heading expression that opens a class section.
// Matching is always case-insensitive.
type SectionPattern struct {
	Class   types.AssetClass
	Pattern string
	re      *regexp.Regexp
}

func (p *SectionPattern) compile() error {
	re, err := regexp.Compile("(?i)" + p.Pattern)
	if err != nil {
		return fmt.Errorf("section %s: %w", p.Class, err)
	}
	p.re = re
	return nil
}

// Config is the effective set of section patterns and table layouts.
type Config struct {
	// Sections is ordered like types.Classes.
	Sections []SectionPattern
	Layouts  map[types.AssetClass][]Layout
}

// Patterns returns the compiled section patterns for the locator.
func (c Config) Patterns() []markdown.Pattern {
	out := make([]markdown.Pattern, 0, len(c.Sections))
	for _, s := range c.Sections {
		out = append(out, markdown.Pattern{Class: s.Class, Re: s.re})
	}
	return out
}

// LayoutsFor returns the layouts configured for class, in preference order.
func (c Config) LayoutsFor(class types.AssetClass) []Layout {
	return c.Layouts[class]
}

// Validate compiles every pattern and checks every layout.
func (c *Config) Validate() error {
	for i := range c.Sections {
		if !c.Sections[i].Class.Valid() {
			return fmt.Errorf("section %q: %w", c.Sections[i].Class, ErrUnknownClass)
		}
		if err := c.Sections[i].compile(); err != nil {
			return err
		}
	}
	for class, layouts := range c.Layouts {
		if !class.Valid() {
			return fmt.Errorf("layouts %q: %w", class, ErrUnknownClass)
		}
		if len(layouts) == 0 {
			return fmt.Errorf("layouts %s: at least one layout required", class)
		}
		for _, l := range layouts {
			if err := l.validate(class); err != nil {
				return err
			}
		}
	}
	return nil
}

// file is the on-disk shape of a layout override file.
type file struct {
	Sections map[types.AssetClass]string   `yaml:"sections,omitempty"`
	Layouts  map[types.AssetClass][]Layout `yaml:"layouts,omitempty"`
}

// Load reads a YAML override file and applies it over the defaults. Classes
// absent from the file keep their built-in pattern and layouts.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading layout file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse applies override YAML over the defaults.
func Parse(data []byte) (Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parsing layout YAML: %w", err)
	}

	cfg := Default()
	for class, pattern := range f.Sections {
		if !class.Valid() {
			return Config{}, fmt.Errorf("section %q: %w", class, ErrUnknownClass)
		}
		for i := range cfg.Sections {
			if cfg.Sections[i].Class == class {
				cfg.Sections[i].Pattern = pattern
			}
		}
	}
	for class, layouts := range f.Layouts {
		if !class.Valid() {
			return Config{}, fmt.Errorf("layouts %q: %w", class, ErrUnknownClass)
		}
		cfg.Layouts[class] = layouts
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders cfg in the override file format.
func Marshal(cfg Config) ([]byte, error) {
	f := file{
		Sections: make(map[types.AssetClass]string, len(cfg.Sections)),
		Layouts:  cfg.Layouts,
	}
	for _, s := range cfg.Sections {
		f.Sections[s.Class] = s.Pattern
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("marshaling layout YAML: %w", err)
	}
	return data, nil
}

// RequiredFields returns the columns every layout of class must map.
func RequiredFields(class types.AssetClass) []Field {
	return requiredFields[class]
}
