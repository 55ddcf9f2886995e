// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns table grids into typed asset records. Column positions
// come from declarative layouts; the per-class builders here only decide how
// mapped cells become fields (name synthesis, unit price, total-row
// exclusion).
package parse

import (
	"fmt"
	"strings"

	"github.com/pdiddy/portfolio-extract/internal/layout"
	"github.com/pdiddy/portfolio-extract/internal/markdown"
	"github.com/pdiddy/portfolio-extract/internal/normalize"
	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// Status is the outcome of parsing one table.
type Status string

const (
	// StatusParsed means the table produced at least one record.
	StatusParsed Status = "parsed"
	// StatusEmpty means the table was readable but produced no records.
	StatusEmpty Status = "empty"
	// StatusSkipped means the table could not be read and was dropped whole.
	StatusSkipped Status = "skipped"
)

// TableResult reports what one table contributed.
type TableResult struct {
	Class       types.AssetClass
	Line        int
	Layout      string
	Records     []types.Asset
	RowsSkipped int
	Status      Status
	Reason      string
}

// builder converts one row into an asset. It returns false for rows that are
// deliberately excluded, such as a cash total row.
type builder func(r row) (types.Asset, bool)

var builders = map[types.AssetClass]builder{
	types.ClassCollection:    buildCollection,
	types.ClassWatch:         buildWatch,
	types.ClassPreciousMetal: buildPreciousMetal,
	types.ClassRealEstate:    buildRealEstate,
	types.ClassUSStock:       buildUSStock,
	types.ClassJPStock:       buildJPStock,
	types.ClassCash:          buildCash,
}

// ParseTable converts the data rows of t into class records. Rows that no
// layout fits are skipped and counted; they never fail the table.
func ParseTable(class types.AssetClass, t markdown.Table, layouts []layout.Layout) TableResult {
	res := TableResult{Class: class, Line: t.Line}

	build, ok := builders[class]
	if !ok {
		return res.skip(fmt.Sprintf("no parser for class %q", class))
	}

	candidates := selectLayouts(t.Header, layouts)
	if len(candidates) == 0 {
		return res.skip("no layout matches the table header")
	}
	for _, l := range candidates {
		for _, f := range layout.RequiredFields(class) {
			if _, ok := l.Columns[f]; !ok {
				return res.skip(fmt.Sprintf("layout %s has no column for %s", l.Name, f))
			}
		}
	}

	if len(t.Rows) == 0 {
		res.Status, res.Reason = StatusEmpty, "no data rows"
		return res
	}

	used := map[string]bool{}
	for _, cells := range t.Rows {
		l, ok := fit(candidates, len(cells))
		if !ok {
			res.RowsSkipped++
			continue
		}
		a, ok := build(row{cells: cells, layout: l})
		if !ok {
			res.RowsSkipped++
			continue
		}
		used[l.Name] = true
		res.Records = append(res.Records, a)
	}

	res.Layout = layoutNames(candidates, used)
	if len(res.Records) == 0 {
		res.Status, res.Reason = StatusEmpty, fmt.Sprintf("%d rows skipped", res.RowsSkipped)
		return res
	}
	res.Status = StatusParsed
	return res
}

func (r TableResult) skip(reason string) TableResult {
	r.Status, r.Reason = StatusSkipped, reason
	return r
}

// selectLayouts prefers layouts whose header markers match; layouts without
// markers are the fallback.
func selectLayouts(header []string, layouts []layout.Layout) []layout.Layout {
	var marked, plain []layout.Layout
	for _, l := range layouts {
		if len(l.HeaderAny) == 0 {
			plain = append(plain, l)
			continue
		}
		if l.MatchesHeader(header) {
			marked = append(marked, l)
		}
	}
	if len(marked) > 0 {
		return marked
	}
	return plain
}

func fit(layouts []layout.Layout, n int) (layout.Layout, bool) {
	for _, l := range layouts {
		if l.Fits(n) {
			return l, true
		}
	}
	return layout.Layout{}, false
}

func layoutNames(candidates []layout.Layout, used map[string]bool) string {
	var names []string
	for _, l := range candidates {
		if used[l.Name] {
			names = append(names, l.Name)
		}
	}
	return strings.Join(names, ",")
}

// row reads mapped cells of one data row.
type row struct {
	cells  []string
	layout layout.Layout
}

func (r row) text(f layout.Field) string {
	c, _ := r.layout.Cell(r.cells, f)
	return normalize.CleanText(c)
}

func (r row) number(f layout.Field) *float64 {
	c, ok := r.layout.Cell(r.cells, f)
	if !ok {
		return nil
	}
	return normalize.Number(c)
}

func (r row) bookValue() *int64 {
	return normalize.Truncate(r.number(layout.FieldBookValue))
}

func common(class types.AssetClass, name string, book *int64) types.Common {
	return types.Common{
		Name:            name,
		BookValueJPY:    book,
		ValuationSource: types.ValuationManual,
		LiquidityTier:   class.Tier(),
	}
}

func accountTags(account string) map[string]string {
	if account == "" {
		return nil
	}
	return map[string]string{"account": account}
}
