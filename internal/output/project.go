// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pdiddy/portfolio-extract/internal/normalize"
	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// Row is a record flattened to schema column name → cell text. Columns the
// record does not populate are absent from the map.
type Row map[string]string

// Project flattens a into a Row, applying the output number formats:
// weight_g with one decimal, unit_price_jpy floored to two decimals, average
// prices with two decimals and book values as integers.
func Project(a types.Asset) Row {
	r := Row{"class": string(a.Class())}

	c := a.Base()
	r.set("name", c.Name)
	r.set("note", c.Note)
	r.set("acquired_at", c.AcquiredAt)
	if c.BookValueJPY != nil {
		r["book_value_jpy"] = strconv.FormatInt(*c.BookValueJPY, 10)
	}
	r.set("valuation_source", c.ValuationSource)
	r.set("liquidity_tier", string(c.LiquidityTier))
	r.set("tags", tagsJSON(c.Tags))

	switch v := a.(type) {
	case *types.Collection:
		r.set("category", v.Category)
	case *types.Watch:
		r.set("brand", v.Brand)
		r.set("model", v.Model)
		r.set("ref", v.Ref)
	case *types.PreciousMetal:
		r.set("metal", v.Metal)
		r.set("weight_g", normalize.Fmt1(v.WeightG))
		r.set("unit_price_jpy", normalize.FloorFmt2(v.UnitPriceJPY))
		r.set("purity", v.Purity)
	case *types.RealEstate:
		r.set("address", v.Address)
		r.set("land_area_sqm", normalize.FormatPlain(v.LandAreaSqm))
		r.set("building_area_sqm", normalize.FormatPlain(v.BuildingAreaSqm))
	case *types.USStock:
		r.set("ticker", v.Ticker)
		r.set("exchange", v.Exchange)
		r.set("quantity", normalize.FormatPlain(v.Quantity))
		r.set("avg_price_usd", normalize.Fmt2(v.AvgPriceUSD))
	case *types.JPStock:
		r.set("code", v.Code)
		r.set("quantity", normalize.FormatPlain(v.Quantity))
		r.set("avg_price_jpy", normalize.Fmt2(v.AvgPriceJPY))
	case *types.Cash:
		r.set("currency", v.Currency)
		r.set("balance", normalize.FormatPlain(v.Balance))
	}
	return r
}

func (r Row) set(col, v string) {
	if v != "" {
		r[col] = v
	}
}

// Cells returns the row's values in schema order.
func (r Row) Cells(schema []string) []string {
	out := make([]string, len(schema))
	for i, col := range schema {
		out[i] = r[col]
	}
	return out
}

// tagsJSON renders tags as a compact JSON object with non-ASCII text kept
// verbatim, e.g. {"account":"特定"}.
func tagsJSON(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tags); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
