// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strings"

	"github.com/pdiddy/portfolio-extract/internal/layout"
	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// isCashTotal reports whether a currency cell labels a total row rather
// than a currency.
func isCashTotal(currency string) bool {
	switch currency {
	case "合計", "**合計**", "—", "":
		return true
	}
	return false
}

func buildCollection(r row) (types.Asset, bool) {
	return &types.Collection{
		Common:   common(types.ClassCollection, r.text(layout.FieldName), r.bookValue()),
		Category: "gunpla",
	}, true
}

func buildWatch(r row) (types.Asset, bool) {
	brand := r.text(layout.FieldBrand)
	model := r.text(layout.FieldModel)
	ref := r.text(layout.FieldRef)
	if ref == "—" {
		ref = ""
	}
	return &types.Watch{
		Common: common(types.ClassWatch, strings.TrimSpace(brand+" "+model), r.bookValue()),
		Brand:  brand,
		Model:  model,
		Ref:    ref,
	}, true
}

func buildPreciousMetal(r row) (types.Asset, bool) {
	weight := r.number(layout.FieldWeight)
	spot := r.number(layout.FieldSpot)

	var unit *float64
	if weight != nil && spot != nil && *weight != 0 && *spot != 0 {
		v := *spot / *weight
		unit = &v
	}
	return &types.PreciousMetal{
		Common:       common(types.ClassPreciousMetal, r.text(layout.FieldName), r.bookValue()),
		Metal:        r.text(layout.FieldMetal),
		WeightG:      weight,
		UnitPriceJPY: unit,
	}, true
}

func buildRealEstate(r row) (types.Asset, bool) {
	return &types.RealEstate{
		Common:          common(types.ClassRealEstate, r.text(layout.FieldName), r.bookValue()),
		Address:         r.text(layout.FieldAddress),
		LandAreaSqm:     r.number(layout.FieldLandArea),
		BuildingAreaSqm: r.number(layout.FieldBuildingArea),
	}, true
}

func buildUSStock(r row) (types.Asset, bool) {
	c := common(types.ClassUSStock, r.text(layout.FieldName), r.bookValue())
	c.Tags = accountTags(r.text(layout.FieldAccount))
	return &types.USStock{
		Common:      c,
		Ticker:      r.text(layout.FieldTicker),
		Exchange:    r.text(layout.FieldExchange),
		Quantity:    r.number(layout.FieldQuantity),
		AvgPriceUSD: r.number(layout.FieldAvgPrice),
	}, true
}

func buildJPStock(r row) (types.Asset, bool) {
	c := common(types.ClassJPStock, r.text(layout.FieldName), r.bookValue())
	c.Tags = accountTags(r.text(layout.FieldAccount))
	return &types.JPStock{
		Common:      c,
		Code:        r.text(layout.FieldCode),
		Quantity:    r.number(layout.FieldQuantity),
		AvgPriceJPY: r.number(layout.FieldAvgPrice),
	}, true
}

func buildCash(r row) (types.Asset, bool) {
	currency := r.text(layout.FieldCurrency)
	if isCashTotal(currency) {
		return nil, false
	}
	return &types.Cash{
		Common:   common(types.ClassCash, "Cash "+currency, nil),
		Currency: currency,
		Balance:  r.number(layout.FieldBalance),
	}, true
}
