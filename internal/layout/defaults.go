// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// defaultPatterns match the numbered headings of the portfolio sheet in
// either Japanese or English. An unanchored English alternative matches the
// word anywhere on the line.
var defaultPatterns = map[types.AssetClass]string{
	types.ClassCollection:    `^\s*###\s*2\.1.*ガンプラ|Gunpla`,
	types.ClassWatch:         `^\s*###\s*2\.2.*時計|Watches`,
	types.ClassPreciousMetal: `^\s*###\s*2\.3.*貴金属|Precious\s*Metals`,
	types.ClassRealEstate:    `^\s*###\s*2\.4.*不動産|Real\s*Estate`,
	types.ClassUSStock:       `^\s*###\s*2\.5.*米国株|US\s*Stocks`,
	types.ClassJPStock:       `^\s*###\s*2\.6.*日本株|Japan\s*Stocks`,
	types.ClassCash:          `^\s*###\s*2\.7.*(預金|Cash\s*Deposits)`,
}

func defaultLayouts() map[types.AssetClass][]Layout {
	return map[types.AssetClass][]Layout{
		// No | アイテム | 数量 | 取得単価 | 現在値 | 含み損益
		types.ClassCollection: {{
			Name:    "gunpla",
			MinCols: 6,
			Columns: map[Field]int{FieldName: 1, FieldBookValue: 3},
		}},
		// ブランド | モデル | Ref | 取得コスト | 時価 | 含み損益
		types.ClassWatch: {{
			Name:    "default",
			MinCols: 6,
			Columns: map[Field]int{FieldBrand: 0, FieldModel: 1, FieldRef: 2, FieldBookValue: 3},
		}},
		// 金属 | アイテム | 重量(g) | 取得コスト | 時価 | 含み損益
		types.ClassPreciousMetal: {
			{
				Name:      "weighed",
				ExactCols: 6,
				Columns: map[Field]int{
					FieldMetal: 0, FieldName: 1, FieldWeight: 2, FieldSpot: 4, FieldBookValue: -3,
				},
			},
			{
				Name:      "unweighed",
				ExactCols: 5,
				Columns: map[Field]int{
					FieldMetal: 0, FieldName: 1, FieldSpot: 3, FieldBookValue: -3,
				},
			},
		},
		// No | 物件 | 所在地 | 土地面積 | 建物面積 | 温泉権 | 取得価額 | 手数料 | 簿価合計 | 時価 | 含み損益
		types.ClassRealEstate: {{
			Name:    "default",
			MinCols: 11,
			Columns: map[Field]int{
				FieldName: 1, FieldAddress: 2, FieldLandArea: 3, FieldBuildingArea: 4, FieldBookValue: 8,
			},
		}},
		types.ClassUSStock: {
			// No | 口座 | Ticker | 企業名 | 取引所 | 保有数量 | 取得単価 (USD) | 現在値 (USD) | 簿価 (円) | 時価 (円) | 含み損益 (円)
			{
				Name:      "full",
				MinCols:   11,
				HeaderAny: []string{"口座", "取引所", "Account", "Exchange"},
				Columns: map[Field]int{
					FieldAccount: 1, FieldTicker: 2, FieldName: 3, FieldExchange: 4,
					FieldQuantity: 5, FieldAvgPrice: 6, FieldBookValue: -3,
				},
			},
			// No | Ticker | 企業名 | 保有数量 | 取得単価 (USD) | ...
			{
				Name:    "legacy",
				MinCols: 5,
				Columns: map[Field]int{
					FieldTicker: 1, FieldName: 2, FieldQuantity: 3, FieldAvgPrice: 4, FieldBookValue: -3,
				},
			},
		},
		// No | 銘柄コード | 銘柄 | 口座 | 保有数量 | 取得単価 | 現在値 | 簿価 | 時価 | 含み損益
		types.ClassJPStock: {{
			Name:    "default",
			MinCols: 10,
			Columns: map[Field]int{
				FieldCode: 1, FieldName: 2, FieldAccount: 3, FieldQuantity: 4, FieldAvgPrice: 5, FieldBookValue: 7,
			},
		}},
		// 通貨 | 残高 | 換算レート | 円換算額
		types.ClassCash: {{
			Name:    "default",
			MinCols: 4,
			Columns: map[Field]int{FieldCurrency: 0, FieldBalance: 1},
		}},
	}
}

// Default returns the built-in configuration. Each call returns a fresh copy.
func Default() Config {
	cfg := Config{Layouts: defaultLayouts()}
	for _, class := range types.Classes {
		cfg.Sections = append(cfg.Sections, SectionPattern{Class: class, Pattern: defaultPatterns[class]})
	}
	if err := cfg.Validate(); err != nil {
		panic("layout: invalid built-in config: " + err.Error())
	}
	return cfg
}
