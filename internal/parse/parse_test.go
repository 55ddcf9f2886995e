// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/portfolio-extract/internal/layout"
	"github.com/pdiddy/portfolio-extract/internal/markdown"
	"github.com/pdiddy/portfolio-extract/pkg/types"
)

func parseDefault(t *testing.T, class types.AssetClass, header []string, rows ...[]string) TableResult {
	t.Helper()
	tbl := markdown.Table{Line: 10, Header: header, Rows: rows}
	return ParseTable(class, tbl, layout.Default().LayoutsFor(class))
}

func TestParseTable_Cash(t *testing.T) {
	res := parseDefault(t, types.ClassCash,
		[]string{"通貨", "残高", "換算レート", "円換算額"},
		[]string{"USD", "1000.00", "147.10", "147100"},
		[]string{"合計", "...", "...", "..."},
	)

	require.Equal(t, StatusParsed, res.Status)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 1, res.RowsSkipped)
	assert.Equal(t, 10, res.Line)

	cash, ok := res.Records[0].(*types.Cash)
	require.True(t, ok)
	assert.Equal(t, types.ClassCash, cash.Class())
	assert.Equal(t, "USD", cash.Currency)
	require.NotNil(t, cash.Balance)
	assert.Equal(t, 1000.0, *cash.Balance)
	assert.Equal(t, "Cash USD", cash.Name)
	assert.Equal(t, types.TierL1, cash.LiquidityTier)
	assert.Nil(t, cash.BookValueJPY)
}

func TestParseTable_CashTotalMarkers(t *testing.T) {
	res := parseDefault(t, types.ClassCash, nil,
		[]string{"**合計**", "", "", "1"},
		[]string{"—", "", "", "1"},
		[]string{"", "", "", "1"},
		[]string{"JPY", "—", "1", "1"},
	)
	require.Len(t, res.Records, 1)
	cash := res.Records[0].(*types.Cash)
	assert.Equal(t, "JPY", cash.Currency)
	assert.Nil(t, cash.Balance, "placeholder balance stays absent")
}

func TestParseTable_ShortRowsContributeNothing(t *testing.T) {
	res := parseDefault(t, types.ClassRealEstate,
		[]string{"No", "物件", "所在地"},
		[]string{"1", "別荘", "熱海"},
		[]string{"2", "倉庫"},
	)
	assert.Equal(t, StatusEmpty, res.Status)
	assert.Empty(t, res.Records)
	assert.Equal(t, 2, res.RowsSkipped)
}

func TestParseTable_HeaderOnly(t *testing.T) {
	res := parseDefault(t, types.ClassWatch, []string{"ブランド", "モデル"})
	assert.Equal(t, StatusEmpty, res.Status)
	assert.Equal(t, "no data rows", res.Reason)
}

func TestParseTable_Collection(t *testing.T) {
	res := parseDefault(t, types.ClassCollection,
		[]string{"No", "アイテム", "数量", "取得単価", "現在値", "含み損益"},
		[]string{"1", " RX-78-2 ガンダム ", "2", "3,300円", "4,000円", "+700"},
		[]string{"2", "ザク", "1", "—", "—", "—"},
	)
	require.Len(t, res.Records, 2)

	first := res.Records[0].(*types.Collection)
	assert.Equal(t, "RX-78-2 ガンダム", first.Name)
	assert.Equal(t, "gunpla", first.Category)
	require.NotNil(t, first.BookValueJPY)
	assert.Equal(t, int64(3300), *first.BookValueJPY)
	assert.Equal(t, types.TierL3, first.LiquidityTier)
	assert.Equal(t, types.ValuationManual, first.ValuationSource)

	second := res.Records[1].(*types.Collection)
	assert.Nil(t, second.BookValueJPY, "absent book value is not zero")
}

func TestParseTable_Watch(t *testing.T) {
	res := parseDefault(t, types.ClassWatch,
		[]string{"ブランド", "モデル", "Ref", "取得コスト", "時価", "含み損益"},
		[]string{"Rolex", "Submariner", "—", "1,500,000.9", "2,000,000", "+500,000"},
		[]string{"Omega", "", "310.30", "800,000", "—", "—"},
	)
	require.Len(t, res.Records, 2)

	w := res.Records[0].(*types.Watch)
	assert.Equal(t, "Rolex", w.Brand)
	assert.Equal(t, "Submariner", w.Model)
	assert.Equal(t, "", w.Ref)
	assert.Equal(t, "Rolex Submariner", w.Name)
	assert.Equal(t, int64(1500000), *w.BookValueJPY, "book value is truncated")

	w = res.Records[1].(*types.Watch)
	assert.Equal(t, "Omega", w.Name)
	assert.Equal(t, "310.30", w.Ref)
}

func TestParseTable_PreciousMetal(t *testing.T) {
	res := parseDefault(t, types.ClassPreciousMetal,
		[]string{"金属", "アイテム", "重量(g)", "取得コスト", "時価", "含み損益"},
		[]string{"金", "インゴット 100g", "100", "1,200,000", "1,450,000", "+250,000"},
		[]string{"銀", "コイン", "1,000,000", "1,100,000", "+100,000"},
		[]string{"Pt", "bar", "0", "1", "2", "3"},
		[]string{"金", "extra", "1", "2", "3", "4", "5"},
	)
	require.Len(t, res.Records, 3)
	assert.Equal(t, 1, res.RowsSkipped, "seven-column row fits no layout")
	assert.Equal(t, "weighed,unweighed", res.Layout)

	gold := res.Records[0].(*types.PreciousMetal)
	assert.Equal(t, "金", gold.Metal)
	assert.Equal(t, "インゴット 100g", gold.Name)
	require.NotNil(t, gold.WeightG)
	assert.Equal(t, 100.0, *gold.WeightG)
	require.NotNil(t, gold.UnitPriceJPY)
	assert.Equal(t, 14500.0, *gold.UnitPriceJPY)
	assert.Equal(t, int64(1200000), *gold.BookValueJPY)

	silver := res.Records[1].(*types.PreciousMetal)
	assert.Nil(t, silver.WeightG)
	assert.Nil(t, silver.UnitPriceJPY)
	require.NotNil(t, silver.BookValueJPY)
	assert.Equal(t, int64(1000000), *silver.BookValueJPY, "third-from-last column")

	zero := res.Records[2].(*types.PreciousMetal)
	assert.Nil(t, zero.UnitPriceJPY, "zero weight yields no unit price")
}

func TestParseTable_RealEstate(t *testing.T) {
	res := parseDefault(t, types.ClassRealEstate,
		[]string{"No", "物件", "所在地", "土地面積 (㎡)", "建物面積 (㎡)", "温泉/鉱泉権", "取得価額", "手数料", "簿価合計", "時価", "含み損益"},
		[]string{"1", "別荘", "静岡県熱海市", "250.5", "—", "あり", "30,000,000", "1,000,000", "31,000,000", "—", "—"},
	)
	require.Len(t, res.Records, 1)

	re := res.Records[0].(*types.RealEstate)
	assert.Equal(t, "別荘", re.Name)
	assert.Equal(t, "静岡県熱海市", re.Address)
	assert.Equal(t, 250.5, *re.LandAreaSqm)
	assert.Nil(t, re.BuildingAreaSqm)
	assert.Equal(t, int64(31000000), *re.BookValueJPY)
	assert.Equal(t, types.TierL4, re.LiquidityTier)
}

func TestParseTable_USStockFull(t *testing.T) {
	res := parseDefault(t, types.ClassUSStock,
		[]string{"No", "口座", "Ticker", "企業名", "取引所", "保有数量", "取得単価 (USD)", "現在値 (USD)", "簿価 (円)", "時価 (円)", "含み損益 (円)"},
		[]string{"1", "特定", "AAPL", "Apple Inc.", "NASDAQ", "10", "150.456", "190.00", "220,000", "280,000", "+60,000"},
		[]string{"2", "NISA", "MSFT", "Microsoft", "NASDAQ", "5"},
	)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 1, res.RowsSkipped)
	assert.Equal(t, "full", res.Layout)

	s := res.Records[0].(*types.USStock)
	assert.Equal(t, "AAPL", s.Ticker)
	assert.Equal(t, "Apple Inc.", s.Name)
	assert.Equal(t, "NASDAQ", s.Exchange)
	assert.Equal(t, 10.0, *s.Quantity)
	assert.Equal(t, 150.456, *s.AvgPriceUSD)
	assert.Equal(t, int64(220000), *s.BookValueJPY)
	assert.Equal(t, map[string]string{"account": "特定"}, s.Tags)
	assert.Equal(t, types.TierL2, s.LiquidityTier)
}

func TestParseTable_USStockLegacy(t *testing.T) {
	res := parseDefault(t, types.ClassUSStock,
		[]string{"No", "Ticker", "企業名", "保有数量", "取得単価 (USD)", "簿価 (円)", "時価 (円)", "含み損益 (円)"},
		[]string{"1", "VOO", "Vanguard S&P 500", "3", "400", "180,000", "210,000", "+30,000"},
	)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "legacy", res.Layout)

	s := res.Records[0].(*types.USStock)
	assert.Equal(t, "VOO", s.Ticker)
	assert.Equal(t, "", s.Exchange)
	assert.Equal(t, 3.0, *s.Quantity)
	assert.Equal(t, int64(180000), *s.BookValueJPY)
	assert.Nil(t, s.Tags)
}

func TestParseTable_JPStock(t *testing.T) {
	res := parseDefault(t, types.ClassJPStock,
		[]string{"No", "銘柄コード", "銘柄", "口座", "保有数量", "取得単価", "現在値", "簿価", "時価", "含み損益"},
		[]string{"1", "7203", "トヨタ自動車", "NISA", "100", "2,500.5", "3,000", "250,050", "300,000", "+49,950"},
		[]string{"2", "6758", "ソニー", "", "10", "—", "—", "—", "—", "—"},
	)
	require.Len(t, res.Records, 2)

	s := res.Records[0].(*types.JPStock)
	assert.Equal(t, "7203", s.Code)
	assert.Equal(t, "トヨタ自動車", s.Name)
	assert.Equal(t, 100.0, *s.Quantity)
	assert.Equal(t, 2500.5, *s.AvgPriceJPY)
	assert.Equal(t, int64(250050), *s.BookValueJPY)
	assert.Equal(t, map[string]string{"account": "NISA"}, s.Tags)

	s = res.Records[1].(*types.JPStock)
	assert.Nil(t, s.Tags)
	assert.Nil(t, s.AvgPriceJPY)
	assert.Nil(t, s.BookValueJPY)
}

func TestParseTable_Skipped(t *testing.T) {
	t.Run("unknown class", func(t *testing.T) {
		res := ParseTable("crypto", markdown.Table{Rows: [][]string{{"x"}}}, nil)
		assert.Equal(t, StatusSkipped, res.Status)
		assert.Contains(t, res.Reason, "no parser")
	})

	t.Run("no layouts", func(t *testing.T) {
		res := ParseTable(types.ClassCash, markdown.Table{Rows: [][]string{{"x"}}}, nil)
		assert.Equal(t, StatusSkipped, res.Status)
		assert.Contains(t, res.Reason, "no layout")
	})

	t.Run("only marked layouts and header lacks markers", func(t *testing.T) {
		layouts := []layout.Layout{{
			Name: "marked", MinCols: 1, HeaderAny: []string{"口座"},
			Columns: map[layout.Field]int{layout.FieldTicker: 0},
		}}
		res := ParseTable(types.ClassUSStock, markdown.Table{Header: []string{"Ticker"}, Rows: [][]string{{"AAPL"}}}, layouts)
		assert.Equal(t, StatusSkipped, res.Status)
	})

	t.Run("layout lacks a required column", func(t *testing.T) {
		layouts := []layout.Layout{{Name: "broken", MinCols: 2, Columns: map[layout.Field]int{layout.FieldBalance: 1}}}
		res := ParseTable(types.ClassCash, markdown.Table{Rows: [][]string{{"USD", "1"}}}, layouts)
		assert.Equal(t, StatusSkipped, res.Status)
		assert.Contains(t, res.Reason, "currency")
		assert.Empty(t, res.Records)
	})
}
