// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AssetClass discriminates the asset variants extracted from a portfolio sheet.
type AssetClass string

const (
	ClassCollection    AssetClass = "collection"
	ClassWatch         AssetClass = "watch"
	ClassPreciousMetal AssetClass = "precious_metal"
	ClassRealEstate    AssetClass = "real_estate"
	ClassUSStock       AssetClass = "us_stock"
	ClassJPStock       AssetClass = "jp_stock"
	ClassCash          AssetClass = "cash"
)

// Classes lists every asset class in section order of the portfolio sheet
// (2.1 through 2.7).
var Classes = []AssetClass{
	ClassCollection,
	ClassWatch,
	ClassPreciousMetal,
	ClassRealEstate,
	ClassUSStock,
	ClassJPStock,
	ClassCash,
}

// Valid reports whether c is one of the known asset classes.
func (c AssetClass) Valid() bool {
	for _, k := range Classes {
		if c == k {
			return true
		}
	}
	return false
}

// LiquidityTier is a coarse label from L1 (cash) to L4 (real estate).
type LiquidityTier string

const (
	TierL1 LiquidityTier = "L1"
	TierL2 LiquidityTier = "L2"
	TierL3 LiquidityTier = "L3"
	TierL4 LiquidityTier = "L4"
)

// Tier returns the liquidity tier assigned to the class. It is fixed per
// class and never computed from data.
func (c AssetClass) Tier() LiquidityTier {
	switch c {
	case ClassCash:
		return TierL1
	case ClassUSStock, ClassJPStock:
		return TierL2
	case ClassRealEstate:
		return TierL4
	default:
		return TierL3
	}
}

// ValuationManual marks a book value that was entered by hand in the sheet.
const ValuationManual = "manual"

// Asset is implemented by every asset variant.
type Asset interface {
	// Class returns the variant discriminant. It is never empty.
	Class() AssetClass

	// Identity returns the normalized field values that decide whether two
	// records describe the same underlying asset.
	Identity() []string

	// Base returns the fields shared by every variant.
	Base() *Common
}

// Common holds the fields every asset carries. Optional numbers are nil when
// the source cell was empty or unparseable; nil is never conflated with zero.
type Common struct {
	Name            string
	Note            string
	AcquiredAt      string
	BookValueJPY    *int64
	ValuationSource string
	LiquidityTier   LiquidityTier
	Tags            map[string]string
}

// Base returns c. Variants embed Common and inherit this method.
func (c *Common) Base() *Common { return c }

// Collection is a collectible item such as a Gunpla kit.
type Collection struct {
	Common
	Category string
}

func (*Collection) Class() AssetClass { return ClassCollection }

func (a *Collection) Identity() []string { return []string{a.Name} }

// Watch is a luxury watch.
type Watch struct {
	Common
	Brand string
	Model string
	Ref   string
}

func (*Watch) Class() AssetClass { return ClassWatch }

func (a *Watch) Identity() []string { return []string{a.Brand, a.Model, a.Ref} }

// PreciousMetal is a bar or coin. UnitPriceJPY is the spot value per gram.
type PreciousMetal struct {
	Common
	Metal        string
	WeightG      *float64
	UnitPriceJPY *float64
	Purity       string
}

func (*PreciousMetal) Class() AssetClass { return ClassPreciousMetal }

// Identity orders the key as (metal, name).
func (a *PreciousMetal) Identity() []string { return []string{a.Metal, a.Name} }

// RealEstate is a land or building holding.
type RealEstate struct {
	Common
	Address         string
	LandAreaSqm     *float64
	BuildingAreaSqm *float64
}

func (*RealEstate) Class() AssetClass { return ClassRealEstate }

func (a *RealEstate) Identity() []string { return []string{a.Name, a.Address} }

// USStock is a US-listed equity position. AvgPriceUSD is the acquisition
// price per share.
type USStock struct {
	Common
	Ticker      string
	Exchange    string
	Quantity    *float64
	AvgPriceUSD *float64
}

func (*USStock) Class() AssetClass { return ClassUSStock }

func (a *USStock) Identity() []string { return []string{a.Ticker} }

// JPStock is a Japan-listed equity position identified by its security code.
type JPStock struct {
	Common
	Code        string
	Quantity    *float64
	AvgPriceJPY *float64
}

func (*JPStock) Class() AssetClass { return ClassJPStock }

func (a *JPStock) Identity() []string { return []string{a.Code} }

// Cash is a deposit balance in one currency.
type Cash struct {
	Common
	Currency string
	Balance  *float64
}

func (*Cash) Class() AssetClass { return ClassCash }

func (a *Cash) Identity() []string { return []string{a.Currency} }
