package domain

import "github.com/shopspring/decimal"

type PriceRule string

const (
	PriceRuleNone      PriceRule = "none"
	PriceRuleSurge     PriceRule = "surge"
	PriceRuleClearance PriceRule = "clearance"
)

const (
	surgeStockBelow     = 20
	surgeSalesAbove     = 20
	clearanceStockAbove = 100
	clearanceSalesBelow = 10
)

var (
	surgeMultiplier     = decimal.RequireFromString("1.10")
	clearanceMultiplier = decimal.RequireFromString("0.95")
)

// ClassifyPrice picks the pricing rule for the product's current stock and sales.
// Surge is checked first.
func ClassifyPrice(p Product) PriceRule {
	switch {
	case p.Stock < surgeStockBelow && p.Sales > surgeSalesAbove:
		return PriceRuleSurge
	case p.Stock > clearanceStockAbove && p.Sales < clearanceSalesBelow:
		return PriceRuleClearance
	default:
		return PriceRuleNone
	}
}

// AdjustedPrice is the displayed price. It never feeds spend or loyalty accounting.
func AdjustedPrice(p Product) Amount {
	price := p.Price
	switch ClassifyPrice(p) {
	case PriceRuleSurge:
		price = price.Mul(surgeMultiplier)
	case PriceRuleClearance:
		price = price.Mul(clearanceMultiplier)
	}
	return RoundCents(price)
}
