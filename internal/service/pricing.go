package service

import (
	"math"

	"myfooddesk/internal/domain"
)

// PerDishRate returns the discount rate for a single line by quantity.
// Thresholds are strict: 13..20 gets 15%, 21+ gets 25%.
func PerDishRate(qty int) float64 {
	if qty > 20 {
		return 0.25
	}
	if qty > 12 {
		return 0.15
	}
	return 0
}

// CartRate returns the whole-cart discount rate by total quantity.
func CartRate(totalQty int) float64 {
	if totalQty > 15 {
		return 0.10
	}
	if totalQty > 10 {
		return 0.05
	}
	return 0
}

type CartQuote struct {
	Lines                []domain.CartLine `json:"lines"`
	TotalQty             int               `json:"totalQty"`
	RawSubtotal          float64           `json:"rawSubtotal"`
	PerDishDiscountTotal float64           `json:"perDishDiscountTotal"`
	SubtotalAfterPerDish float64           `json:"subtotalAfterPerDish"`
	CartRate             float64           `json:"cartRate"`
	CartDiscountTotal    float64           `json:"cartDiscountTotal"`
	DiscountTotal        float64           `json:"discountTotal"`
	FinalSubtotal        float64           `json:"finalSubtotal"`
	NeedsHeadUp          bool              `json:"needsHeadUp"`
}

// PriceCart applies both discount tiers to the given lines.
//
// The order matters: per-dish discounts come off each line first, and the
// cart-level rate is applied to the subtotal that remains, not to the raw
// subtotal. Swapping the two produces different totals.
func PriceCart(lines []domain.CartLine) CartQuote {
	quote := CartQuote{Lines: make([]domain.CartLine, len(lines))}

	for i, l := range lines {
		l.RawLineTotal = l.Price * float64(l.Qty)
		l.PerDishRate = PerDishRate(l.Qty)
		l.PerDishDiscount = l.RawLineTotal * l.PerDishRate
		l.AfterPerDishTotal = l.RawLineTotal - l.PerDishDiscount
		l.RequiresHeadUp = l.Qty > 12

		quote.Lines[i] = l
		quote.TotalQty += l.Qty
		quote.RawSubtotal += l.RawLineTotal
		quote.PerDishDiscountTotal += l.PerDishDiscount
		if l.RequiresHeadUp {
			quote.NeedsHeadUp = true
		}
	}

	quote.SubtotalAfterPerDish = quote.RawSubtotal - quote.PerDishDiscountTotal
	quote.CartRate = CartRate(quote.TotalQty)
	quote.CartDiscountTotal = quote.SubtotalAfterPerDish * quote.CartRate
	quote.DiscountTotal = quote.PerDishDiscountTotal + quote.CartDiscountTotal
	quote.FinalSubtotal = quote.RawSubtotal - quote.DiscountTotal

	return quote
}

// Round2 rounds a currency amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
