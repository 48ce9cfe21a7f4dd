package service_test

import (
	"testing"

	"myfooddesk/internal/domain"
	"myfooddesk/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestPerDishRate(t *testing.T) {
	tests := []struct {
		qty  int
		rate float64
	}{
		{0, 0},
		{1, 0},
		{12, 0},
		{13, 0.15},
		{20, 0.15},
		{21, 0.25},
		{100, 0.25},
	}
	for _, testCase := range tests {
		assert.Equal(t, testCase.rate, service.PerDishRate(testCase.qty), "qty=%d", testCase.qty)
	}
}

func TestCartRate(t *testing.T) {
	tests := []struct {
		totalQty int
		rate     float64
	}{
		{0, 0},
		{10, 0},
		{11, 0.05},
		{15, 0.05},
		{16, 0.10},
		{50, 0.10},
	}
	for _, testCase := range tests {
		assert.Equal(t, testCase.rate, service.CartRate(testCase.totalQty), "totalQty=%d", testCase.totalQty)
	}
}

func TestPriceCart_NoDiscounts(t *testing.T) {
	quote := service.PriceCart([]domain.CartLine{
		{ProductID: 1, Price: 50, Qty: 3},
		{ProductID: 2, Price: 20, Qty: 2},
	})

	assert.Equal(t, 5, quote.TotalQty)
	assert.InDelta(t, 190, quote.RawSubtotal, 1e-9)
	assert.InDelta(t, 0, quote.DiscountTotal, 1e-9)
	assert.InDelta(t, 190, quote.FinalSubtotal, 1e-9)
	assert.False(t, quote.NeedsHeadUp)
}

func TestPriceCart_CartTierOnly(t *testing.T) {
	quote := service.PriceCart([]domain.CartLine{
		{ProductID: 1, Price: 10, Qty: 11},
	})

	assert.InDelta(t, 110, quote.RawSubtotal, 1e-9)
	assert.InDelta(t, 0, quote.PerDishDiscountTotal, 1e-9)
	assert.InDelta(t, 0.05, quote.CartRate, 1e-9)
	assert.InDelta(t, 5.5, quote.CartDiscountTotal, 1e-9)
	assert.InDelta(t, 104.5, quote.FinalSubtotal, 1e-9)
	assert.False(t, quote.NeedsHeadUp)
}

// The cart rate applies to the subtotal remaining after per-dish discounts,
// not to the raw subtotal. A single 21-unit line at 100 each pins this down.
func TestPriceCart_TiersStack(t *testing.T) {
	quote := service.PriceCart([]domain.CartLine{
		{ProductID: 1, Price: 100, Qty: 21},
	})

	assert.InDelta(t, 2100, quote.RawSubtotal, 1e-9)
	assert.InDelta(t, 525, quote.PerDishDiscountTotal, 1e-9)
	assert.InDelta(t, 1575, quote.SubtotalAfterPerDish, 1e-9)
	assert.InDelta(t, 0.10, quote.CartRate, 1e-9)
	assert.InDelta(t, 157.5, quote.CartDiscountTotal, 1e-9)
	assert.InDelta(t, 682.5, quote.DiscountTotal, 1e-9)
	assert.InDelta(t, 1417.5, quote.FinalSubtotal, 1e-9)
	assert.True(t, quote.NeedsHeadUp)

	line := quote.Lines[0]
	assert.InDelta(t, 0.25, line.PerDishRate, 1e-9)
	assert.InDelta(t, 525, line.PerDishDiscount, 1e-9)
	assert.InDelta(t, 1575, line.AfterPerDishTotal, 1e-9)
	assert.True(t, line.RequiresHeadUp)
}

func TestPriceCart_MixedLines(t *testing.T) {
	quote := service.PriceCart([]domain.CartLine{
		{ProductID: 1, Price: 100, Qty: 13}, // per-dish 15%
		{ProductID: 2, Price: 50, Qty: 4},   // no per-dish
	})

	// raw = 1300 + 200 = 1500; per-dish = 195; after = 1305
	// total qty 17 -> cart rate 0.10 -> cart discount 130.5
	assert.Equal(t, 17, quote.TotalQty)
	assert.InDelta(t, 1500, quote.RawSubtotal, 1e-9)
	assert.InDelta(t, 195, quote.PerDishDiscountTotal, 1e-9)
	assert.InDelta(t, 130.5, quote.CartDiscountTotal, 1e-9)
	assert.InDelta(t, 1174.5, quote.FinalSubtotal, 1e-9)
	assert.True(t, quote.NeedsHeadUp)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1417.5, service.Round2(1417.5))
	assert.Equal(t, 10.56, service.Round2(10.555))
	assert.Equal(t, 0.0, service.Round2(0.004))
}
