package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentToken_Pricing(t *testing.T) {
	token := &PaymentToken{Symbol: "WISH", PricePerWish: 100, BonusBps: 500}

	assert.Equal(t, int64(1000), token.RequiredPayment(10))

	// floor(10 * 500 / 10000) = 0, floor(20 * 500 / 10000) = 1
	assert.Equal(t, int64(0), token.BonusWishes(10))
	assert.Equal(t, int64(1), token.BonusWishes(20))
	assert.Equal(t, int64(21), token.TotalWishes(20))
}

func TestPaymentToken_NoBonus(t *testing.T) {
	token := &PaymentToken{Symbol: "WISH", PricePerWish: 100}

	assert.Equal(t, int64(0), token.BonusWishes(1000))
	assert.Equal(t, int64(1000), token.TotalWishes(1000))
}
