package entities

// MaxWishesPerPurchase bounds the wish count parsed from a purchase memo.
const MaxWishesPerPurchase = 1000

// PaymentToken is an accepted payment instrument for wish purchases, keyed
// by asset symbol. Administered via SetToken.
type PaymentToken struct {
	Symbol       string `db:"symbol"`
	Contract     string `db:"contract"`
	PricePerWish int64  `db:"price_per_wish"`
	BonusBps     int64  `db:"bonus_bps"`
	Enabled      bool   `db:"enabled"`
}

// RequiredPayment returns the token amount a purchase of count wishes must
// cover.
func (t *PaymentToken) RequiredPayment(count int64) int64 {
	return t.PricePerWish * count
}

// BonusWishes returns the extra credits granted for a purchase of count
// wishes, floor(count * bps / 10000).
func (t *PaymentToken) BonusWishes(count int64) int64 {
	return count * t.BonusBps / 10000
}

// TotalWishes returns the purchased credits for a purchase of count wishes,
// bonus included.
func (t *PaymentToken) TotalWishes(count int64) int64 {
	return count + t.BonusWishes(count)
}
