package entities

import "time"

// Account tracks a player's wish credits, free-wish cooldown and lifetime
// stats. Accounts are created lazily on first commit or first purchase and
// never deleted.
type Account struct {
	Player          string    `db:"player"`
	PurchasedWishes int64     `db:"purchased_wishes"`
	LastFreeDay     int64     `db:"last_free_day"`
	TotalWishes     int64     `db:"total_wishes"`
	TotalWins       int64     `db:"total_wins"`
	TokensWon       int64     `db:"tokens_won"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// HasPurchasedWish reports whether the player holds at least one purchased
// wish credit.
func (a *Account) HasPurchasedWish() bool {
	return a.PurchasedWishes > 0
}

// CanUseFreeWish reports whether the daily free wish is still available for
// the given day index.
func (a *Account) CanUseFreeWish(day int64) bool {
	return a.LastFreeDay < day
}

// ApplyOutcome folds a resolved outcome into the lifetime stats. A free spin
// grants one extra purchased credit; a granted wish counts as a win.
func (a *Account) ApplyOutcome(code OutcomeCode, tokensWon int64) {
	a.TotalWishes++
	if code == OutcomeWishGranted {
		a.TotalWins++
	}
	if code == OutcomeFreeSpin {
		a.PurchasedWishes++
	}
	a.TokensWon += tokensWon
}

// DayIndex converts a point in time to the UTC day number used for free-wish
// gating.
func DayIndex(t time.Time) int64 {
	return t.UTC().Unix() / 86400
}
