package entities

import "time"

// GameResult is one immutable entry in the append-only game history. Every
// completed reveal writes exactly one record, win or not.
type GameResult struct {
	ID          int64       `db:"id"`
	Player      string      `db:"player"`
	OutcomeCode OutcomeCode `db:"outcome_code"`
	TokensWon   int64       `db:"tokens_won"`
	WishCID     string      `db:"wish_cid"`
	CreatedAt   time.Time   `db:"created_at"`
}
