package entities

// LeaderboardEntry aggregates a player's wins and token earnings. Entries
// are upserted incrementally on each winning reveal and ranked by wins
// descending, ties broken by player key order.
type LeaderboardEntry struct {
	Player    string `db:"player"`
	Wins      int64  `db:"wins"`
	TokensWon int64  `db:"tokens_won"`
}
