package interfaces

import (
	"context"

	"zoltaran/domain/entities"
)

// RevealResult is the full outcome of a successful reveal.
type RevealResult struct {
	Commit    *entities.WishCommit
	Result    *entities.GameResult
	Outcome   entities.OutcomeCode
	TokensWon int64
	Draw      uint32
	Account   *entities.Account
}

// WishService drives the commit-reveal state machine.
type WishService interface {
	// Commit creates a pending commitment for the player, consuming a free
	// or purchased wish credit. Caller must be the player.
	Commit(ctx context.Context, caller, player string, commitHash []byte, source entities.WishSource) (*entities.WishCommit, error)

	// Reveal validates the secret against the stored commitment, resolves
	// the outcome, settles stats, payout, history and leaderboard, and
	// removes the commitment. Caller must be the player.
	Reveal(ctx context.Context, caller string, commitID int64, secret, wishCID string) (*RevealResult, error)
}

// PurchaseService routes incoming value transfers by memo convention.
type PurchaseService interface {
	// HandleTransfer processes an incoming transfer notification. Treasury
	// memos fund the treasury; "WISHES:<n>" memos purchase wish credits;
	// anything else is ignored.
	HandleTransfer(ctx context.Context, from, contract, symbol string, amount int64, memo string) error
}

// TreasuryService owns the tracked payable balance.
type TreasuryService interface {
	// Fund credits an incoming deposit to the tracked balance
	Fund(ctx context.Context, from string, amount int64) error

	// Payout transfers a reward to the player and decrements the tracked
	// balance, refusing to drive it negative
	Payout(ctx context.Context, player string, amount int64) error

	// Withdraw performs an admin-only outbound transfer. Caller must be
	// the configured admin and the amount must not exceed the balance.
	Withdraw(ctx context.Context, caller, to string, amount int64) error
}

// SweeperService reclaims abandoned commitments.
type SweeperService interface {
	// Sweep removes up to maxClean expired commitments, refunding
	// purchased-source credits. Callable by anyone; returns the number
	// removed.
	Sweep(ctx context.Context, maxClean int) (int, error)
}

// AdminService applies administrator configuration changes.
type AdminService interface {
	// SetConfig replaces the game configuration. Caller must be the
	// contract owner.
	SetConfig(ctx context.Context, caller string, cfg *entities.GameConfig) error

	// SetToken upserts an accepted payment instrument. Caller must be the
	// configured admin.
	SetToken(ctx context.Context, caller string, token *entities.PaymentToken) error

	// SetPause toggles the global pause flag. Caller must be the
	// configured admin.
	SetPause(ctx context.Context, caller string, paused bool) error
}

// GlobalStats aggregates lifetime counters across all accounts.
type GlobalStats struct {
	Players     int64
	TotalWishes int64
	TotalWins   int64
	TokensWon   int64
}

// StatsService serves the read-side queries.
type StatsService interface {
	// GetAccount returns a player's account, nil if the player has never
	// interacted
	GetAccount(ctx context.Context, player string) (*entities.Account, error)

	// GetLeaderboard returns the top entries by wins
	GetLeaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)

	// GetRecentResults returns the most recent game results
	GetRecentResults(ctx context.Context, limit int) ([]*entities.GameResult, error)

	// GetPlayerResults returns a player's game results, newest first
	GetPlayerResults(ctx context.Context, player string, limit int) ([]*entities.GameResult, error)

	// GetTokens returns every configured payment instrument
	GetTokens(ctx context.Context) ([]*entities.PaymentToken, error)

	// GetGlobalStats returns lifetime counters aggregated over all players
	GetGlobalStats(ctx context.Context) (*GlobalStats, error)
}
