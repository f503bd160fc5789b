package interfaces

import (
	"context"
	"time"

	"zoltaran/domain/entities"
	"zoltaran/domain/events"
)

// AccountRepository defines the interface for player account data access
type AccountRepository interface {
	// GetByPlayer retrieves an account by player id, nil if absent
	GetByPlayer(ctx context.Context, player string) (*entities.Account, error)

	// Create inserts a new account
	Create(ctx context.Context, account *entities.Account) error

	// Update persists all mutable account fields
	Update(ctx context.Context, account *entities.Account) error

	// GetAll returns every account, newest first
	GetAll(ctx context.Context) ([]*entities.Account, error)
}

// WishCommitRepository defines the interface for pending commitment data access
type WishCommitRepository interface {
	// Create inserts a new commitment and assigns its id and creation time
	Create(ctx context.Context, commit *entities.WishCommit) error

	// GetByID retrieves a commitment by id, nil if absent
	GetByID(ctx context.Context, id int64) (*entities.WishCommit, error)

	// GetByPlayer retrieves the player's live commitment, nil if none
	GetByPlayer(ctx context.Context, player string) (*entities.WishCommit, error)

	// Delete removes a commitment
	Delete(ctx context.Context, id int64) error

	// GetCreatedBefore returns commitments created strictly before the
	// cutoff, oldest first, bounded by limit
	GetCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.WishCommit, error)
}

// GameResultRepository defines the interface for the append-only game history
type GameResultRepository interface {
	// Create appends a new result and assigns its id and timestamp
	Create(ctx context.Context, result *entities.GameResult) error

	// GetRecent returns the most recent results across all players
	GetRecent(ctx context.Context, limit int) ([]*entities.GameResult, error)

	// GetByPlayer returns a player's results, newest first
	GetByPlayer(ctx context.Context, player string, limit int) ([]*entities.GameResult, error)
}

// LeaderboardRepository defines the interface for win/earnings ranking data access
type LeaderboardRepository interface {
	// AddWin upserts a player's entry, adding the win and token deltas
	AddWin(ctx context.Context, player string, winsDelta, tokensDelta int64) error

	// GetTop returns entries ranked by wins descending, ties by player key
	GetTop(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
}

// GameConfigRepository defines the interface for the configuration singleton
type GameConfigRepository interface {
	// Get retrieves the configuration, nil if the game is unconfigured
	Get(ctx context.Context) (*entities.GameConfig, error)

	// GetForUpdate retrieves the configuration with a row lock for
	// read-modify-write of the treasury balance
	GetForUpdate(ctx context.Context) (*entities.GameConfig, error)

	// Set inserts or replaces the configuration
	Set(ctx context.Context, cfg *entities.GameConfig) error
}

// PaymentTokenRepository defines the interface for accepted payment instruments
type PaymentTokenRepository interface {
	// GetBySymbol retrieves a token config by symbol, nil if absent
	GetBySymbol(ctx context.Context, symbol string) (*entities.PaymentToken, error)

	// Upsert inserts or updates a token config
	Upsert(ctx context.Context, token *entities.PaymentToken) error

	// GetAll returns every configured token
	GetAll(ctx context.Context) ([]*entities.PaymentToken, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish queues an event for emission after the enclosing unit of
	// work commits
	Publish(event events.Event)
}

// TransactionalEventPublisher buffers published events until the unit of
// work settles, flushing on commit and discarding on rollback
type TransactionalEventPublisher interface {
	EventPublisher

	// Flush emits every buffered event
	Flush(ctx context.Context)

	// Discard drops all buffered events
	Discard()
}
