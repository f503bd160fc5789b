package application

import (
	"context"

	"zoltaran/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations.
// Every external operation runs inside exactly one unit of work so its state
// changes land atomically or not at all.
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes buffered events
	Commit() error

	// Rollback rolls back the transaction and discards buffered events
	Rollback() error

	// Repository getters
	AccountRepository() interfaces.AccountRepository
	WishCommitRepository() interfaces.WishCommitRepository
	GameResultRepository() interfaces.GameResultRepository
	LeaderboardRepository() interfaces.LeaderboardRepository
	GameConfigRepository() interfaces.GameConfigRepository
	PaymentTokenRepository() interfaces.PaymentTokenRepository
	EventBus() interfaces.EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create returns a fresh UnitOfWork
	Create() UnitOfWork
}
