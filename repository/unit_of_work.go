package repository

import (
	"context"
	"fmt"

	"zoltaran/application"
	"zoltaran/database"
	"zoltaran/domain/interfaces"
	"zoltaran/events"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the application.UnitOfWork interface
type unitOfWork struct {
	db        *database.DB
	tx        pgx.Tx
	ctx       context.Context
	publisher interfaces.TransactionalEventPublisher

	accountRepo interfaces.AccountRepository
	commitRepo  interfaces.WishCommitRepository
	resultRepo  interfaces.GameResultRepository
	boardRepo   interfaces.LeaderboardRepository
	configRepo  interfaces.GameConfigRepository
	tokenRepo   interfaces.PaymentTokenRepository
}

type unitOfWorkFactory struct {
	db  *database.DB
	bus *events.Bus
}

// NewUnitOfWorkFactory creates a factory producing units of work whose events
// are flushed to the given bus on commit
func NewUnitOfWorkFactory(db *database.DB, bus *events.Bus) application.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db, bus: bus}
}

// Create returns a fresh UnitOfWork with its own transactional publisher
func (f *unitOfWorkFactory) Create() application.UnitOfWork {
	return &unitOfWork{
		db:        f.db,
		publisher: events.NewTransactionalBus(f.bus),
	}
}

// Begin starts a new transaction and binds tx-scoped repositories
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.accountRepo = newAccountRepository(tx)
	u.commitRepo = newWishCommitRepository(tx)
	u.resultRepo = newGameResultRepository(tx)
	u.boardRepo = newLeaderboardRepository(tx)
	u.configRepo = newGameConfigRepository(tx)
	u.tokenRepo = newPaymentTokenRepository(tx)

	return nil
}

// Commit commits the transaction and flushes buffered events
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil
	u.publisher.Flush(u.ctx)

	return nil
}

// Rollback rolls back the transaction and discards buffered events
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil
	u.publisher.Discard()

	return nil
}

func (u *unitOfWork) AccountRepository() interfaces.AccountRepository {
	if u.accountRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.accountRepo
}

func (u *unitOfWork) WishCommitRepository() interfaces.WishCommitRepository {
	if u.commitRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.commitRepo
}

func (u *unitOfWork) GameResultRepository() interfaces.GameResultRepository {
	if u.resultRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.resultRepo
}

func (u *unitOfWork) LeaderboardRepository() interfaces.LeaderboardRepository {
	if u.boardRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.boardRepo
}

func (u *unitOfWork) GameConfigRepository() interfaces.GameConfigRepository {
	if u.configRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.configRepo
}

func (u *unitOfWork) PaymentTokenRepository() interfaces.PaymentTokenRepository {
	if u.tokenRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.tokenRepo
}

// EventBus returns the transactional publisher for this unit of work
func (u *unitOfWork) EventBus() interfaces.EventPublisher {
	return u.publisher
}
