package application

import (
	"context"

	"zoltaran/domain/entities"
	"zoltaran/domain/interfaces"
	"zoltaran/domain/services"
)

// App orchestrates the game's external operations. Every operation runs in
// its own unit of work: domain services are bound to the transaction's
// repositories, and all writes land atomically or not at all.
type App struct {
	uowFactory UnitOfWorkFactory
	ledger     interfaces.Ledger
	owner      string
}

// NewApp creates the application orchestrator. owner is the operator identity
// allowed to bootstrap the game configuration.
func NewApp(uowFactory UnitOfWorkFactory, ledger interfaces.Ledger, owner string) *App {
	return &App{
		uowFactory: uowFactory,
		ledger:     ledger,
		owner:      owner,
	}
}

// txServices bundles the domain services bound to one unit of work.
type txServices struct {
	wish     interfaces.WishService
	purchase interfaces.PurchaseService
	treasury interfaces.TreasuryService
	sweeper  interfaces.SweeperService
	admin    interfaces.AdminService
	stats    interfaces.StatsService
}

func (a *App) buildServices(uow UnitOfWork) *txServices {
	treasury := services.NewTreasuryService(
		uow.GameConfigRepository(),
		a.ledger,
		uow.EventBus(),
	)
	return &txServices{
		wish: services.NewWishService(
			uow.AccountRepository(),
			uow.WishCommitRepository(),
			uow.GameResultRepository(),
			uow.LeaderboardRepository(),
			uow.GameConfigRepository(),
			treasury,
			a.ledger,
			uow.EventBus(),
		),
		purchase: services.NewPurchaseService(
			uow.AccountRepository(),
			uow.PaymentTokenRepository(),
			uow.GameConfigRepository(),
			treasury,
			uow.EventBus(),
		),
		treasury: treasury,
		sweeper: services.NewSweeperService(
			uow.AccountRepository(),
			uow.WishCommitRepository(),
			uow.GameConfigRepository(),
			a.ledger,
			uow.EventBus(),
		),
		admin: services.NewAdminService(
			uow.GameConfigRepository(),
			uow.PaymentTokenRepository(),
			a.owner,
		),
		stats: services.NewStatsService(
			uow.AccountRepository(),
			uow.GameResultRepository(),
			uow.LeaderboardRepository(),
			uow.PaymentTokenRepository(),
		),
	}
}

// withUnitOfWork runs fn inside a transaction, committing on success and
// rolling back on error.
func (a *App) withUnitOfWork(ctx context.Context, fn func(s *txServices) error) error {
	uow := a.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := fn(a.buildServices(uow)); err != nil {
		uow.Rollback()
		return err
	}

	return uow.Commit()
}

// Commit creates a pending commitment for the player.
func (a *App) Commit(ctx context.Context, caller, player string, commitHash []byte, source entities.WishSource) (*entities.WishCommit, error) {
	var commit *entities.WishCommit
	err := a.withUnitOfWork(ctx, func(s *txServices) error {
		var err error
		commit, err = s.wish.Commit(ctx, caller, player, commitHash, source)
		return err
	})
	if err != nil {
		return nil, err
	}
	return commit, nil
}

// Reveal completes a commit-reveal cycle and settles the outcome.
func (a *App) Reveal(ctx context.Context, caller string, commitID int64, secret, wishCID string) (*interfaces.RevealResult, error) {
	var result *interfaces.RevealResult
	err := a.withUnitOfWork(ctx, func(s *txServices) error {
		var err error
		result, err = s.wish.Reveal(ctx, caller, commitID, secret, wishCID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HandleTransfer processes an incoming transfer notification.
func (a *App) HandleTransfer(ctx context.Context, from, contract, symbol string, amount int64, memo string) error {
	return a.withUnitOfWork(ctx, func(s *txServices) error {
		return s.purchase.HandleTransfer(ctx, from, contract, symbol, amount, memo)
	})
}

// Sweep reclaims up to maxClean expired commitments.
func (a *App) Sweep(ctx context.Context, maxClean int) (int, error) {
	var removed int
	err := a.withUnitOfWork(ctx, func(s *txServices) error {
		var err error
		removed, err = s.sweeper.Sweep(ctx, maxClean)
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Withdraw performs an admin-only outbound transfer from the treasury.
func (a *App) Withdraw(ctx context.Context, caller, to string, amount int64) error {
	return a.withUnitOfWork(ctx, func(s *txServices) error {
		return s.treasury.Withdraw(ctx, caller, to, amount)
	})
}

// SetConfig replaces the game configuration.
func (a *App) SetConfig(ctx context.Context, caller string, cfg *entities.GameConfig) error {
	return a.withUnitOfWork(ctx, func(s *txServices) error {
		return s.admin.SetConfig(ctx, caller, cfg)
	})
}

// SetToken upserts an accepted payment instrument.
func (a *App) SetToken(ctx context.Context, caller string, token *entities.PaymentToken) error {
	return a.withUnitOfWork(ctx, func(s *txServices) error {
		return s.admin.SetToken(ctx, caller, token)
	})
}

// SetPause toggles the global pause flag.
func (a *App) SetPause(ctx context.Context, caller string, paused bool) error {
	return a.withUnitOfWork(ctx, func(s *txServices) error {
		return s.admin.SetPause(ctx, caller, paused)
	})
}

// GetAccount returns a player's account, nil if the player has never
// interacted.
func (a *App) GetAccount(ctx context.Context, player string) (*entities.Account, error) {
	var account *entities.Account
	err := a.withUnitOfWork(ctx, func(s *txServices) error {
		var err error
		account, err = s.stats.GetAccount(ctx, player)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetLeaderboard returns the top entries by wins.
func (a *App) GetLeaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	var entries []*entities.LeaderboardEntry
	err := a.withUnitOfWork(ctx, func(s *txServices) error {
		var err error
		entries, err = s.stats.GetLeaderboard(ctx, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetRecentResults returns the most recent game results.
func (a *App) GetRecentResults(ctx context.Context, limit int) ([]*entities.GameResult, error) {
	var results []*entities.GameResult
	err := a.withUnitOfWork(ctx, func(s *txServices) error {
		var err error
		results, err = s.stats.GetRecentResults(ctx, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetPlayerResults returns a player's game results, newest first.
func (a *App) GetPlayerResults(ctx context.Context, player string, limit int) ([]*entities.GameResult, error) {
	var results []*entities.GameResult
	err := a.withUnitOfWork(ctx, func(s *txServices) error {
		var err error
		results, err = s.stats.GetPlayerResults(ctx, player, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetTokens returns every configured payment instrument.
func (a *App) GetTokens(ctx context.Context) ([]*entities.PaymentToken, error) {
	var tokens []*entities.PaymentToken
	err := a.withUnitOfWork(ctx, func(s *txServices) error {
		var err error
		tokens, err = s.stats.GetTokens(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// GetGlobalStats returns lifetime counters aggregated over all players.
func (a *App) GetGlobalStats(ctx context.Context) (*interfaces.GlobalStats, error) {
	var stats *interfaces.GlobalStats
	err := a.withUnitOfWork(ctx, func(s *txServices) error {
		var err error
		stats, err = s.stats.GetGlobalStats(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
