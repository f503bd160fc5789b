package repository

import (
	"context"
	"fmt"

	"zoltaran/database"
	"zoltaran/domain/entities"

	"github.com/jackc/pgx/v5"
)

const configColumns = `admin, payment_contract, reward_symbol, treasury_balance, paused,
		prob_granted, prob_tokens_250, prob_tokens_500, prob_tokens_1000, prob_free_spin`

// GameConfigRepository implements the GameConfigRepository interface over
// the single-row game_config table.
type GameConfigRepository struct {
	q Queryable
}

// NewGameConfigRepository creates a new config repository over the pool
func NewGameConfigRepository(db *database.DB) *GameConfigRepository {
	return &GameConfigRepository{q: db.Pool}
}

func newGameConfigRepository(q Queryable) *GameConfigRepository {
	return &GameConfigRepository{q: q}
}

// Get retrieves the configuration, nil if the game is unconfigured
func (r *GameConfigRepository) Get(ctx context.Context) (*entities.GameConfig, error) {
	query := `SELECT ` + configColumns + ` FROM game_config WHERE id = 1`
	return r.scanOne(r.q.QueryRow(ctx, query))
}

// GetForUpdate retrieves the configuration with a row lock so treasury
// read-modify-write cycles serialize.
func (r *GameConfigRepository) GetForUpdate(ctx context.Context) (*entities.GameConfig, error) {
	query := `SELECT ` + configColumns + ` FROM game_config WHERE id = 1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query))
}

// Set inserts or replaces the configuration
func (r *GameConfigRepository) Set(ctx context.Context, cfg *entities.GameConfig) error {
	query := `
		INSERT INTO game_config (id, ` + configColumns + `)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET admin = EXCLUDED.admin,
		    payment_contract = EXCLUDED.payment_contract,
		    reward_symbol = EXCLUDED.reward_symbol,
		    treasury_balance = EXCLUDED.treasury_balance,
		    paused = EXCLUDED.paused,
		    prob_granted = EXCLUDED.prob_granted,
		    prob_tokens_250 = EXCLUDED.prob_tokens_250,
		    prob_tokens_500 = EXCLUDED.prob_tokens_500,
		    prob_tokens_1000 = EXCLUDED.prob_tokens_1000,
		    prob_free_spin = EXCLUDED.prob_free_spin
	`

	_, err := r.q.Exec(ctx, query,
		cfg.Admin,
		cfg.PaymentContract,
		cfg.RewardSymbol,
		cfg.TreasuryBalance,
		cfg.Paused,
		cfg.ProbGranted,
		cfg.ProbTokens250,
		cfg.ProbTokens500,
		cfg.ProbTokens1000,
		cfg.ProbFreeSpin,
	)
	if err != nil {
		return fmt.Errorf("failed to set game config: %w", err)
	}

	return nil
}

func (r *GameConfigRepository) scanOne(row pgx.Row) (*entities.GameConfig, error) {
	var cfg entities.GameConfig
	err := row.Scan(
		&cfg.Admin,
		&cfg.PaymentContract,
		&cfg.RewardSymbol,
		&cfg.TreasuryBalance,
		&cfg.Paused,
		&cfg.ProbGranted,
		&cfg.ProbTokens250,
		&cfg.ProbTokens500,
		&cfg.ProbTokens1000,
		&cfg.ProbFreeSpin,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game config: %w", err)
	}
	return &cfg, nil
}
