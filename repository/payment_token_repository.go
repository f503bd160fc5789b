package repository

import (
	"context"
	"fmt"

	"zoltaran/database"
	"zoltaran/domain/entities"

	"github.com/jackc/pgx/v5"
)

// PaymentTokenRepository implements the PaymentTokenRepository interface
type PaymentTokenRepository struct {
	q Queryable
}

// NewPaymentTokenRepository creates a new payment token repository over the pool
func NewPaymentTokenRepository(db *database.DB) *PaymentTokenRepository {
	return &PaymentTokenRepository{q: db.Pool}
}

func newPaymentTokenRepository(q Queryable) *PaymentTokenRepository {
	return &PaymentTokenRepository{q: q}
}

// GetBySymbol retrieves a token config by symbol, nil if absent
func (r *PaymentTokenRepository) GetBySymbol(ctx context.Context, symbol string) (*entities.PaymentToken, error) {
	query := `
		SELECT symbol, contract, price_per_wish, bonus_bps, enabled
		FROM payment_tokens
		WHERE symbol = $1
	`

	var token entities.PaymentToken
	err := r.q.QueryRow(ctx, query, symbol).Scan(
		&token.Symbol,
		&token.Contract,
		&token.PricePerWish,
		&token.BonusBps,
		&token.Enabled,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment token %s: %w", symbol, err)
	}

	return &token, nil
}

// Upsert inserts or updates a token config
func (r *PaymentTokenRepository) Upsert(ctx context.Context, token *entities.PaymentToken) error {
	query := `
		INSERT INTO payment_tokens (symbol, contract, price_per_wish, bonus_bps, enabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (symbol) DO UPDATE
		SET contract = EXCLUDED.contract,
		    price_per_wish = EXCLUDED.price_per_wish,
		    bonus_bps = EXCLUDED.bonus_bps,
		    enabled = EXCLUDED.enabled
	`

	_, err := r.q.Exec(ctx, query,
		token.Symbol,
		token.Contract,
		token.PricePerWish,
		token.BonusBps,
		token.Enabled,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert payment token %s: %w", token.Symbol, err)
	}

	return nil
}

// GetAll returns every configured token
func (r *PaymentTokenRepository) GetAll(ctx context.Context) ([]*entities.PaymentToken, error) {
	query := `
		SELECT symbol, contract, price_per_wish, bonus_bps, enabled
		FROM payment_tokens
		ORDER BY symbol
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment tokens: %w", err)
	}
	defer rows.Close()

	var tokens []*entities.PaymentToken
	for rows.Next() {
		var token entities.PaymentToken
		err := rows.Scan(
			&token.Symbol,
			&token.Contract,
			&token.PricePerWish,
			&token.BonusBps,
			&token.Enabled,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment token: %w", err)
		}
		tokens = append(tokens, &token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment tokens: %w", err)
	}

	return tokens, nil
}
