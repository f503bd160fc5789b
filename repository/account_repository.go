package repository

import (
	"context"
	"fmt"

	"zoltaran/database"
	"zoltaran/domain/entities"

	"github.com/jackc/pgx/v5"
)

// AccountRepository implements the AccountRepository interface
type AccountRepository struct {
	q Queryable
}

// NewAccountRepository creates a new account repository over the pool
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

func newAccountRepository(q Queryable) *AccountRepository {
	return &AccountRepository{q: q}
}

// GetByPlayer retrieves an account by player id, nil if absent
func (r *AccountRepository) GetByPlayer(ctx context.Context, player string) (*entities.Account, error) {
	query := `
		SELECT player, purchased_wishes, last_free_day, total_wishes, total_wins, tokens_won, created_at, updated_at
		FROM accounts
		WHERE player = $1
	`

	var account entities.Account
	err := r.q.QueryRow(ctx, query, player).Scan(
		&account.Player,
		&account.PurchasedWishes,
		&account.LastFreeDay,
		&account.TotalWishes,
		&account.TotalWins,
		&account.TokensWon,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account for player %s: %w", player, err)
	}

	return &account, nil
}

// Create inserts a new account
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	query := `
		INSERT INTO accounts (player, purchased_wishes, last_free_day, total_wishes, total_wins, tokens_won)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		account.Player,
		account.PurchasedWishes,
		account.LastFreeDay,
		account.TotalWishes,
		account.TotalWins,
		account.TokensWon,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account for player %s: %w", account.Player, err)
	}

	return nil
}

// Update persists all mutable account fields
func (r *AccountRepository) Update(ctx context.Context, account *entities.Account) error {
	query := `
		UPDATE accounts
		SET purchased_wishes = $1, last_free_day = $2, total_wishes = $3, total_wins = $4, tokens_won = $5, updated_at = NOW()
		WHERE player = $6
	`

	result, err := r.q.Exec(ctx, query,
		account.PurchasedWishes,
		account.LastFreeDay,
		account.TotalWishes,
		account.TotalWins,
		account.TokensWon,
		account.Player,
	)
	if err != nil {
		return fmt.Errorf("failed to update account for player %s: %w", account.Player, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account for player %s not found", account.Player)
	}

	return nil
}

// GetAll returns every account, newest first
func (r *AccountRepository) GetAll(ctx context.Context) ([]*entities.Account, error) {
	query := `
		SELECT player, purchased_wishes, last_free_day, total_wishes, total_wins, tokens_won, created_at, updated_at
		FROM accounts
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*entities.Account
	for rows.Next() {
		var account entities.Account
		err := rows.Scan(
			&account.Player,
			&account.PurchasedWishes,
			&account.LastFreeDay,
			&account.TotalWishes,
			&account.TotalWins,
			&account.TokensWon,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}
