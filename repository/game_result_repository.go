package repository

import (
	"context"
	"fmt"

	"zoltaran/database"
	"zoltaran/domain/entities"
)

// GameResultRepository implements the GameResultRepository interface
type GameResultRepository struct {
	q Queryable
}

// NewGameResultRepository creates a new game result repository over the pool
func NewGameResultRepository(db *database.DB) *GameResultRepository {
	return &GameResultRepository{q: db.Pool}
}

func newGameResultRepository(q Queryable) *GameResultRepository {
	return &GameResultRepository{q: q}
}

// Create appends a new result and assigns its id and timestamp. History is
// append-only; there is no update or delete.
func (r *GameResultRepository) Create(ctx context.Context, result *entities.GameResult) error {
	query := `
		INSERT INTO game_results (player, outcome_code, tokens_won, wish_cid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		result.Player,
		result.OutcomeCode,
		result.TokensWon,
		result.WishCID,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create game result for player %s: %w", result.Player, err)
	}

	return nil
}

// GetRecent returns the most recent results across all players
func (r *GameResultRepository) GetRecent(ctx context.Context, limit int) ([]*entities.GameResult, error) {
	query := `
		SELECT id, player, outcome_code, tokens_won, wish_cid, created_at
		FROM game_results
		ORDER BY id DESC
		LIMIT $1
	`
	return r.queryMany(ctx, query, limit)
}

// GetByPlayer returns a player's results, newest first
func (r *GameResultRepository) GetByPlayer(ctx context.Context, player string, limit int) ([]*entities.GameResult, error) {
	query := `
		SELECT id, player, outcome_code, tokens_won, wish_cid, created_at
		FROM game_results
		WHERE player = $1
		ORDER BY id DESC
		LIMIT $2
	`
	return r.queryMany(ctx, query, player, limit)
}

func (r *GameResultRepository) queryMany(ctx context.Context, query string, args ...any) ([]*entities.GameResult, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	var results []*entities.GameResult
	for rows.Next() {
		var result entities.GameResult
		err := rows.Scan(
			&result.ID,
			&result.Player,
			&result.OutcomeCode,
			&result.TokensWon,
			&result.WishCID,
			&result.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game results: %w", err)
	}

	return results, nil
}
