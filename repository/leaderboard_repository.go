package repository

import (
	"context"
	"fmt"

	"zoltaran/database"
	"zoltaran/domain/entities"
)

// LeaderboardRepository implements the LeaderboardRepository interface
type LeaderboardRepository struct {
	q Queryable
}

// NewLeaderboardRepository creates a new leaderboard repository over the pool
func NewLeaderboardRepository(db *database.DB) *LeaderboardRepository {
	return &LeaderboardRepository{q: db.Pool}
}

func newLeaderboardRepository(q Queryable) *LeaderboardRepository {
	return &LeaderboardRepository{q: q}
}

// AddWin upserts a player's entry, adding the win and token deltas
func (r *LeaderboardRepository) AddWin(ctx context.Context, player string, winsDelta, tokensDelta int64) error {
	query := `
		INSERT INTO leaderboard (player, wins, tokens_won)
		VALUES ($1, $2, $3)
		ON CONFLICT (player) DO UPDATE
		SET wins = leaderboard.wins + EXCLUDED.wins,
		    tokens_won = leaderboard.tokens_won + EXCLUDED.tokens_won
	`

	if _, err := r.q.Exec(ctx, query, player, winsDelta, tokensDelta); err != nil {
		return fmt.Errorf("failed to upsert leaderboard entry for player %s: %w", player, err)
	}
	return nil
}

// GetTop returns entries ranked by wins descending, ties by player key
func (r *LeaderboardRepository) GetTop(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	query := `
		SELECT player, wins, tokens_won
		FROM leaderboard
		ORDER BY wins DESC, player ASC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*entities.LeaderboardEntry
	for rows.Next() {
		var entry entities.LeaderboardEntry
		if err := rows.Scan(&entry.Player, &entry.Wins, &entry.TokensWon); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %w", err)
	}

	return entries, nil
}
