package repository

import (
	"context"
	"fmt"
	"time"

	"zoltaran/database"
	"zoltaran/domain/entities"

	"github.com/jackc/pgx/v5"
)

// WishCommitRepository implements the WishCommitRepository interface
type WishCommitRepository struct {
	q Queryable
}

// NewWishCommitRepository creates a new commit repository over the pool
func NewWishCommitRepository(db *database.DB) *WishCommitRepository {
	return &WishCommitRepository{q: db.Pool}
}

func newWishCommitRepository(q Queryable) *WishCommitRepository {
	return &WishCommitRepository{q: q}
}

// Create inserts a new commitment and assigns its id and creation time
func (r *WishCommitRepository) Create(ctx context.Context, commit *entities.WishCommit) error {
	query := `
		INSERT INTO wish_commits (player, commit_hash, block_height, wish_source)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		commit.Player,
		commit.CommitHash,
		commit.BlockHeight,
		commit.WishSource,
	).Scan(&commit.ID, &commit.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create commit for player %s: %w", commit.Player, err)
	}

	return nil
}

// GetByID retrieves a commitment by id, nil if absent
func (r *WishCommitRepository) GetByID(ctx context.Context, id int64) (*entities.WishCommit, error) {
	query := `
		SELECT id, player, commit_hash, block_height, wish_source, created_at
		FROM wish_commits
		WHERE id = $1
	`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByPlayer retrieves the player's live commitment, nil if none
func (r *WishCommitRepository) GetByPlayer(ctx context.Context, player string) (*entities.WishCommit, error) {
	query := `
		SELECT id, player, commit_hash, block_height, wish_source, created_at
		FROM wish_commits
		WHERE player = $1
	`
	return r.scanOne(r.q.QueryRow(ctx, query, player))
}

// Delete removes a commitment
func (r *WishCommitRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.q.Exec(ctx, `DELETE FROM wish_commits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete commit %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("commit %d not found", id)
	}
	return nil
}

// GetCreatedBefore returns commitments created strictly before the cutoff,
// oldest first, bounded by limit. The chronological order makes the
// sweeper's early exit at the first live commitment safe.
func (r *WishCommitRepository) GetCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.WishCommit, error) {
	query := `
		SELECT id, player, commit_hash, block_height, wish_source, created_at
		FROM wish_commits
		WHERE created_at < $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired commits: %w", err)
	}
	defer rows.Close()

	var commits []*entities.WishCommit
	for rows.Next() {
		var commit entities.WishCommit
		err := rows.Scan(
			&commit.ID,
			&commit.Player,
			&commit.CommitHash,
			&commit.BlockHeight,
			&commit.WishSource,
			&commit.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commit: %w", err)
		}
		commits = append(commits, &commit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}

	return commits, nil
}

func (r *WishCommitRepository) scanOne(row pgx.Row) (*entities.WishCommit, error) {
	var commit entities.WishCommit
	err := row.Scan(
		&commit.ID,
		&commit.Player,
		&commit.CommitHash,
		&commit.BlockHeight,
		&commit.WishSource,
		&commit.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}
	return &commit, nil
}
