package repository

import (
	"context"
	"testing"
	"time"

	"zoltaran/domain/entities"
	"zoltaran/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishCommitRepository_Create(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewWishCommitRepository(testDB.DB)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		commit := testutil.CreateTestCommit("alice", "secret", "bafy-cid", 100)

		err := repo.Create(ctx, commit)
		require.NoError(t, err)

		assert.NotZero(t, commit.ID)
		assert.False(t, commit.CreatedAt.IsZero())
	})

	t.Run("second live commit for same player rejected", func(t *testing.T) {
		commit := testutil.CreateTestCommit("bob", "secret", "bafy-cid", 100)
		require.NoError(t, repo.Create(ctx, commit))

		err := repo.Create(ctx, testutil.CreateTestCommit("bob", "other", "bafy-cid2", 101))
		assert.Error(t, err)
	})
}

func TestWishCommitRepository_GetByPlayer(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewWishCommitRepository(testDB.DB)
	ctx := context.Background()

	t.Run("no live commit", func(t *testing.T) {
		commit, err := repo.GetByPlayer(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, commit)
	})

	t.Run("live commit found", func(t *testing.T) {
		created := testutil.CreateTestPurchasedCommit("alice", "secret", "bafy-cid", 42)
		require.NoError(t, repo.Create(ctx, created))

		commit, err := repo.GetByPlayer(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, commit)

		assert.Equal(t, created.ID, commit.ID)
		assert.Equal(t, entities.CommitDigest("secret", "bafy-cid"), commit.CommitHash)
		assert.Equal(t, int64(42), commit.BlockHeight)
		assert.Equal(t, entities.WishSourcePurchased, commit.WishSource)
	})
}

func TestWishCommitRepository_Delete(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewWishCommitRepository(testDB.DB)
	ctx := context.Background()

	t.Run("delete frees the player slot", func(t *testing.T) {
		commit := testutil.CreateTestCommit("alice", "secret", "bafy-cid", 100)
		require.NoError(t, repo.Create(ctx, commit))
		require.NoError(t, repo.Delete(ctx, commit.ID))

		got, err := repo.GetByID(ctx, commit.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		// A fresh commit for the same player is allowed again
		require.NoError(t, repo.Create(ctx, testutil.CreateTestCommit("alice", "next", "bafy-cid2", 101)))
	})

	t.Run("delete missing commit", func(t *testing.T) {
		err := repo.Delete(ctx, 999999)
		assert.Error(t, err)
	})
}

func TestWishCommitRepository_GetCreatedBefore(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewWishCommitRepository(testDB.DB)
	ctx := context.Background()

	first := testutil.CreateTestCommit("alice", "s1", "cid1", 1)
	second := testutil.CreateTestCommit("bob", "s2", "cid2", 2)
	third := testutil.CreateTestCommit("carol", "s3", "cid3", 3)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))

	t.Run("returns oldest first within limit", func(t *testing.T) {
		cutoff := time.Now().Add(time.Hour)
		commits, err := repo.GetCreatedBefore(ctx, cutoff, 2)
		require.NoError(t, err)
		require.Len(t, commits, 2)

		assert.Equal(t, first.ID, commits[0].ID)
		assert.Equal(t, second.ID, commits[1].ID)
	})

	t.Run("cutoff in the past matches nothing", func(t *testing.T) {
		cutoff := time.Now().Add(-time.Hour)
		commits, err := repo.GetCreatedBefore(ctx, cutoff, 10)
		require.NoError(t, err)
		assert.Empty(t, commits)
	})
}
