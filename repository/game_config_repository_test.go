package repository

import (
	"context"
	"testing"

	"zoltaran/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameConfigRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGameConfigRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unconfigured game returns nil", func(t *testing.T) {
		cfg, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("set and get round-trip", func(t *testing.T) {
		created := testutil.CreateTestConfigWithTreasury("admin", 500_000_000_000)
		require.NoError(t, repo.Set(ctx, created))

		cfg, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "admin", cfg.Admin)
		assert.Equal(t, "token.pay", cfg.PaymentContract)
		assert.Equal(t, "ZLTN", cfg.RewardSymbol)
		assert.Equal(t, int64(500_000_000_000), cfg.TreasuryBalance)
		assert.False(t, cfg.Paused)
		assert.Equal(t, [5]int64{2000, 1000, 800, 200, 1000}, cfg.Weights())
	})

	t.Run("set replaces the singleton", func(t *testing.T) {
		updated := testutil.CreateTestConfig("admin2")
		updated.Paused = true
		updated.ProbGranted = 100
		require.NoError(t, repo.Set(ctx, updated))

		cfg, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "admin2", cfg.Admin)
		assert.True(t, cfg.Paused)
		assert.Equal(t, int64(100), cfg.ProbGranted)
	})

	t.Run("get for update sees the same row", func(t *testing.T) {
		cfg, err := repo.GetForUpdate(ctx)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "admin2", cfg.Admin)
	})

	t.Run("negative treasury rejected", func(t *testing.T) {
		bad := testutil.CreateTestConfig("admin")
		bad.TreasuryBalance = -1
		err := repo.Set(ctx, bad)
		assert.Error(t, err)
	})
}
