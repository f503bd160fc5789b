package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameConfig_Validate(t *testing.T) {
	t.Run("weights within scale", func(t *testing.T) {
		cfg := &GameConfig{ProbGranted: 2000, ProbTokens250: 1000, ProbTokens500: 800, ProbTokens1000: 200, ProbFreeSpin: 1000}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("weights summing to scale exactly", func(t *testing.T) {
		cfg := &GameConfig{ProbGranted: ProbabilityScale}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("weights exceeding scale", func(t *testing.T) {
		cfg := &GameConfig{ProbGranted: ProbabilityScale, ProbFreeSpin: 1}
		assert.ErrorIs(t, cfg.Validate(), ErrValidation)
	})

	t.Run("negative weight", func(t *testing.T) {
		cfg := &GameConfig{ProbGranted: -1}
		assert.ErrorIs(t, cfg.Validate(), ErrValidation)
	})
}

func TestGameConfig_CanPay(t *testing.T) {
	cfg := &GameConfig{TreasuryBalance: 100}

	assert.True(t, cfg.CanPay(100))
	assert.True(t, cfg.CanPay(1))
	assert.False(t, cfg.CanPay(101))
}
