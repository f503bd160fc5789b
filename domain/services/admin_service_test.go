package services

import (
	"context"
	"testing"

	"zoltaran/domain/entities"
	"zoltaran/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceMocks struct {
	configRepo *testhelpers.MockGameConfigRepository
	tokenRepo  *testhelpers.MockPaymentTokenRepository
}

func newAdminServiceMocks() *adminServiceMocks {
	return &adminServiceMocks{
		configRepo: new(testhelpers.MockGameConfigRepository),
		tokenRepo:  new(testhelpers.MockPaymentTokenRepository),
	}
}

func (m *adminServiceMocks) service() *adminService {
	return NewAdminService(m.configRepo, m.tokenRepo, "owner").(*adminService)
}

func (m *adminServiceMocks) assertExpectations(t *testing.T) {
	m.configRepo.AssertExpectations(t)
	m.tokenRepo.AssertExpectations(t)
}

func adminConfig() *entities.GameConfig {
	cfg := defaultWeights()
	cfg.Admin = "admin"
	cfg.TreasuryBalance = 12345
	return cfg
}

func TestAdminService_SetConfig_OwnerOnly(t *testing.T) {
	m := newAdminServiceMocks()

	err := m.service().SetConfig(context.Background(), "admin", adminConfig())
	assert.ErrorIs(t, err, entities.ErrNotAuthorized)
	m.assertExpectations(t)
}

func TestAdminService_SetConfig_RejectsOverweightProbabilities(t *testing.T) {
	m := newAdminServiceMocks()

	cfg := adminConfig()
	cfg.ProbGranted = entities.ProbabilityScale
	cfg.ProbFreeSpin = 1

	err := m.service().SetConfig(context.Background(), "owner", cfg)
	assert.ErrorIs(t, err, entities.ErrValidation)
	m.assertExpectations(t)
}

func TestAdminService_SetConfig_RejectsNegativeWeight(t *testing.T) {
	m := newAdminServiceMocks()

	cfg := adminConfig()
	cfg.ProbTokens500 = -1

	err := m.service().SetConfig(context.Background(), "owner", cfg)
	assert.ErrorIs(t, err, entities.ErrValidation)
	m.assertExpectations(t)
}

func TestAdminService_SetConfig_PreservesTreasuryAndUnpauses(t *testing.T) {
	m := newAdminServiceMocks()
	ctx := context.Background()

	existing := adminConfig()
	existing.TreasuryBalance = 999
	existing.Paused = true

	incoming := adminConfig()
	incoming.TreasuryBalance = 0
	incoming.Paused = true

	m.configRepo.On("GetForUpdate", ctx).Return(existing, nil)
	m.configRepo.On("Set", ctx, mock.MatchedBy(func(c *entities.GameConfig) bool {
		return c.TreasuryBalance == 999 && !c.Paused
	})).Return(nil)

	err := m.service().SetConfig(ctx, "owner", incoming)
	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestAdminService_SetConfig_Bootstrap(t *testing.T) {
	m := newAdminServiceMocks()
	ctx := context.Background()

	incoming := adminConfig()
	incoming.TreasuryBalance = 0

	m.configRepo.On("GetForUpdate", ctx).Return(nil, nil)
	m.configRepo.On("Set", ctx, incoming).Return(nil)

	err := m.service().SetConfig(ctx, "owner", incoming)
	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestAdminService_SetToken(t *testing.T) {
	m := newAdminServiceMocks()
	ctx := context.Background()

	token := &entities.PaymentToken{Symbol: "WISH", Contract: "token.pay", PricePerWish: 100, Enabled: true}
	m.configRepo.On("GetForUpdate", ctx).Return(adminConfig(), nil)
	m.tokenRepo.On("Upsert", ctx, token).Return(nil)

	err := m.service().SetToken(ctx, "admin", token)
	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestAdminService_SetToken_AdminOnly(t *testing.T) {
	m := newAdminServiceMocks()
	ctx := context.Background()

	m.configRepo.On("GetForUpdate", ctx).Return(adminConfig(), nil)

	token := &entities.PaymentToken{Symbol: "WISH", Contract: "token.pay", PricePerWish: 100}
	err := m.service().SetToken(ctx, "owner", token)
	assert.ErrorIs(t, err, entities.ErrNotAuthorized)
	m.assertExpectations(t)
}

func TestAdminService_SetToken_Validation(t *testing.T) {
	tests := []struct {
		name  string
		token *entities.PaymentToken
	}{
		{"missing symbol", &entities.PaymentToken{Contract: "token.pay", PricePerWish: 100}},
		{"missing contract", &entities.PaymentToken{Symbol: "WISH", PricePerWish: 100}},
		{"zero price", &entities.PaymentToken{Symbol: "WISH", Contract: "token.pay"}},
		{"negative bonus", &entities.PaymentToken{Symbol: "WISH", Contract: "token.pay", PricePerWish: 100, BonusBps: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAdminServiceMocks()
			ctx := context.Background()

			m.configRepo.On("GetForUpdate", ctx).Return(adminConfig(), nil)

			err := m.service().SetToken(ctx, "admin", tt.token)
			assert.ErrorIs(t, err, entities.ErrValidation)
			m.assertExpectations(t)
		})
	}
}

func TestAdminService_SetPause(t *testing.T) {
	m := newAdminServiceMocks()
	ctx := context.Background()

	m.configRepo.On("GetForUpdate", ctx).Return(adminConfig(), nil)
	m.configRepo.On("Set", ctx, mock.MatchedBy(func(c *entities.GameConfig) bool {
		return c.Paused
	})).Return(nil)

	err := m.service().SetPause(ctx, "admin", true)
	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestAdminService_SetPause_RequiresConfiguration(t *testing.T) {
	m := newAdminServiceMocks()
	ctx := context.Background()

	m.configRepo.On("GetForUpdate", ctx).Return(nil, nil)

	err := m.service().SetPause(ctx, "admin", true)
	assert.ErrorIs(t, err, entities.ErrPolicy)
	m.assertExpectations(t)
}
