package services

import (
	"context"
	"fmt"

	"zoltaran/domain/entities"
	"zoltaran/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// adminService applies administrator configuration changes. SetConfig is
// gated on the contract owner identity; SetToken and SetPause on the admin
// named in the configuration.
type adminService struct {
	configRepo interfaces.GameConfigRepository
	tokenRepo  interfaces.PaymentTokenRepository
	owner      string
}

// NewAdminService creates a new admin service. owner is the identity allowed
// to call SetConfig.
func NewAdminService(
	configRepo interfaces.GameConfigRepository,
	tokenRepo interfaces.PaymentTokenRepository,
	owner string,
) interfaces.AdminService {
	return &adminService{
		configRepo: configRepo,
		tokenRepo:  tokenRepo,
		owner:      owner,
	}
}

func (s *adminService) SetConfig(ctx context.Context, caller string, cfg *entities.GameConfig) error {
	if caller != s.owner {
		return fmt.Errorf("%w: only the contract owner may set the configuration", entities.ErrNotAuthorized)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	existing, err := s.configRepo.GetForUpdate(ctx)
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}

	// The tracked treasury balance survives reconfiguration; the pause
	// flag resets so a fresh configuration starts live.
	if existing != nil {
		cfg.TreasuryBalance = existing.TreasuryBalance
	}
	cfg.Paused = false

	if err := s.configRepo.Set(ctx, cfg); err != nil {
		return fmt.Errorf("failed to set config: %w", err)
	}

	log.WithFields(log.Fields{
		"admin":        cfg.Admin,
		"rewardSymbol": cfg.RewardSymbol,
	}).Info("game configuration updated")

	return nil
}

func (s *adminService) SetToken(ctx context.Context, caller string, token *entities.PaymentToken) error {
	if _, err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}

	if token.Symbol == "" || token.Contract == "" {
		return fmt.Errorf("%w: token symbol and contract are required", entities.ErrValidation)
	}
	if token.PricePerWish <= 0 {
		return fmt.Errorf("%w: price per wish must be positive", entities.ErrValidation)
	}
	if token.BonusBps < 0 {
		return fmt.Errorf("%w: bonus basis points must not be negative", entities.ErrValidation)
	}

	if err := s.tokenRepo.Upsert(ctx, token); err != nil {
		return fmt.Errorf("failed to upsert payment token: %w", err)
	}

	log.WithFields(log.Fields{
		"symbol":  token.Symbol,
		"enabled": token.Enabled,
	}).Info("payment token updated")

	return nil
}

func (s *adminService) SetPause(ctx context.Context, caller string, paused bool) error {
	cfg, err := s.requireAdmin(ctx, caller)
	if err != nil {
		return err
	}

	cfg.Paused = paused
	if err := s.configRepo.Set(ctx, cfg); err != nil {
		return fmt.Errorf("failed to set pause flag: %w", err)
	}

	log.WithField("paused", paused).Info("pause flag updated")
	return nil
}

// requireAdmin loads the configuration and verifies the caller is the
// configured admin.
func (s *adminService) requireAdmin(ctx context.Context, caller string) (*entities.GameConfig, error) {
	cfg, err := s.configRepo.GetForUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: game not configured", entities.ErrPolicy)
	}
	if caller != cfg.Admin {
		return nil, fmt.Errorf("%w: only the admin may perform this operation", entities.ErrNotAuthorized)
	}
	return cfg, nil
}
