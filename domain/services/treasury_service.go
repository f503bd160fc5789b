package services

import (
	"context"
	"fmt"

	"zoltaran/domain/entities"
	"zoltaran/domain/events"
	"zoltaran/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// treasuryService tracks the payable balance backing monetary outcomes. The
// tracked balance is bookkeeping, deliberately separate from the game's
// actual external holdings: only transfers tagged as funding become payable.
type treasuryService struct {
	configRepo     interfaces.GameConfigRepository
	ledger         interfaces.Ledger
	eventPublisher interfaces.EventPublisher
}

// NewTreasuryService creates a new treasury service
func NewTreasuryService(
	configRepo interfaces.GameConfigRepository,
	ledger interfaces.Ledger,
	eventPublisher interfaces.EventPublisher,
) interfaces.TreasuryService {
	return &treasuryService{
		configRepo:     configRepo,
		ledger:         ledger,
		eventPublisher: eventPublisher,
	}
}

func (s *treasuryService) Fund(ctx context.Context, from string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: funding amount must be positive", entities.ErrValidation)
	}

	cfg, err := s.configRepo.GetForUpdate(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("%w: game not configured", entities.ErrPolicy)
	}

	cfg.TreasuryBalance += amount
	if err := s.configRepo.Set(ctx, cfg); err != nil {
		return fmt.Errorf("failed to update treasury balance: %w", err)
	}

	log.WithFields(log.Fields{
		"from":       from,
		"amount":     amount,
		"newBalance": cfg.TreasuryBalance,
	}).Info("treasury funded")

	s.eventPublisher.Publish(events.TreasuryFundedEvent{
		From:       from,
		Amount:     amount,
		NewBalance: cfg.TreasuryBalance,
	})

	return nil
}

func (s *treasuryService) Payout(ctx context.Context, player string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: payout amount must be positive", entities.ErrValidation)
	}

	cfg, err := s.configRepo.GetForUpdate(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("%w: game not configured", entities.ErrPolicy)
	}
	if !cfg.CanPay(amount) {
		return fmt.Errorf("%w: payout %d exceeds treasury balance %d", entities.ErrInvariant, amount, cfg.TreasuryBalance)
	}

	if err := s.ledger.Transfer(ctx, player, amount, cfg.RewardSymbol, "Zoltaran Speaks winnings!"); err != nil {
		return fmt.Errorf("failed to transfer winnings: %w", err)
	}

	cfg.TreasuryBalance -= amount
	if err := s.configRepo.Set(ctx, cfg); err != nil {
		return fmt.Errorf("failed to update treasury balance: %w", err)
	}

	return nil
}

func (s *treasuryService) Withdraw(ctx context.Context, caller, to string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: withdrawal amount must be positive", entities.ErrValidation)
	}

	cfg, err := s.configRepo.GetForUpdate(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("%w: game not configured", entities.ErrPolicy)
	}
	if caller != cfg.Admin {
		return fmt.Errorf("%w: only the admin may withdraw", entities.ErrNotAuthorized)
	}
	if !cfg.CanPay(amount) {
		return fmt.Errorf("%w: withdrawal %d exceeds treasury balance %d", entities.ErrInvariant, amount, cfg.TreasuryBalance)
	}

	if err := s.ledger.Transfer(ctx, to, amount, cfg.RewardSymbol, "Treasury withdrawal"); err != nil {
		return fmt.Errorf("failed to transfer withdrawal: %w", err)
	}

	cfg.TreasuryBalance -= amount
	if err := s.configRepo.Set(ctx, cfg); err != nil {
		return fmt.Errorf("failed to update treasury balance: %w", err)
	}

	log.WithFields(log.Fields{
		"to":         to,
		"amount":     amount,
		"newBalance": cfg.TreasuryBalance,
	}).Info("treasury withdrawal")

	s.eventPublisher.Publish(events.TreasuryWithdrawalEvent{
		To:         to,
		Amount:     amount,
		NewBalance: cfg.TreasuryBalance,
	})

	return nil
}
