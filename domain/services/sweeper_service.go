package services

import (
	"context"
	"fmt"

	"zoltaran/domain/entities"
	"zoltaran/domain/events"
	"zoltaran/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// sweeperService reclaims abandoned commitments. Anyone may drive it; the
// chronological scan stops at the first non-expired entry.
type sweeperService struct {
	accountRepo    interfaces.AccountRepository
	commitRepo     interfaces.WishCommitRepository
	configRepo     interfaces.GameConfigRepository
	ledger         interfaces.Ledger
	eventPublisher interfaces.EventPublisher
}

// NewSweeperService creates a new sweeper service
func NewSweeperService(
	accountRepo interfaces.AccountRepository,
	commitRepo interfaces.WishCommitRepository,
	configRepo interfaces.GameConfigRepository,
	ledger interfaces.Ledger,
	eventPublisher interfaces.EventPublisher,
) interfaces.SweeperService {
	return &sweeperService{
		accountRepo:    accountRepo,
		commitRepo:     commitRepo,
		configRepo:     configRepo,
		ledger:         ledger,
		eventPublisher: eventPublisher,
	}
}

func (s *sweeperService) Sweep(ctx context.Context, maxClean int) (int, error) {
	if maxClean <= 0 {
		return 0, fmt.Errorf("%w: max clean count must be positive", entities.ErrValidation)
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get config: %w", err)
	}
	if cfg == nil {
		return 0, fmt.Errorf("%w: game not configured", entities.ErrPolicy)
	}

	cutoff := s.ledger.Now().Add(-entities.CommitExpiry)
	expired, err := s.commitRepo.GetCreatedBefore(ctx, cutoff, maxClean)
	if err != nil {
		return 0, fmt.Errorf("failed to scan expired commits: %w", err)
	}

	cleaned := 0
	for _, commit := range expired {
		refunded := false
		if commit.WishSource == entities.WishSourcePurchased {
			account, err := s.accountRepo.GetByPlayer(ctx, commit.Player)
			if err != nil {
				return cleaned, fmt.Errorf("failed to get account for refund: %w", err)
			}
			if account != nil {
				account.PurchasedWishes++
				if err := s.accountRepo.Update(ctx, account); err != nil {
					return cleaned, fmt.Errorf("failed to refund wish credit: %w", err)
				}
				refunded = true
			}
		}

		if err := s.commitRepo.Delete(ctx, commit.ID); err != nil {
			return cleaned, fmt.Errorf("failed to delete expired commit %d: %w", commit.ID, err)
		}
		cleaned++

		s.eventPublisher.Publish(events.CommitExpiredEvent{
			CommitID:   commit.ID,
			Player:     commit.Player,
			WishSource: commit.WishSource,
			Refunded:   refunded,
		})
	}

	if cleaned > 0 {
		log.WithField("cleaned", cleaned).Info("swept expired commits")
	}

	return cleaned, nil
}
