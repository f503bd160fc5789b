package services

import (
	"context"
	"crypto/sha256"
	"fmt"

	"zoltaran/domain/entities"
	"zoltaran/domain/events"
	"zoltaran/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// wishService implements the commit-reveal state machine
type wishService struct {
	accountRepo     interfaces.AccountRepository
	commitRepo      interfaces.WishCommitRepository
	resultRepo      interfaces.GameResultRepository
	leaderboardRepo interfaces.LeaderboardRepository
	configRepo      interfaces.GameConfigRepository
	treasury        interfaces.TreasuryService
	ledger          interfaces.Ledger
	eventPublisher  interfaces.EventPublisher
}

// NewWishService creates a new wish service
func NewWishService(
	accountRepo interfaces.AccountRepository,
	commitRepo interfaces.WishCommitRepository,
	resultRepo interfaces.GameResultRepository,
	leaderboardRepo interfaces.LeaderboardRepository,
	configRepo interfaces.GameConfigRepository,
	treasury interfaces.TreasuryService,
	ledger interfaces.Ledger,
	eventPublisher interfaces.EventPublisher,
) interfaces.WishService {
	return &wishService{
		accountRepo:     accountRepo,
		commitRepo:      commitRepo,
		resultRepo:      resultRepo,
		leaderboardRepo: leaderboardRepo,
		configRepo:      configRepo,
		treasury:        treasury,
		ledger:          ledger,
		eventPublisher:  eventPublisher,
	}
}

func (s *wishService) Commit(ctx context.Context, caller, player string, commitHash []byte, source entities.WishSource) (*entities.WishCommit, error) {
	if caller != player {
		return nil, fmt.Errorf("%w: only %s may commit for %s", entities.ErrNotAuthorized, player, player)
	}
	if len(commitHash) != sha256.Size {
		return nil, fmt.Errorf("%w: commit hash must be %d bytes", entities.ErrValidation, sha256.Size)
	}

	if _, err := s.loadActiveConfig(ctx); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByPlayer(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	switch source {
	case entities.WishSourceFree:
		today := entities.DayIndex(s.ledger.Now())
		if account == nil {
			account = &entities.Account{Player: player, LastFreeDay: today}
			if err := s.accountRepo.Create(ctx, account); err != nil {
				return nil, fmt.Errorf("failed to create account: %w", err)
			}
		} else {
			if !account.CanUseFreeWish(today) {
				return nil, fmt.Errorf("%w: free wish already used today", entities.ErrExhausted)
			}
			account.LastFreeDay = today
			if err := s.accountRepo.Update(ctx, account); err != nil {
				return nil, fmt.Errorf("failed to update account: %w", err)
			}
		}
	case entities.WishSourcePurchased:
		if account == nil || !account.HasPurchasedWish() {
			return nil, fmt.Errorf("%w: no purchased wishes available", entities.ErrExhausted)
		}
		account.PurchasedWishes--
		if err := s.accountRepo.Update(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to update account: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown wish source %q", entities.ErrValidation, source)
	}

	// One live commitment per player
	existing, err := s.commitRepo.GetByPlayer(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending commit: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: pending commit %d exists - reveal it or wait for expiry", entities.ErrStateConflict, existing.ID)
	}

	height, err := s.ledger.CurrentHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block height: %w", err)
	}

	commit := &entities.WishCommit{
		Player:      player,
		CommitHash:  commitHash,
		BlockHeight: height,
		WishSource:  source,
	}
	if err := s.commitRepo.Create(ctx, commit); err != nil {
		return nil, fmt.Errorf("failed to create commit: %w", err)
	}

	s.eventPublisher.Publish(events.WishCommittedEvent{
		CommitID:    commit.ID,
		Player:      player,
		WishSource:  source,
		BlockHeight: height,
	})

	return commit, nil
}

func (s *wishService) Reveal(ctx context.Context, caller string, commitID int64, secret, wishCID string) (*interfaces.RevealResult, error) {
	cfg, err := s.loadActiveConfig(ctx)
	if err != nil {
		return nil, err
	}

	commit, err := s.commitRepo.GetByID(ctx, commitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}
	if commit == nil {
		return nil, fmt.Errorf("%w: commit %d not found", entities.ErrStateConflict, commitID)
	}
	if commit.Player != caller {
		return nil, fmt.Errorf("%w: commit %d does not belong to %s", entities.ErrNotAuthorized, commitID, caller)
	}

	// Revealing in the commit's own block would make the entropy below
	// predictable at commit time.
	height, err := s.ledger.CurrentHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block height: %w", err)
	}
	if height <= commit.BlockHeight {
		return nil, fmt.Errorf("%w: must wait at least one block after commit", entities.ErrValidation)
	}

	if !commit.MatchesReveal(secret, wishCID) {
		return nil, fmt.Errorf("%w: hash mismatch - invalid secret or wish CID", entities.ErrValidation)
	}

	entropy, err := s.ledger.BlockEntropy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block entropy: %w", err)
	}

	code, tokensWon, draw := ResolveOutcome(cfg, secret, entropy, commit.Player)

	account, err := s.accountRepo.GetByPlayer(ctx, commit.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		account = &entities.Account{Player: commit.Player}
		account.ApplyOutcome(code, tokensWon)
		if err := s.accountRepo.Create(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
	} else {
		account.ApplyOutcome(code, tokensWon)
		if err := s.accountRepo.Update(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to update account: %w", err)
		}
	}

	if code.IsWin() {
		winsDelta := int64(0)
		if code == entities.OutcomeWishGranted {
			winsDelta = 1
		}
		if err := s.leaderboardRepo.AddWin(ctx, commit.Player, winsDelta, tokensWon); err != nil {
			return nil, fmt.Errorf("failed to update leaderboard: %w", err)
		}
	}

	result := &entities.GameResult{
		Player:      commit.Player,
		OutcomeCode: code,
		TokensWon:   tokensWon,
		WishCID:     wishCID,
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to record game result: %w", err)
	}

	if tokensWon > 0 {
		if err := s.treasury.Payout(ctx, commit.Player, tokensWon); err != nil {
			return nil, fmt.Errorf("failed to pay out reward: %w", err)
		}
	}

	if err := s.commitRepo.Delete(ctx, commit.ID); err != nil {
		return nil, fmt.Errorf("failed to remove commit: %w", err)
	}

	log.WithFields(log.Fields{
		"player":    commit.Player,
		"commitID":  commit.ID,
		"outcome":   code.String(),
		"tokensWon": tokensWon,
		"draw":      draw,
	}).Info("wish revealed")

	s.eventPublisher.Publish(events.WishRevealedEvent{
		CommitID:    commit.ID,
		ResultID:    result.ID,
		Player:      commit.Player,
		OutcomeCode: code,
		TokensWon:   tokensWon,
		Draw:        draw,
	})

	return &interfaces.RevealResult{
		Commit:    commit,
		Result:    result,
		Outcome:   code,
		TokensWon: tokensWon,
		Draw:      draw,
		Account:   account,
	}, nil
}

// loadActiveConfig fetches the configuration and enforces the global gates
// shared by Commit and Reveal.
func (s *wishService) loadActiveConfig(ctx context.Context) (*entities.GameConfig, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: game not configured", entities.ErrPolicy)
	}
	if cfg.Paused {
		return nil, fmt.Errorf("%w: game is paused", entities.ErrPolicy)
	}
	return cfg, nil
}
