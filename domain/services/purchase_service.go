package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"zoltaran/domain/entities"
	"zoltaran/domain/events"
	"zoltaran/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// wishPurchaseMemoPrefix tags an incoming transfer as a wish purchase; the
// suffix is the requested wish count.
const wishPurchaseMemoPrefix = "WISHES:"

// purchaseService routes incoming value-transfer notifications by memo
// convention: treasury funding, wish purchases, or ignored.
type purchaseService struct {
	accountRepo    interfaces.AccountRepository
	tokenRepo      interfaces.PaymentTokenRepository
	configRepo     interfaces.GameConfigRepository
	treasury       interfaces.TreasuryService
	eventPublisher interfaces.EventPublisher
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	accountRepo interfaces.AccountRepository,
	tokenRepo interfaces.PaymentTokenRepository,
	configRepo interfaces.GameConfigRepository,
	treasury interfaces.TreasuryService,
	eventPublisher interfaces.EventPublisher,
) interfaces.PurchaseService {
	return &purchaseService{
		accountRepo:    accountRepo,
		tokenRepo:      tokenRepo,
		configRepo:     configRepo,
		treasury:       treasury,
		eventPublisher: eventPublisher,
	}
}

func (s *purchaseService) HandleTransfer(ctx context.Context, from, contract, symbol string, amount int64, memo string) error {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}
	if cfg == nil {
		// Not configured yet; nothing to route the transfer to.
		return nil
	}

	if contract == cfg.PaymentContract && symbol == cfg.RewardSymbol && isTreasuryMemo(memo) {
		return s.treasury.Fund(ctx, from, amount)
	}

	if !strings.HasPrefix(memo, wishPurchaseMemoPrefix) {
		// Not a wish purchase; leave the transfer alone.
		return nil
	}

	count, err := strconv.ParseInt(strings.TrimPrefix(memo, wishPurchaseMemoPrefix), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid wish count in memo %q", entities.ErrValidation, memo)
	}
	if count <= 0 || count > entities.MaxWishesPerPurchase {
		return fmt.Errorf("%w: wish count %d out of bounds (0, %d]", entities.ErrValidation, count, entities.MaxWishesPerPurchase)
	}

	token, err := s.tokenRepo.GetBySymbol(ctx, symbol)
	if err != nil {
		return fmt.Errorf("failed to get payment token: %w", err)
	}
	if token == nil {
		return fmt.Errorf("%w: token %s not accepted", entities.ErrPolicy, symbol)
	}
	if !token.Enabled {
		return fmt.Errorf("%w: token %s currently disabled", entities.ErrPolicy, symbol)
	}
	if token.Contract != contract {
		return fmt.Errorf("%w: wrong token contract %s for %s", entities.ErrPolicy, contract, symbol)
	}

	if required := token.RequiredPayment(count); amount < required {
		return fmt.Errorf("%w: insufficient payment, need %d got %d", entities.ErrExhausted, required, amount)
	}

	bonus := token.BonusWishes(count)
	total := token.TotalWishes(count)

	account, err := s.accountRepo.GetByPlayer(ctx, from)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		account = &entities.Account{Player: from, PurchasedWishes: total}
		if err := s.accountRepo.Create(ctx, account); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
	} else {
		account.PurchasedWishes += total
		if err := s.accountRepo.Update(ctx, account); err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}
	}

	log.WithFields(log.Fields{
		"player": from,
		"symbol": symbol,
		"amount": amount,
		"wishes": count,
		"bonus":  bonus,
	}).Info("wishes purchased")

	s.eventPublisher.Publish(events.WishesPurchasedEvent{
		Player:      from,
		Symbol:      symbol,
		AmountPaid:  amount,
		WishCount:   count,
		BonusWishes: bonus,
	})

	return nil
}

// isTreasuryMemo matches the funding memo conventions.
func isTreasuryMemo(memo string) bool {
	return memo == "TREASURY" || memo == "treasury" || memo == "fund"
}
