package testhelpers

import (
	"context"
	"time"

	"zoltaran/domain/entities"
	"zoltaran/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByPlayer(ctx context.Context, player string) (*entities.Account, error) {
	args := m.Called(ctx, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entities.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entities.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetAll(ctx context.Context) ([]*entities.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Account), args.Error(1)
}

// MockWishCommitRepository is a mock implementation of WishCommitRepository
type MockWishCommitRepository struct {
	mock.Mock
}

func (m *MockWishCommitRepository) Create(ctx context.Context, commit *entities.WishCommit) error {
	args := m.Called(ctx, commit)
	return args.Error(0)
}

func (m *MockWishCommitRepository) GetByID(ctx context.Context, id int64) (*entities.WishCommit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WishCommit), args.Error(1)
}

func (m *MockWishCommitRepository) GetByPlayer(ctx context.Context, player string) (*entities.WishCommit, error) {
	args := m.Called(ctx, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WishCommit), args.Error(1)
}

func (m *MockWishCommitRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWishCommitRepository) GetCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.WishCommit, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WishCommit), args.Error(1)
}

// MockGameResultRepository is a mock implementation of GameResultRepository
type MockGameResultRepository struct {
	mock.Mock
}

func (m *MockGameResultRepository) Create(ctx context.Context, result *entities.GameResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockGameResultRepository) GetRecent(ctx context.Context, limit int) ([]*entities.GameResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GameResult), args.Error(1)
}

func (m *MockGameResultRepository) GetByPlayer(ctx context.Context, player string, limit int) ([]*entities.GameResult, error) {
	args := m.Called(ctx, player, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GameResult), args.Error(1)
}

// MockLeaderboardRepository is a mock implementation of LeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) AddWin(ctx context.Context, player string, winsDelta, tokensDelta int64) error {
	args := m.Called(ctx, player, winsDelta, tokensDelta)
	return args.Error(0)
}

func (m *MockLeaderboardRepository) GetTop(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LeaderboardEntry), args.Error(1)
}

// MockGameConfigRepository is a mock implementation of GameConfigRepository
type MockGameConfigRepository struct {
	mock.Mock
}

func (m *MockGameConfigRepository) Get(ctx context.Context) (*entities.GameConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameConfig), args.Error(1)
}

func (m *MockGameConfigRepository) GetForUpdate(ctx context.Context) (*entities.GameConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameConfig), args.Error(1)
}

func (m *MockGameConfigRepository) Set(ctx context.Context, cfg *entities.GameConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// MockPaymentTokenRepository is a mock implementation of PaymentTokenRepository
type MockPaymentTokenRepository struct {
	mock.Mock
}

func (m *MockPaymentTokenRepository) GetBySymbol(ctx context.Context, symbol string) (*entities.PaymentToken, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentToken), args.Error(1)
}

func (m *MockPaymentTokenRepository) Upsert(ctx context.Context, token *entities.PaymentToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockPaymentTokenRepository) GetAll(ctx context.Context) ([]*entities.PaymentToken, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaymentToken), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockLedger is a mock implementation of the Ledger capability
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) CurrentHeight(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) BlockEntropy(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockLedger) Transfer(ctx context.Context, to string, amount int64, symbol string, memo string) error {
	args := m.Called(ctx, to, amount, symbol, memo)
	return args.Error(0)
}

func (m *MockLedger) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// MockTreasuryService is a mock implementation of TreasuryService
type MockTreasuryService struct {
	mock.Mock
}

func (m *MockTreasuryService) Fund(ctx context.Context, from string, amount int64) error {
	args := m.Called(ctx, from, amount)
	return args.Error(0)
}

func (m *MockTreasuryService) Payout(ctx context.Context, player string, amount int64) error {
	args := m.Called(ctx, player, amount)
	return args.Error(0)
}

func (m *MockTreasuryService) Withdraw(ctx context.Context, caller, to string, amount int64) error {
	args := m.Called(ctx, caller, to, amount)
	return args.Error(0)
}
