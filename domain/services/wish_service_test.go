package services

import (
	"context"
	"testing"
	"time"

	"zoltaran/domain/entities"
	"zoltaran/domain/events"
	"zoltaran/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wishServiceMocks struct {
	accountRepo     *testhelpers.MockAccountRepository
	commitRepo      *testhelpers.MockWishCommitRepository
	resultRepo      *testhelpers.MockGameResultRepository
	leaderboardRepo *testhelpers.MockLeaderboardRepository
	configRepo      *testhelpers.MockGameConfigRepository
	treasury        *testhelpers.MockTreasuryService
	ledger          *testhelpers.MockLedger
	publisher       *testhelpers.MockEventPublisher
}

func newWishServiceMocks() *wishServiceMocks {
	return &wishServiceMocks{
		accountRepo:     new(testhelpers.MockAccountRepository),
		commitRepo:      new(testhelpers.MockWishCommitRepository),
		resultRepo:      new(testhelpers.MockGameResultRepository),
		leaderboardRepo: new(testhelpers.MockLeaderboardRepository),
		configRepo:      new(testhelpers.MockGameConfigRepository),
		treasury:        new(testhelpers.MockTreasuryService),
		ledger:          new(testhelpers.MockLedger),
		publisher:       new(testhelpers.MockEventPublisher),
	}
}

func (m *wishServiceMocks) service() *wishService {
	return NewWishService(
		m.accountRepo,
		m.commitRepo,
		m.resultRepo,
		m.leaderboardRepo,
		m.configRepo,
		m.treasury,
		m.ledger,
		m.publisher,
	).(*wishService)
}

func (m *wishServiceMocks) assertExpectations(t *testing.T) {
	m.accountRepo.AssertExpectations(t)
	m.commitRepo.AssertExpectations(t)
	m.resultRepo.AssertExpectations(t)
	m.leaderboardRepo.AssertExpectations(t)
	m.configRepo.AssertExpectations(t)
	m.treasury.AssertExpectations(t)
	m.ledger.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func validCommitHash() []byte {
	return entities.CommitDigest("secret", "bafy-cid")
}

func TestWishService_Commit_CallerMustBePlayer(t *testing.T) {
	m := newWishServiceMocks()
	svc := m.service()

	_, err := svc.Commit(context.Background(), "mallory", "alice", validCommitHash(), entities.WishSourceFree)
	assert.ErrorIs(t, err, entities.ErrNotAuthorized)
	m.assertExpectations(t)
}

func TestWishService_Commit_RejectsBadHashLength(t *testing.T) {
	m := newWishServiceMocks()
	svc := m.service()

	_, err := svc.Commit(context.Background(), "alice", "alice", []byte{1, 2, 3}, entities.WishSourceFree)
	assert.ErrorIs(t, err, entities.ErrValidation)
	m.assertExpectations(t)
}

func TestWishService_Commit_RequiresConfiguration(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	m.configRepo.On("Get", ctx).Return(nil, nil)

	_, err := m.service().Commit(ctx, "alice", "alice", validCommitHash(), entities.WishSourceFree)
	assert.ErrorIs(t, err, entities.ErrPolicy)
	m.assertExpectations(t)
}

func TestWishService_Commit_RejectedWhilePaused(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	cfg := defaultWeights()
	cfg.Paused = true
	m.configRepo.On("Get", ctx).Return(cfg, nil)

	_, err := m.service().Commit(ctx, "alice", "alice", validCommitHash(), entities.WishSourceFree)
	assert.ErrorIs(t, err, entities.ErrPolicy)
	m.assertExpectations(t)
}

func TestWishService_Commit_FreeWishCreatesAccount(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	today := entities.DayIndex(now)

	m.configRepo.On("Get", ctx).Return(defaultWeights(), nil)
	m.accountRepo.On("GetByPlayer", ctx, "alice").Return(nil, nil)
	m.ledger.On("Now").Return(now)
	m.accountRepo.On("Create", ctx, mock.MatchedBy(func(a *entities.Account) bool {
		return a.Player == "alice" && a.LastFreeDay == today
	})).Return(nil)
	m.commitRepo.On("GetByPlayer", ctx, "alice").Return(nil, nil)
	m.ledger.On("CurrentHeight", ctx).Return(int64(100), nil)
	m.commitRepo.On("Create", ctx, mock.MatchedBy(func(c *entities.WishCommit) bool {
		return c.Player == "alice" && c.BlockHeight == 100 && c.WishSource == entities.WishSourceFree
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.WishCommit).ID = 7
	})
	m.publisher.On("Publish", mock.MatchedBy(func(e events.Event) bool {
		ev, ok := e.(events.WishCommittedEvent)
		return ok && ev.CommitID == 7 && ev.Player == "alice" && ev.BlockHeight == 100
	})).Return()

	commit, err := m.service().Commit(ctx, "alice", "alice", validCommitHash(), entities.WishSourceFree)
	require.NoError(t, err)
	assert.Equal(t, int64(7), commit.ID)
	m.assertExpectations(t)
}

func TestWishService_Commit_FreeWishOncePerDay(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	account := &entities.Account{Player: "alice", LastFreeDay: entities.DayIndex(now)}
	m.configRepo.On("Get", ctx).Return(defaultWeights(), nil)
	m.accountRepo.On("GetByPlayer", ctx, "alice").Return(account, nil)
	m.ledger.On("Now").Return(now)

	_, err := m.service().Commit(ctx, "alice", "alice", validCommitHash(), entities.WishSourceFree)
	assert.ErrorIs(t, err, entities.ErrExhausted)
	m.assertExpectations(t)
}

func TestWishService_Commit_PurchasedConsumesCredit(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	account := &entities.Account{Player: "alice", PurchasedWishes: 2}
	m.configRepo.On("Get", ctx).Return(defaultWeights(), nil)
	m.accountRepo.On("GetByPlayer", ctx, "alice").Return(account, nil)
	m.accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entities.Account) bool {
		return a.PurchasedWishes == 1
	})).Return(nil)
	m.commitRepo.On("GetByPlayer", ctx, "alice").Return(nil, nil)
	m.ledger.On("CurrentHeight", ctx).Return(int64(50), nil)
	m.commitRepo.On("Create", ctx, mock.Anything).Return(nil)
	m.publisher.On("Publish", mock.Anything).Return()

	_, err := m.service().Commit(ctx, "alice", "alice", validCommitHash(), entities.WishSourcePurchased)
	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestWishService_Commit_PurchasedWithoutCredits(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	m.configRepo.On("Get", ctx).Return(defaultWeights(), nil)
	m.accountRepo.On("GetByPlayer", ctx, "alice").Return(&entities.Account{Player: "alice"}, nil)

	_, err := m.service().Commit(ctx, "alice", "alice", validCommitHash(), entities.WishSourcePurchased)
	assert.ErrorIs(t, err, entities.ErrExhausted)
	m.assertExpectations(t)
}

func TestWishService_Commit_SingleLiveCommitPerPlayer(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	account := &entities.Account{Player: "alice", PurchasedWishes: 1}
	m.configRepo.On("Get", ctx).Return(defaultWeights(), nil)
	m.accountRepo.On("GetByPlayer", ctx, "alice").Return(account, nil)
	m.accountRepo.On("Update", ctx, mock.Anything).Return(nil)
	m.commitRepo.On("GetByPlayer", ctx, "alice").Return(&entities.WishCommit{ID: 3, Player: "alice"}, nil)

	_, err := m.service().Commit(ctx, "alice", "alice", validCommitHash(), entities.WishSourcePurchased)
	assert.ErrorIs(t, err, entities.ErrStateConflict)
	m.assertExpectations(t)
}

func TestWishService_Reveal_CommitNotFound(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	m.configRepo.On("Get", ctx).Return(defaultWeights(), nil)
	m.commitRepo.On("GetByID", ctx, int64(9)).Return(nil, nil)

	_, err := m.service().Reveal(ctx, "alice", 9, "secret", "bafy-cid")
	assert.ErrorIs(t, err, entities.ErrStateConflict)
	m.assertExpectations(t)
}

func TestWishService_Reveal_OnlyOwnerMayReveal(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	commit := &entities.WishCommit{ID: 9, Player: "alice", CommitHash: validCommitHash(), BlockHeight: 10}
	m.configRepo.On("Get", ctx).Return(defaultWeights(), nil)
	m.commitRepo.On("GetByID", ctx, int64(9)).Return(commit, nil)

	_, err := m.service().Reveal(ctx, "mallory", 9, "secret", "bafy-cid")
	assert.ErrorIs(t, err, entities.ErrNotAuthorized)
	m.assertExpectations(t)
}

func TestWishService_Reveal_RequiresLaterBlock(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	commit := &entities.WishCommit{ID: 9, Player: "alice", CommitHash: validCommitHash(), BlockHeight: 10}
	m.configRepo.On("Get", ctx).Return(defaultWeights(), nil)
	m.commitRepo.On("GetByID", ctx, int64(9)).Return(commit, nil)
	m.ledger.On("CurrentHeight", ctx).Return(int64(10), nil)

	_, err := m.service().Reveal(ctx, "alice", 9, "secret", "bafy-cid")
	assert.ErrorIs(t, err, entities.ErrValidation)
	m.assertExpectations(t)
}

func TestWishService_Reveal_RejectsHashMismatch(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	commit := &entities.WishCommit{ID: 9, Player: "alice", CommitHash: validCommitHash(), BlockHeight: 10}
	m.configRepo.On("Get", ctx).Return(defaultWeights(), nil)
	m.commitRepo.On("GetByID", ctx, int64(9)).Return(commit, nil)
	m.ledger.On("CurrentHeight", ctx).Return(int64(11), nil)

	_, err := m.service().Reveal(ctx, "alice", 9, "wrong-secret", "bafy-cid")
	assert.ErrorIs(t, err, entities.ErrValidation)
	m.assertExpectations(t)
}

// revealFixture wires mocks for a successful reveal with the given weights.
// The commit stays intact; expectations depending on the outcome are added by
// the caller.
func revealFixture(m *wishServiceMocks, ctx context.Context, cfg *entities.GameConfig, account *entities.Account) *entities.WishCommit {
	commit := &entities.WishCommit{ID: 9, Player: "alice", CommitHash: validCommitHash(), BlockHeight: 10}

	m.configRepo.On("Get", ctx).Return(cfg, nil)
	m.commitRepo.On("GetByID", ctx, int64(9)).Return(commit, nil)
	m.ledger.On("CurrentHeight", ctx).Return(int64(11), nil)
	m.ledger.On("BlockEntropy", ctx).Return([]byte("entropy"), nil)
	if account == nil {
		m.accountRepo.On("GetByPlayer", ctx, "alice").Return(nil, nil)
		m.accountRepo.On("Create", ctx, mock.Anything).Return(nil)
	} else {
		m.accountRepo.On("GetByPlayer", ctx, "alice").Return(account, nil)
		m.accountRepo.On("Update", ctx, account).Return(nil)
	}
	m.resultRepo.On("Create", ctx, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.GameResult).ID = 77
	})
	m.commitRepo.On("Delete", ctx, int64(9)).Return(nil)
	m.publisher.On("Publish", mock.Anything).Return()

	return commit
}

func TestWishService_Reveal_GrantedWish(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	// All probability mass on the granted bucket
	cfg := &entities.GameConfig{ProbGranted: entities.ProbabilityScale}
	account := &entities.Account{Player: "alice", TotalWishes: 4}

	revealFixture(m, ctx, cfg, account)
	m.leaderboardRepo.On("AddWin", ctx, "alice", int64(1), int64(0)).Return(nil)

	result, err := m.service().Reveal(ctx, "alice", 9, "secret", "bafy-cid")
	require.NoError(t, err)

	assert.Equal(t, entities.OutcomeWishGranted, result.Outcome)
	assert.Zero(t, result.TokensWon)
	assert.Equal(t, int64(77), result.Result.ID)
	assert.Equal(t, int64(5), account.TotalWishes)
	assert.Equal(t, int64(1), account.TotalWins)
	m.assertExpectations(t)
}

func TestWishService_Reveal_TokenPayout(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	cfg := &entities.GameConfig{ProbTokens250: entities.ProbabilityScale}
	account := &entities.Account{Player: "alice"}

	revealFixture(m, ctx, cfg, account)
	m.leaderboardRepo.On("AddWin", ctx, "alice", int64(0), entities.RewardTokens250).Return(nil)
	m.treasury.On("Payout", ctx, "alice", entities.RewardTokens250).Return(nil)

	result, err := m.service().Reveal(ctx, "alice", 9, "secret", "bafy-cid")
	require.NoError(t, err)

	assert.Equal(t, entities.OutcomeTokens250, result.Outcome)
	assert.Equal(t, entities.RewardTokens250, result.TokensWon)
	assert.Equal(t, entities.RewardTokens250, account.TokensWon)
	m.assertExpectations(t)
}

func TestWishService_Reveal_TryAgain(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	// No probability mass allocated: every draw lands on try again
	cfg := &entities.GameConfig{}
	account := &entities.Account{Player: "alice"}

	revealFixture(m, ctx, cfg, account)

	result, err := m.service().Reveal(ctx, "alice", 9, "secret", "bafy-cid")
	require.NoError(t, err)

	assert.Equal(t, entities.OutcomeTryAgain, result.Outcome)
	assert.Zero(t, result.TokensWon)
	assert.Equal(t, int64(1), account.TotalWishes)
	assert.Zero(t, account.TotalWins)
	m.assertExpectations(t)
}

func TestWishService_Reveal_FreeSpinGrantsCredit(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	cfg := &entities.GameConfig{ProbFreeSpin: entities.ProbabilityScale}
	account := &entities.Account{Player: "alice"}

	revealFixture(m, ctx, cfg, account)

	result, err := m.service().Reveal(ctx, "alice", 9, "secret", "bafy-cid")
	require.NoError(t, err)

	assert.Equal(t, entities.OutcomeFreeSpin, result.Outcome)
	assert.Equal(t, int64(1), account.PurchasedWishes)
	m.assertExpectations(t)
}

func TestWishService_Reveal_PayoutFailureAborts(t *testing.T) {
	m := newWishServiceMocks()
	ctx := context.Background()

	cfg := &entities.GameConfig{ProbTokens1000: entities.ProbabilityScale}
	account := &entities.Account{Player: "alice"}

	commit := &entities.WishCommit{ID: 9, Player: "alice", CommitHash: validCommitHash(), BlockHeight: 10}
	m.configRepo.On("Get", ctx).Return(cfg, nil)
	m.commitRepo.On("GetByID", ctx, int64(9)).Return(commit, nil)
	m.ledger.On("CurrentHeight", ctx).Return(int64(11), nil)
	m.ledger.On("BlockEntropy", ctx).Return([]byte("entropy"), nil)
	m.accountRepo.On("GetByPlayer", ctx, "alice").Return(account, nil)
	m.accountRepo.On("Update", ctx, account).Return(nil)
	m.leaderboardRepo.On("AddWin", ctx, "alice", int64(0), entities.RewardTokens1000).Return(nil)
	m.resultRepo.On("Create", ctx, mock.Anything).Return(nil)
	m.treasury.On("Payout", ctx, "alice", entities.RewardTokens1000).Return(entities.ErrInvariant)

	_, err := m.service().Reveal(ctx, "alice", 9, "secret", "bafy-cid")
	assert.ErrorIs(t, err, entities.ErrInvariant)
	m.assertExpectations(t)
}
