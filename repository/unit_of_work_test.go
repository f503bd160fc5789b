package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	domainevents "zoltaran/domain/events"
	"zoltaran/events"
	"zoltaran/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitPersistsChanges(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())
	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	account := testutil.CreateTestAccountWithWishes("alice", 2)
	require.NoError(t, uow.AccountRepository().Create(ctx, account))
	require.NoError(t, uow.Commit())

	// Visible outside the transaction after commit
	got, err := NewAccountRepository(testDB.DB).GetByPlayer(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.PurchasedWishes)
}

func TestUnitOfWork_RollbackDiscardsChanges(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())
	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	require.NoError(t, uow.AccountRepository().Create(ctx, testutil.CreateTestAccount("bob")))
	require.NoError(t, uow.Rollback())

	got, err := NewAccountRepository(testDB.DB).GetByPlayer(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnitOfWork_EventsFollowTransactionOutcome(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	bus := events.NewBus()
	var mu sync.Mutex
	var received []domainevents.Event
	bus.Subscribe(domainevents.EventTypeWishCommitted, func(ctx context.Context, e domainevents.Event) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e)
	})

	factory := NewUnitOfWorkFactory(testDB.DB, bus)
	ctx := context.Background()

	t.Run("rollback discards published events", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		uow.EventBus().Publish(domainevents.WishCommittedEvent{Player: "bob"})
		require.NoError(t, uow.Rollback())

		time.Sleep(100 * time.Millisecond)
		mu.Lock()
		defer mu.Unlock()
		assert.Empty(t, received)
	})

	t.Run("commit flushes published events", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		uow.EventBus().Publish(domainevents.WishCommittedEvent{Player: "alice"})
		require.NoError(t, uow.Commit())

		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(received) == 1
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestUnitOfWork_BeginTwiceFails(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())
	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	assert.Error(t, uow.Begin(ctx))
}
