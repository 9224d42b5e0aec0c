package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"kwanzabet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDispatchesToSubscribers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	received := make([]Event, 0)
	handler := func(ctx context.Context, event Event) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		wg.Done()
	}

	bus.Subscribe(EventTypeBetPlaced, handler)
	bus.Subscribe(EventTypeBetPlaced, handler)

	bus.Publish(BetPlacedEvent{
		AccountID: "acct-1",
		BetID:     "bet-1",
		Game:      models.GameSlots,
		Stake:     100,
		Won:       true,
		Prize:     1000,
	})

	waitOrFail(t, &wg)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	placed, ok := received[0].(BetPlacedEvent)
	require.True(t, ok)
	assert.Equal(t, "bet-1", placed.BetID)
}

func TestBusIgnoresUnrelatedEventTypes(t *testing.T) {
	bus := NewBus()

	called := make(chan struct{}, 1)
	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		called <- struct{}{}
	})

	bus.Publish(AccountCreatedEvent{AccountID: "acct-1"})

	select {
	case <-called:
		t.Fatal("handler for a different event type was invoked")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusSurvivesPanickingHandler(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)
	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		defer wg.Done()
		panic("handler blew up")
	})

	healthy := make(chan struct{}, 1)
	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		healthy <- struct{}{}
	})

	bus.Publish(BalanceChangeEvent{AccountID: "acct-1", ChangeAmount: 100})

	waitOrFail(t, &wg)
	select {
	case <-healthy:
	case <-time.After(time.Second):
		t.Fatal("healthy handler was not invoked")
	}
}

func TestBusPublishWithNoSubscribers(t *testing.T) {
	bus := NewBus()
	// Must not block or panic.
	bus.Publish(TransactionRecordedEvent{AccountID: "acct-1", Kind: models.TransactionDeposit, Amount: 1000})
}

func waitOrFail(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for handlers")
	}
}
