package service_test

import (
	"sync"

	"kwanzabet/config"
	"kwanzabet/events"
	"kwanzabet/repository"
)

// capturingPublisher collects published events for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturingPublisher) Publish(event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *capturingPublisher) ofType(eventType events.EventType) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Event, 0)
	for _, e := range p.events {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	accounts     *repository.AccountStore
	bets         *repository.BetLog
	transactions *repository.TransactionLog
	publisher    *capturingPublisher
	cfg          *config.Config
}

func newFixture() *fixture {
	return &fixture{
		accounts:     repository.NewAccountStore(),
		bets:         repository.NewBetLog(),
		transactions: repository.NewTransactionLog(),
		publisher:    &capturingPublisher{},
		cfg:          config.NewTestConfig(),
	}
}
