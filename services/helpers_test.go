package services_test

import (
	"context"
	"sync"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []services.ChangeEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event services.ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []services.ChangeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]services.ChangeEvent(nil), p.events...)
}

func fixedID(id string) services.IDGenerator {
	return func() string { return id }
}
