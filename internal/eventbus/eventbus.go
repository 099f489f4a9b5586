package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"quicklaunch/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventQueryStarted          = domain.EventQueryStarted
	EventQueryCompleted        = domain.EventQueryCompleted
	EventAppLaunched           = domain.EventAppLaunched
	EventLaunchFailed          = domain.EventLaunchFailed
	EventWindowActivated       = domain.EventWindowActivated
	EventPluginStarted         = domain.EventPluginStarted
	EventPluginStopped         = domain.EventPluginStopped
	EventPluginError           = domain.EventPluginError
	EventIndexRebuildRequested = domain.EventIndexRebuildRequested
	EventIndexRebuilt          = domain.EventIndexRebuilt
	EventError                 = domain.EventError
)

// Re-export domain event types
type QueryStartedEvent = domain.QueryStartedEvent
type QueryCompletedEvent = domain.QueryCompletedEvent
type AppLaunchedEvent = domain.AppLaunchedEvent
type LaunchFailedEvent = domain.LaunchFailedEvent
type WindowActivatedEvent = domain.WindowActivatedEvent
type PluginStartedEvent = domain.PluginStartedEvent
type PluginStoppedEvent = domain.PluginStoppedEvent
type PluginErrorEvent = domain.PluginErrorEvent
type IndexRebuildRequestedEvent = domain.IndexRebuildRequestedEvent
type IndexRebuiltEvent = domain.IndexRebuiltEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]EventHandler
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]EventHandler),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Query events fire on every keystroke; keep them out of the log
	switch event.Type() {
	case EventQueryStarted, EventQueryCompleted:
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		// Channel full, log and drop
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Add handler to the list and remember its slot; clearing the slot
	// keeps the other handlers' indices stable
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	index := len(b.handlers[eventType]) - 1

	// Return unsubscribe function
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if handlers := b.handlers[eventType]; index < len(handlers) {
			handlers[index] = nil
		}
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Get handlers for this event type
			b.mu.RLock()
			// Make a copy to avoid holding lock during handler execution;
			// unsubscribed slots are nil
			var handlersCopy []EventHandler
			for _, h := range b.handlers[event.Type()] {
				if h != nil {
					handlersCopy = append(handlersCopy, h)
				}
			}
			b.mu.RUnlock()

			// Call each handler
			for _, handler := range handlersCopy {
				// Call handler in a goroutine to avoid blocking
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
					// Discard event
				default:
					return
				}
			}
		}
	}
}
