package ui

import (
	"time"

	"quicklaunch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg drives the late-response poll for plugin providers
type tickMsg time.Time

// helpPagerMsg contains the result of showing the help pager
type helpPagerMsg struct {
	err error
}
