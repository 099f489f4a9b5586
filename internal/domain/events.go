package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryStarted          EventType = "QueryStarted"
	EventQueryCompleted        EventType = "QueryCompleted"
	EventAppLaunched           EventType = "AppLaunched"
	EventLaunchFailed          EventType = "LaunchFailed"
	EventWindowActivated       EventType = "WindowActivated"
	EventPluginStarted         EventType = "PluginStarted"
	EventPluginStopped         EventType = "PluginStopped"
	EventPluginError           EventType = "PluginError"
	EventIndexRebuildRequested EventType = "IndexRebuildRequested"
	EventIndexRebuilt          EventType = "IndexRebuilt"
	EventError                 EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryStartedEvent is emitted when a new query cycle begins
type QueryStartedEvent struct {
	Pattern string
	Seq     uint64
}

func (e QueryStartedEvent) Type() EventType { return EventQueryStarted }

// QueryCompletedEvent is emitted when a query cycle has produced its list
type QueryCompletedEvent struct {
	Pattern string
	Seq     uint64
	Count   int
}

func (e QueryCompletedEvent) Type() EventType { return EventQueryCompleted }

// AppLaunchedEvent is emitted after an application launch succeeds
type AppLaunchedEvent struct {
	Filename string
}

func (e AppLaunchedEvent) Type() EventType { return EventAppLaunched }

// LaunchFailedEvent is emitted when an application launch fails
type LaunchFailedEvent struct {
	Title string
	Err   error
}

func (e LaunchFailedEvent) Type() EventType { return EventLaunchFailed }

// WindowActivatedEvent is emitted when a window candidate is activated
type WindowActivatedEvent struct {
	Title string
}

func (e WindowActivatedEvent) Type() EventType { return EventWindowActivated }

// PluginStartedEvent is emitted when a provider subprocess starts
type PluginStartedEvent struct {
	Name string
}

func (e PluginStartedEvent) Type() EventType { return EventPluginStarted }

// PluginStoppedEvent is emitted when a provider subprocess is torn down
type PluginStoppedEvent struct {
	Name string
}

func (e PluginStoppedEvent) Type() EventType { return EventPluginStopped }

// PluginErrorEvent is emitted when a provider misbehaves; providers are
// best-effort, so this never aborts a query cycle
type PluginErrorEvent struct {
	Name string
	Err  error
}

func (e PluginErrorEvent) Type() EventType { return EventPluginError }

// IndexRebuildRequestedEvent asks the application index to rescan its roots
type IndexRebuildRequestedEvent struct{}

func (e IndexRebuildRequestedEvent) Type() EventType { return EventIndexRebuildRequested }

// IndexRebuiltEvent is emitted when the application index has a fresh snapshot
type IndexRebuiltEvent struct {
	Count int
}

func (e IndexRebuiltEvent) Type() EventType { return EventIndexRebuilt }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
