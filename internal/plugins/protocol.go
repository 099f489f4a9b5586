// Package plugins speaks the launcher's provider protocol: newline-
// delimited JSON over a provider subprocess's stdin and stdout. Requests
// flow out, responses flow in, and anything the launcher does not
// understand is ignored so providers can evolve independently.
package plugins

// Request events
const (
	RequestQuery    = "query"
	RequestSubmit   = "submit"
	RequestComplete = "complete"
	RequestQuit     = "quit"
)

// Response events interpreted by the launcher; providers may send others
const (
	ResponseQueried = "queried"
	ResponseFill    = "fill"
)

// Request is one message sent to a provider
type Request struct {
	Event string `json:"event"`
	// Value carries the query pattern for query requests
	Value string `json:"value,omitempty"`
	// ID carries the selection id for submit requests
	ID uint32 `json:"id,omitempty"`
}

// Response is one message received from a provider
type Response struct {
	Event      string      `json:"event"`
	Selections []Selection `json:"selections,omitempty"`
	// Text is the replacement input text for fill responses
	Text string `json:"text,omitempty"`
}

// Selection is one candidate offered by a provider. ID is opaque to the
// launcher and meaningful only to the provider that sent it.
type Selection struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}
