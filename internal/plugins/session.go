package plugins

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os/exec"
	"sync/atomic"
	"time"

	"quicklaunch/internal/config"
)

// State is the session's request/response position
type State int

const (
	// Idle means no request is outstanding
	Idle State = iota
	// AwaitingResponse means a request went out and the provider has not
	// answered yet
	AwaitingResponse
)

// responseBuffer bounds how many unread provider responses a session keeps;
// newer responses evict nothing, they are dropped like the event bus does
const responseBuffer = 16

// killGrace is how long a stopped provider gets to exit after the quit
// request before it is killed
const killGrace = 2 * time.Second

// stamped is a response tagged with the query sequence that was current
// when it arrived, so the engine can discard answers to superseded queries
type stamped struct {
	response Response
	seq      uint64
}

// Session manages one provider subprocess for the lifetime of an open
// launcher session. All request methods are non-blocking; responses are
// collected by a reader goroutine and handed out through Listen.
type Session struct {
	name      string
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	encoder   *json.Encoder
	responses chan stamped
	seq       atomic.Uint64
	state     State
}

// NewSession spawns the provider process described by cfg and starts
// listening on its stdout. The provider's stderr is forwarded to the log.
func NewSession(cfg config.PluginConfig) (*Session, error) {
	cmd := exec.Command(cfg.Command, cfg.Args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdin for %s: %w", cfg.Name, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout for %s: %w", cfg.Name, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stderr for %s: %w", cfg.Name, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start plugin %s: %w", cfg.Name, err)
	}

	s := newSessionPipes(cfg.Name, stdin, stdout)
	s.cmd = cmd

	go s.forwardStderr(stderr)

	return s, nil
}

// newSessionPipes wires a session over raw pipes. Tests use this directly
// with an in-process provider.
func newSessionPipes(name string, stdin io.WriteCloser, stdout io.Reader) *Session {
	s := &Session{
		name:      name,
		stdin:     stdin,
		encoder:   json.NewEncoder(stdin),
		responses: make(chan stamped, responseBuffer),
	}

	go s.readResponses(stdout)

	return s
}

// Name returns the provider name
func (s *Session) Name() string {
	return s.name
}

// State returns the session's request/response position
func (s *Session) State() State {
	return s.state
}

// Query sends a search request stamped with the engine's query sequence.
// Any responses still buffered from earlier queries are discarded first.
func (s *Session) Query(seq uint64, pattern string) error {
	s.drain()
	s.seq.Store(seq)
	return s.send(Request{Event: RequestQuery, Value: pattern})
}

// Submit tells the provider the user chose the selection with the given id
func (s *Session) Submit(id uint32) error {
	return s.send(Request{Event: RequestSubmit, ID: id})
}

// Complete asks the provider to tab-complete against its selections
func (s *Session) Complete() error {
	return s.send(Request{Event: RequestComplete})
}

// Listen is a zero-wait poll: it returns the most recent ready response
// and the query sequence it belongs to, or false when the provider has not
// produced anything yet. It never blocks the event loop.
func (s *Session) Listen() (Response, uint64, bool) {
	var latest stamped
	ok := false
	for {
		select {
		case st := <-s.responses:
			latest = st
			ok = true
		default:
			if ok {
				s.state = Idle
			}
			return latest.response, latest.seq, ok
		}
	}
}

// Stop asks the provider to quit, then tears the process down. Safe to
// call on an already-dead provider.
func (s *Session) Stop() error {
	// Best effort: a well-behaved provider exits on quit
	_ = s.send(Request{Event: RequestQuit})
	_ = s.stdin.Close()

	if s.cmd == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()

	select {
	case <-done:
	case <-time.After(killGrace):
		_ = s.cmd.Process.Kill()
		<-done
	}

	return nil
}

func (s *Session) send(req Request) error {
	if err := s.encoder.Encode(req); err != nil {
		return fmt.Errorf("failed to send %s to %s: %w", req.Event, s.name, err)
	}
	s.state = AwaitingResponse
	return nil
}

// drain discards buffered responses from superseded queries
func (s *Session) drain() {
	for {
		select {
		case <-s.responses:
		default:
			return
		}
	}
}

// readResponses decodes provider output line by line until stdout closes.
// Responses are stamped with the current query sequence; when the buffer
// is full the response is dropped rather than blocking the reader.
func (s *Session) readResponses(stdout io.Reader) {
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var response Response
		if err := json.Unmarshal(line, &response); err != nil {
			log.Printf("plugin %s sent malformed response: %v", s.name, err)
			continue
		}

		select {
		case s.responses <- stamped{response: response, seq: s.seq.Load()}:
		default:
			log.Printf("plugin %s response buffer full, dropping %s", s.name, response.Event)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("plugin %s stdout closed: %v", s.name, err)
	}
}

func (s *Session) forwardStderr(stderr io.Reader) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		log.Printf("plugin %s: %s", s.name, scanner.Text())
	}
}
