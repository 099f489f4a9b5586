package plugins

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"quicklaunch/internal/config"
	"quicklaunch/internal/eventbus"
)

// Service owns the configured provider sessions. Sessions start lazily on
// first need and persist across queries until StopAll; there is no
// per-query teardown.
type Service struct {
	bus      eventbus.EventBus
	configs  []config.PluginConfig
	sessions map[string]*Session
}

// NewService creates a plugin service over the configured providers
func NewService(bus eventbus.EventBus, configs []config.PluginConfig) *Service {
	return &Service{
		bus:      bus,
		configs:  configs,
		sessions: make(map[string]*Session),
	}
}

// Config returns the configuration of the named provider
func (ps *Service) Config(name string) (config.PluginConfig, bool) {
	for _, cfg := range ps.configs {
		if cfg.Name == name {
			return cfg, true
		}
	}
	return config.PluginConfig{}, false
}

// Query fans the pattern out to every provider whose prefix gate admits
// it, then polls each once. fn is invoked for each response that is ready
// on this tick; providers that have not answered yet simply contribute
// nothing. A provider that fails to start or to accept the request is
// logged and skipped.
func (ps *Service) Query(seq uint64, pattern string, fn func(name string, response Response)) {
	for _, cfg := range ps.configs {
		if cfg.Pattern != "" && !strings.HasPrefix(pattern, cfg.Pattern) {
			continue
		}

		session, err := ps.session(cfg)
		if err != nil {
			ps.reportError(cfg.Name, err)
			continue
		}

		if err := session.Query(seq, pattern); err != nil {
			ps.reportError(cfg.Name, err)
			continue
		}

		if response, respSeq, ok := session.Listen(); ok && respSeq == seq {
			fn(cfg.Name, response)
		}
	}
}

// Poll drains any response that arrived for the given query sequence
// since dispatch. Responses stamped with an older sequence are discarded.
func (ps *Service) Poll(seq uint64, fn func(name string, response Response)) {
	for name, session := range ps.sessions {
		if response, respSeq, ok := session.Listen(); ok && respSeq == seq {
			fn(name, response)
		}
	}
}

// Submit forwards a selection to the provider that produced it
func (ps *Service) Submit(name string, id uint32) error {
	session, ok := ps.sessions[name]
	if !ok {
		return fmt.Errorf("no session for plugin %s", name)
	}
	return session.Submit(id)
}

// Complete asks the named provider for tab completion
func (ps *Service) Complete(name string) error {
	session, ok := ps.sessions[name]
	if !ok {
		return fmt.Errorf("no session for plugin %s", name)
	}
	return session.Complete()
}

// Listen polls the named provider once without blocking
func (ps *Service) Listen(name string) (Response, bool) {
	session, ok := ps.sessions[name]
	if !ok {
		return Response{}, false
	}
	response, _, ok := session.Listen()
	return response, ok
}

// StopAll tears down every running session. Called when the launcher is
// dismissed or cancelled; providers do not outlive the launcher.
func (ps *Service) StopAll() {
	var g errgroup.Group
	for name, session := range ps.sessions {
		name, session := name, session
		g.Go(func() error {
			if err := session.Stop(); err != nil {
				log.Printf("failed to stop plugin %s: %v", name, err)
			}
			ps.bus.Publish(eventbus.PluginStoppedEvent{Name: name})
			return nil
		})
	}
	_ = g.Wait()

	ps.sessions = make(map[string]*Session)
}

// session returns the running session for cfg, starting it on first use
func (ps *Service) session(cfg config.PluginConfig) (*Session, error) {
	if session, ok := ps.sessions[cfg.Name]; ok {
		return session, nil
	}

	session, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}

	ps.sessions[cfg.Name] = session
	ps.bus.Publish(eventbus.PluginStartedEvent{Name: cfg.Name})
	return session, nil
}

func (ps *Service) reportError(name string, err error) {
	log.Printf("plugin %s: %v", name, err)
	ps.bus.Publish(eventbus.PluginErrorEvent{Name: name, Err: err})
}
