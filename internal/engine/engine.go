// Package engine implements the launcher's query pipeline: fan a pattern
// out to windows, applications, and plugin providers, merge and rank the
// results under a recency-then-relevance policy, and commit selections.
package engine

import (
	"log"

	"quicklaunch/internal/apps"
	"quicklaunch/internal/config"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/eventbus"
	"quicklaunch/internal/fuzzy"
	"quicklaunch/internal/plugins"
	"quicklaunch/internal/recency"
	"quicklaunch/internal/windows"
)

// settingsExec is the executable whose launch re-focuses an existing
// settings window instead of letting a duplicate open
const settingsExec = "gnome-control-center"

// settingsTitle is the window title the settings application uses
const settingsTitle = "Settings"

// Providers is the engine's view of the plugin service
type Providers interface {
	Query(seq uint64, pattern string, fn func(name string, response plugins.Response))
	Poll(seq uint64, fn func(name string, response plugins.Response))
	Submit(name string, id uint32) error
	Complete(name string) error
	Listen(name string) (plugins.Response, bool)
	Config(name string) (config.PluginConfig, bool)
	StopAll()
}

// ApplyResult is the outcome of committing a selection
type ApplyResult struct {
	// KeepOpen reports whether the launcher should stay open
	KeepOpen bool
	// FillText replaces the input box when HasFill is set
	FillText string
	HasFill  bool
}

// Engine orchestrates one open launcher session
type Engine struct {
	bus      eventbus.EventBus
	settings *config.Settings
	matcher  *fuzzy.Matcher
	recents  *recency.Store
	manager  windows.Manager
	windows  *windows.Source
	apps     *apps.Index
	plugins  Providers

	// candidates is rebuilt, never appended, at the start of each cycle
	candidates []*domain.Candidate
	// lastPlugin is the first provider that contributed this cycle;
	// completion and fill behavior target only this provider
	lastPlugin string
	// seq stamps query cycles so late plugin responses to superseded
	// queries can be discarded
	seq uint64
}

// New creates a search engine over the given collaborators
func New(bus eventbus.EventBus, settings *config.Settings, recents *recency.Store,
	manager windows.Manager, index *apps.Index, providers Providers) *Engine {
	return &Engine{
		bus:      bus,
		settings: settings,
		matcher:  fuzzy.NewMatcher(),
		recents:  recents,
		manager:  manager,
		windows:  windows.NewSource(manager, settings.IconSize),
		apps:     index,
		plugins:  providers,
	}
}

// Candidates returns the current candidate list
func (e *Engine) Candidates() []*domain.Candidate {
	return e.candidates
}

// Open starts a launcher session with the workspace window listing
func (e *Engine) Open() []*domain.Candidate {
	e.candidates = e.candidates[:0]
	e.listWorkspace()
	return e.candidates
}

// Search runs one query cycle and returns the ranked, truncated list
func (e *Engine) Search(pattern string) []*domain.Candidate {
	e.candidates = e.candidates[:0]

	if pattern == "" {
		// Clearing the query supersedes any in-flight provider answers;
		// advance the sequence so late responses cannot join the listing
		e.seq++
		e.lastPlugin = ""
		e.listWorkspace()
		return e.candidates
	}

	e.lastPlugin = ""
	e.seq++
	e.bus.Publish(eventbus.QueryStartedEvent{Pattern: pattern, Seq: e.seq})

	// Plugin fan-out: whatever is ready this tick joins the sorted group
	e.plugins.Query(e.seq, pattern, func(name string, response plugins.Response) {
		if response.Event != plugins.ResponseQueried {
			return
		}
		for _, selection := range response.Selections {
			if e.lastPlugin == "" {
				e.lastPlugin = name
			}
			e.candidates = append(e.candidates, e.pluginCandidate(name, selection))
		}
	})

	compiled, err := e.matcher.Compile(pattern)
	if err != nil {
		log.Printf("failed to compile query %q: %v", pattern, err)
		return e.candidates
	}

	matched := e.windows.Filter(compiled)
	e.sortCandidates(matched, compiled)

	// Sorted group is applications together with plugin results; windows
	// keep their own order ahead of it
	e.candidates = append(e.candidates, e.apps.Filter(compiled)...)
	e.sortCandidates(e.candidates, compiled)
	e.candidates = append(matched, e.candidates...)

	if len(e.candidates) > e.settings.ListMax {
		e.candidates = e.candidates[:e.settings.ListMax]
	}

	// Fallback: nothing matched anywhere, rewrite as a web search and
	// append whatever comes back as-is
	if len(e.candidates) == 0 {
		e.plugins.Query(e.seq, e.settings.WebFallbackPrefix+pattern, func(name string, response plugins.Response) {
			if e.lastPlugin == "" {
				e.lastPlugin = name
			}
			if response.Event != plugins.ResponseQueried {
				return
			}
			for _, selection := range response.Selections {
				e.candidates = append(e.candidates, e.pluginCandidate(name, selection))
			}
		})
	}

	e.bus.Publish(eventbus.QueryCompletedEvent{Pattern: pattern, Seq: e.seq, Count: len(e.candidates)})
	return e.candidates
}

// CollectLate drains provider responses that arrived after the dispatch
// tick of the current cycle. Responses to superseded cycles are discarded
// by their sequence stamp. Reports whether the list changed.
func (e *Engine) CollectLate() bool {
	changed := false
	e.plugins.Poll(e.seq, func(name string, response plugins.Response) {
		if response.Event != plugins.ResponseQueried {
			return
		}
		for _, selection := range response.Selections {
			if e.lastPlugin == "" {
				e.lastPlugin = name
			}
			if len(e.candidates) >= e.settings.ListMax {
				return
			}
			e.candidates = append(e.candidates, e.pluginCandidate(name, selection))
			changed = true
		}
	})
	return changed
}

// Select previews the indexed candidate: windows on the active workspace
// get a highlight overlay, everything else is a no-op
func (e *Engine) Select(index int) {
	e.manager.HideHighlight()

	if index < 0 || index >= len(e.candidates) {
		return
	}

	if id, ok := e.candidates[index].Identity.(domain.WindowIdentity); ok {
		if id.Window.WorkspaceID() == e.manager.ActiveWorkspace() {
			e.manager.HighlightRegion(id.Window.Rect())
		}
	}
}

// Apply commits the indexed candidate
func (e *Engine) Apply(index int) ApplyResult {
	e.manager.HideHighlight()

	if index < 0 || index >= len(e.candidates) {
		return ApplyResult{KeepOpen: true}
	}

	selected := e.candidates[index]

	switch id := selected.Identity.(type) {
	case domain.WindowIdentity:
		if err := id.Window.Activate(); err != nil {
			log.Printf("failed to activate window %q: %v", selected.Title, err)
		}
		e.bus.Publish(eventbus.WindowActivatedEvent{Title: selected.Title})
		return ApplyResult{}

	case domain.AppIdentity:
		if err := id.App.Launch(); err != nil {
			log.Printf("failed to launch %s: %v", id.App.Name(), err)
			e.bus.Publish(eventbus.LaunchFailedEvent{Title: selected.Title, Err: err})
			return ApplyResult{}
		}

		e.recents.Add(id.App.Filename())
		e.bus.Publish(eventbus.AppLaunchedEvent{Filename: id.App.Filename()})

		// The settings app refuses to open twice; focus the existing
		// window instead of leaving the user with nothing
		if id.App.Exec() == settingsExec {
			for _, window := range e.manager.Windows() {
				if window.Title() == settingsTitle {
					if err := window.Activate(); err != nil {
						log.Printf("failed to focus settings window: %v", err)
					}
					break
				}
			}
		}
		return ApplyResult{}

	case domain.PluginIdentity:
		if err := e.plugins.Submit(id.Source, id.SelectionID); err != nil {
			log.Printf("failed to submit to plugin %s: %v", id.Source, err)
			return ApplyResult{}
		}

		if response, ok := e.plugins.Listen(id.Source); ok && response.Event == plugins.ResponseFill {
			return ApplyResult{KeepOpen: true, FillText: response.Text, HasFill: true}
		}
		return ApplyResult{}
	}

	return ApplyResult{KeepOpen: true}
}

// Complete asks the cycle's active provider for tab completion; the
// returned text replaces the input box when ok
func (e *Engine) Complete() (string, bool) {
	if e.lastPlugin == "" {
		return "", false
	}

	if err := e.plugins.Complete(e.lastPlugin); err != nil {
		log.Printf("failed to complete via plugin %s: %v", e.lastPlugin, err)
		return "", false
	}

	if response, ok := e.plugins.Listen(e.lastPlugin); ok && response.Event == plugins.ResponseFill {
		return response.Text, true
	}
	return "", false
}

// Cancel dismisses the session: hides any preview and stops all provider
// subprocesses
func (e *Engine) Cancel() {
	e.manager.HideHighlight()
	e.plugins.StopAll()
	e.candidates = nil
	e.lastPlugin = ""
}

// listWorkspace fills the list with the plain window listing, capped at
// the configured maximum; no matching, no plugin dispatch
func (e *Engine) listWorkspace() {
	e.candidates = append(e.candidates,
		e.windows.List(e.settings.ListMax, e.settings.ShowAllWorkspaces)...)
}

func (e *Engine) pluginCandidate(name string, selection plugins.Selection) *domain.Candidate {
	categoryIcon := ""
	if cfg, ok := e.plugins.Config(name); ok {
		categoryIcon = cfg.Icon
	}

	icon := domain.Icon{}
	if selection.Icon != "" {
		icon.Name = selection.Icon
	} else if selection.ContentType != "" {
		icon.ContentType = selection.ContentType
	}

	return &domain.Candidate{
		Title:        selection.Name,
		Description:  selection.Description,
		CategoryIcon: categoryIcon,
		ContentIcon:  icon,
		IconSize:     e.settings.IconSize,
		Identity:     domain.PluginIdentity{Source: name, SelectionID: selection.ID},
	}
}
