// Package windows adapts the host window manager into a candidate source.
// Window enumeration and activation mechanics live behind the Manager
// interface; the launcher only filters and ranks what the manager reports.
package windows

import (
	"quicklaunch/internal/domain"
	"quicklaunch/internal/fuzzy"
)

// Manager is the window-manager collaborator: an ordered list of normal
// windows plus the id of the active workspace.
type Manager interface {
	Windows() []domain.Window
	ActiveWorkspace() int
	// HighlightRegion shows a preview overlay over a window's screen
	// region; HideHighlight removes it.
	HighlightRegion(rect domain.Rect)
	HideHighlight()
}

// CategoryIcon is the themed icon tagged onto window candidates
const CategoryIcon = "focus-windows-symbolic"

// Source filters the manager's window list into candidates
type Source struct {
	manager  Manager
	iconSize int
}

// NewSource creates a window source backed by manager
func NewSource(manager Manager, iconSize int) *Source {
	return &Source{manager: manager, iconSize: iconSize}
}

// Filter returns one candidate per window whose resolved name or raw title
// matches the pattern
func (s *Source) Filter(pattern *fuzzy.Pattern) []*domain.Candidate {
	var candidates []*domain.Candidate
	for _, window := range s.manager.Windows() {
		if pattern.Matches(window.Name()) || pattern.Matches(window.Title()) {
			candidates = append(candidates, s.candidate(window))
		}
	}
	return candidates
}

// List returns the unfiltered window listing used for the empty query,
// capped at max. When showAll is false only windows on the active
// workspace are listed.
func (s *Source) List(max int, showAll bool) []*domain.Candidate {
	active := s.manager.ActiveWorkspace()

	var candidates []*domain.Candidate
	for _, window := range s.manager.Windows() {
		if showAll || window.WorkspaceID() == active {
			candidates = append(candidates, s.candidate(window))
			if len(candidates) == max {
				break
			}
		}
	}
	return candidates
}

func (s *Source) candidate(window domain.Window) *domain.Candidate {
	return &domain.Candidate{
		Title:        window.Title(),
		Description:  window.Name(),
		CategoryIcon: CategoryIcon,
		ContentIcon:  domain.Icon{Name: window.Icon(s.iconSize)},
		IconSize:     s.iconSize,
		Identity:     domain.WindowIdentity{Window: window},
	}
}
