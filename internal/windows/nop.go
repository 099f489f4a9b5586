package windows

import "quicklaunch/internal/domain"

// NopManager is the manager used when the host has no window backend; the
// launcher degrades to applications and plugins only.
type NopManager struct{}

func (NopManager) Windows() []domain.Window         { return nil }
func (NopManager) ActiveWorkspace() int             { return 0 }
func (NopManager) HighlightRegion(rect domain.Rect) {}
func (NopManager) HideHighlight()                   {}
