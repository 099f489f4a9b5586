package domain

// Candidate represents one rankable result row in the launcher list
type Candidate struct {
	Title        string
	Description  string
	CategoryIcon string // themed icon for the candidate's source category
	ContentIcon  Icon
	IconSize     int
	Identity     Identity

	// MatchScore caches the fuzzy relevance score once the comparator has
	// computed it for this query cycle. Nil means not yet scored.
	MatchScore *int
}

// Icon is a display hint for a candidate. Name wins when both are set;
// ContentType lets the presentation derive an icon from a MIME type.
type Icon struct {
	Name        string
	ContentType string
}

// Identity says what a candidate resolves to when applied. Exactly one
// concrete type backs each candidate; callers must type-switch rather than
// probe fields.
type Identity interface {
	isIdentity()
}

// WindowIdentity references a live window. The window is owned by the
// window manager, not the launcher; it may disappear at any time.
type WindowIdentity struct {
	Window Window
}

// AppIdentity references an immutable application index entry.
type AppIdentity struct {
	App AppInfo
}

// PluginIdentity references an external provider by name together with a
// selection id that is opaque to the launcher.
type PluginIdentity struct {
	Source      string
	SelectionID uint32
}

func (WindowIdentity) isIdentity() {}
func (AppIdentity) isIdentity()    {}
func (PluginIdentity) isIdentity() {}

// AppInfo is the application-index collaborator's view of one desktop
// entry. Filename is the stable identity used as the recency key.
type AppInfo interface {
	Name() string
	GenericName() string // "" when the entry has none
	DesktopName() string
	Exec() string
	Icon() string
	Filename() string
	Launch() error
}

// Window is the window-manager collaborator's view of one open window.
type Window interface {
	Name() string // resolved display name
	Title() string
	WorkspaceID() int
	Rect() Rect
	Activate() error
	Icon(size int) string
}

// Rect is a window's screen region, used for the selection preview overlay.
type Rect struct {
	X, Y, Width, Height int
}
