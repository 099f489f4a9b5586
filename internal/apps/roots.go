package apps

import (
	"os"
	"path/filepath"
	"strings"
)

// Root is one application search location
type Root struct {
	Label string
	Path  string
}

// SearchRoots returns the fixed, ordered list of locations probed for
// desktop entries. Order matters: when the same application appears under
// several roots the first root wins.
func SearchRoots() []Root {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	roots := []Root{
		// System-wide
		{"System", "/usr/share/applications"},
		{"System (Local)", "/usr/local/share/applications"},
		// User-local
		{"User", filepath.Join(homeDir, ".local/share/applications")},
		// System-wide flatpaks
		{"Flatpak (System)", "/var/lib/flatpak/exports/share/applications"},
		// User-local flatpaks
		{"Flatpak (User)", filepath.Join(homeDir, ".local/share/flatpak/exports/share/applications")},
		// System-wide Snaps
		{"Snap (System)", "/var/lib/snapd/desktop/applications"},
		// Lutris flatpak
		{"Lutris (Flatpak)", filepath.Join(homeDir, ".var/app/net.lutris.Lutris/data/applications")},
	}

	return append(roots, dataDirRoots()...)
}

// dataDirRoots derives additional system roots from XDG_DATA_DIRS
func dataDirRoots() []Root {
	var roots []Root
	for _, dir := range strings.Split(os.Getenv("XDG_DATA_DIRS"), ":") {
		if dir == "" {
			continue
		}
		roots = append(roots, Root{
			Label: "System",
			Path:  filepath.Join(strings.TrimSuffix(dir, "/"), "applications"),
		})
	}
	return roots
}
