//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace builds an isolated home directory for one launcher
// process: config, state, and data dirs all live under it
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	workspace, err := os.MkdirTemp("", "quicklaunch-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = workspace

	for _, dir := range []string{"config", "state", "share"} {
		if err := os.MkdirAll(filepath.Join(workspace, dir), 0755); err != nil {
			return "", fmt.Errorf("failed to create %s dir: %w", dir, err)
		}
	}

	return workspace, nil
}

// WriteConfig writes a settings file into the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(content string) (string, error) {
	path := filepath.Join(tf.workspace, "config", "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

// CreateProviderScript installs a shell-script provider into the workspace.
// The script speaks the launcher protocol: it answers every query with one
// canned selection and exits on quit.
func (tf *TUITestFramework) CreateProviderScript(name string) (string, error) {
	script := `#!/bin/sh
while IFS= read -r line; do
  case "$line" in
    *'"event":"query"'*)
      printf '{"event":"queried","selections":[{"id":1,"name":"calc result 4","description":"calculator"}]}\n' ;;
    *'"event":"quit"'*)
      exit 0 ;;
  esac
done
`
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		return "", fmt.Errorf("failed to write provider script: %w", err)
	}
	return path, nil
}
