//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialQueryFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("--query", "terminal")
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Launcher chrome should render")
	require.True(t, tf.SeePlain("terminal"), "Initial query should pre-fill the input")
}

func TestTypingEditsQuery(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Launcher chrome should render")

	// An empty workspace has no windows and no desktop entries
	require.True(t, tf.SeePlain("No results"), "Empty workspace should show no results")

	require.NoError(t, tf.TypeSlowly("hello"))
	require.True(t, tf.SeePlain("hello"), "Typed query should echo in the input")

	// Still nothing to match and no providers to fall back to
	require.True(t, tf.SeePlain("No results"), "Query should stay empty-handed")
}
