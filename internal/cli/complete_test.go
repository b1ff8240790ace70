package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig builds a config pointing at a throwaway storage dir and
// a binary that does not exist, so tests never shell out for real.
func writeTestConfig(t *testing.T, storageDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	content := fmt.Sprintf("binary: elasticluster-absent-xyz\nstorage_dir: %s\n", storageDir)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestComplete_Subcommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfgPath := writeTestConfig(t, t.TempDir())

	var buf bytes.Buffer
	err := Complete(CompleteParams{
		ConfigPath: cfgPath,
		Words:      []string{"elasticluster", ""},
		CWord:      1,
		Out:        &buf,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "start\n")
	assert.Contains(t, out, "stop\n")
	assert.Contains(t, out, "ssh\n")
	assert.Contains(t, out, "\n:4\n")
}

func TestComplete_GlobalFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfgPath := writeTestConfig(t, t.TempDir())

	var buf bytes.Buffer
	err := Complete(CompleteParams{
		ConfigPath: cfgPath,
		Words:      []string{"elasticluster", "--"},
		CWord:      1,
		Out:        &buf,
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "--help\n")
	assert.Contains(t, buf.String(), "--storage\n")
	assert.NotContains(t, buf.String(), "start\n")
}

func TestComplete_ClusterNames(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	storageDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(storageDir, "a.pickle"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(storageDir, "b.pickle"), []byte("x"), 0644))
	cfgPath := writeTestConfig(t, storageDir)

	var buf bytes.Buffer
	err := Complete(CompleteParams{
		ConfigPath: cfgPath,
		Words:      []string{"elasticluster", "ssh", ""},
		CWord:      2,
		Out:        &buf,
	})
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n:4\n", buf.String())
}

func TestComplete_PathFlagDirective(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfgPath := writeTestConfig(t, t.TempDir())

	var buf bytes.Buffer
	err := Complete(CompleteParams{
		ConfigPath: cfgPath,
		Words:      []string{"elasticluster", "--storage", ""},
		CWord:      2,
		Out:        &buf,
	})
	require.NoError(t, err)
	assert.Equal(t, ":8\n", buf.String())
}

func TestComplete_NoWords(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfgPath := writeTestConfig(t, t.TempDir())

	var buf bytes.Buffer
	err := Complete(CompleteParams{
		ConfigPath: cfgPath,
		Words:      nil,
		CWord:      0,
		Out:        &buf,
	})
	require.NoError(t, err)
	assert.Equal(t, ":4\n", buf.String())
}
