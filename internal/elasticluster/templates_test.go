package elasticluster

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateOutput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "two templates",
			input:    "name: foo\nname: bar\n",
			expected: []string{"foo", "bar"},
		},
		{
			name: "mixed with other fields",
			input: `11 cluster templates found.

name: slurm
image_user: ubuntu
frontend_nodes: 1

name: gridengine
image_user: centos
`,
			expected: []string{"slurm", "gridengine"},
		},
		{
			name:     "label must start the line",
			input:    "  name: indented\ncluster name: other\nname: kept\n",
			expected: []string{"kept"},
		},
		{
			name:     "empty value skipped",
			input:    "name:\nname:   \nname: real\n",
			expected: []string{"real"},
		},
		{
			name:     "empty output",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace around value",
			input:    "name:   spaced  \n",
			expected: []string{"spaced"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseTemplateOutput([]byte(tt.input)))
		})
	}
}

func TestTemplates_MissingBinary(t *testing.T) {
	c := NewClient(t.TempDir(), WithBinary("elasticluster-does-not-exist-12345"))
	assert.Empty(t, c.Templates())
}

func TestTemplates_UsesFreshCache(t *testing.T) {
	cache := NewTemplateCache(filepath.Join(t.TempDir(), "templates.yml"), time.Hour)
	require.NoError(t, cache.Put([]string{"slurm", "gridengine"}))

	// Binary does not exist: a cache miss would return nothing.
	c := NewClient(t.TempDir(),
		WithBinary("elasticluster-does-not-exist-12345"),
		WithTemplateCache(cache),
	)
	assert.Equal(t, []string{"slurm", "gridengine"}, c.Templates())
}

func TestTemplates_ExpiredCacheFallsThrough(t *testing.T) {
	cache := NewTemplateCache(filepath.Join(t.TempDir(), "templates.yml"), time.Nanosecond)
	require.NoError(t, cache.Put([]string{"stale"}))
	time.Sleep(2 * time.Millisecond)

	c := NewClient(t.TempDir(),
		WithBinary("elasticluster-does-not-exist-12345"),
		WithTemplateCache(cache),
	)
	assert.Empty(t, c.Templates())
}
