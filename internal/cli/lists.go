package cli

import (
	"fmt"
	"io"
	"os"
)

// ListParams contains parameters for the Clusters and Templates commands.
type ListParams struct {
	ConfigPath string
	CachePath  string
	LogLevel   string
	NoCache    bool
	Out        io.Writer
}

// Clusters prints the names of saved clusters, one per line.
func Clusters(params ListParams) error {
	out := params.Out
	if out == nil {
		out = os.Stdout
	}

	c := initializeComponents(params.ConfigPath, params.LogLevel, params.CachePath)
	for _, name := range c.client.Clusters() {
		fmt.Fprintln(out, name)
	}
	return nil
}

// Templates prints the names of available cluster templates, one per line.
func Templates(params ListParams) error {
	out := params.Out
	if out == nil {
		out = os.Stdout
	}

	c := initializeComponents(params.ConfigPath, params.LogLevel, params.CachePath)

	if params.NoCache && c.cache != nil {
		if err := c.cache.Invalidate(); err != nil {
			c.log.Warn().Err(err).Msg("Failed to invalidate template cache")
		}
	}

	for _, name := range c.client.Templates() {
		fmt.Fprintln(out, name)
	}
	return nil
}
