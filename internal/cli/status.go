package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/elasticomp/elasticomp/internal/status"
	"github.com/elasticomp/elasticomp/pkg/version"
)

// StatusParams contains parameters for the Status command.
type StatusParams struct {
	ConfigPath string
	CachePath  string
	LogLevel   string
	Shell      string
	Out        io.Writer
}

// Status renders diagnostics about the completion environment.
func Status(params StatusParams) error {
	out := params.Out
	if out == nil {
		out = os.Stdout
	}

	c := initializeComponents(params.ConfigPath, params.LogLevel, params.CachePath)

	data := status.Collect(status.Params{
		Version:    version.Version,
		Shell:      DetectShell(params.Shell),
		ConfigPath: c.cfgPath,
		Binary:     c.cfg.Binary,
		StorageDir: c.cfg.StorageDir,
		Client:     c.client,
		Cache:      c.cache,
	})

	fmt.Fprintln(out, status.Render(data))
	return nil
}
