package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/elasticomp/elasticomp/internal/config"
)

// Validate checks a configuration file for syntax and schema errors.
// With an empty path it validates the discovered config file.
func Validate(path string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	if path == "" {
		path = config.FindConfigFile()
		if path == "" {
			return fmt.Errorf("no configuration file found (and none specified)")
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := config.ValidateWithSchema(path, content)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Fprintf(out, "✓ %s is valid\n", path)
		return nil
	}

	fmt.Fprintf(out, "✗ %s is invalid:\n", path)
	for _, e := range result.Errors {
		fmt.Fprintf(out, "  - %s: %s\n", e.Field, e.Message)
	}
	return fmt.Errorf("configuration is invalid")
}
