package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elasticomp/elasticomp/internal/shell"
)

const (
	// ShellBash represents bash shell
	ShellBash = "bash"
	// ShellZsh represents zsh shell
	ShellZsh = "zsh"
)

// DetectShell determines the shell type based on the flag or environment.
func DetectShell(shellFlag string) string {
	if shellFlag != "auto" && shellFlag != "" {
		return shellFlag
	}

	sh := os.Getenv("SHELL")
	if strings.Contains(sh, "zsh") {
		return ShellZsh
	}
	if strings.Contains(sh, "bash") {
		return ShellBash
	}

	// Default to bash
	return ShellBash
}

// HookParams contains parameters for the Hook command.
type HookParams struct {
	Shell string
	Out   io.Writer
}

// Hook prints the shell code registering elasticomp as the completion
// handler for elasticluster.
func Hook(params HookParams) error {
	out := params.Out
	if out == nil {
		out = os.Stdout
	}

	binPath, err := os.Executable()
	if err != nil {
		binPath = "elasticomp" // fall back to PATH lookup
	}

	gen := shell.NewCompletionGenerator(params.Shell)
	code, err := gen.GenerateRegistration(shell.Params{
		Tool:   toolName,
		Binary: binPath,
	})
	if err != nil {
		return fmt.Errorf("failed to generate completion code: %w", err)
	}

	fmt.Fprintln(out, code)
	return nil
}
