// Package setup installs the elasticomp completion hook into shell rc
// files.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MarkerStart is the starting marker for the elasticomp block in RC files
	MarkerStart = "# elasticomp completion - START"
	// MarkerEnd is the ending marker for the elasticomp block in RC files
	MarkerEnd = "# elasticomp completion - END"
)

// Result represents the result of a setup operation.
type Result struct {
	RCFile  string
	Updated bool
	Message string
}

// GetRCFilePath returns the RC file path for the given shell.
func GetRCFilePath(shell string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch shell {
	case "bash":
		return filepath.Join(home, ".bashrc"), nil
	case "zsh":
		return filepath.Join(home, ".zshrc"), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (use bash or zsh)", shell)
	}
}

// hookBlock returns the full marker-delimited block for the given shell.
// The rc file evaluates `elasticomp hook` at startup so the registration
// code always matches the installed binary.
func hookBlock(shell string) string {
	return fmt.Sprintf(`%s
if command -v elasticomp >/dev/null 2>&1; then
  eval "$(elasticomp hook --shell %s 2>/dev/null)"
fi
%s`, MarkerStart, shell, MarkerEnd)
}

// extractBlock returns the current marker-delimited block, or "" when the
// hook is not installed.
func extractBlock(content string) string {
	start := strings.Index(content, MarkerStart)
	if start == -1 {
		return ""
	}
	end := strings.Index(content[start:], MarkerEnd)
	if end == -1 {
		return ""
	}
	return content[start : start+end+len(MarkerEnd)]
}

// IsHookInstalled reports whether the RC file carries the hook block.
func IsHookInstalled(shell string) (bool, error) {
	rcFile, err := GetRCFilePath(shell)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(rcFile)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return extractBlock(string(data)) != "", nil
}

// InstallHook installs or updates the completion hook in the RC file.
func InstallHook(shell string) (*Result, error) {
	rcFile, err := GetRCFilePath(shell)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(rcFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", rcFile, err)
	}
	content := string(data)

	block := hookBlock(shell)
	existing := extractBlock(content)

	if existing == block {
		return &Result{
			RCFile:  rcFile,
			Updated: false,
			Message: fmt.Sprintf("✓ Completion hook already installed in %s", rcFile),
		}, nil
	}

	if existing != "" {
		// Stale block from an earlier version: replace in place.
		content = strings.Replace(content, existing, block, 1)
	} else {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += "\n" + block + "\n"
	}

	if err := os.WriteFile(rcFile, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", rcFile, err)
	}

	return &Result{
		RCFile:  rcFile,
		Updated: true,
		Message: fmt.Sprintf("✓ Completion hook installed in %s", rcFile),
	}, nil
}

// UninstallHook removes the completion hook from the RC file.
func UninstallHook(shell string) (*Result, error) {
	rcFile, err := GetRCFilePath(shell)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(rcFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &Result{
				RCFile:  rcFile,
				Updated: false,
				Message: "✓ Completion hook is not installed",
			}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", rcFile, err)
	}
	content := string(data)

	existing := extractBlock(content)
	if existing == "" {
		return &Result{
			RCFile:  rcFile,
			Updated: false,
			Message: "✓ Completion hook is not installed",
		}, nil
	}

	content = strings.Replace(content, existing, "", 1)
	// Collapse the blank lines the block left behind.
	content = strings.ReplaceAll(content, "\n\n\n", "\n\n")

	if err := os.WriteFile(rcFile, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", rcFile, err)
	}

	return &Result{
		RCFile:  rcFile,
		Updated: true,
		Message: fmt.Sprintf("✓ Completion hook removed from %s", rcFile),
	}, nil
}
