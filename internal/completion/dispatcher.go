// Package completion computes tab-completion candidates for the
// elasticluster command line.
//
// The dispatcher is a lookup keyed by the token preceding the cursor:
// it never parses the command line beyond that, mirroring how the shell
// completion function it replaces behaved.
package completion

import (
	"path/filepath"
	"strings"
)

// Directive tells the shell how to interpret the returned candidates.
// Values follow the convention used by Go completion libraries: the
// generated shell function reads them from a trailing ":<n>" line.
type Directive int

const (
	// DirectiveDefault allows the shell to fall back to file completion.
	DirectiveDefault Directive = 0
	// DirectiveNoFileComp suppresses the shell's file completion fallback.
	DirectiveNoFileComp Directive = 4
	// DirectiveFilterDirs restricts the fallback to directories.
	DirectiveFilterDirs Directive = 8
)

// Reply is the outcome of a single completion request.
type Reply struct {
	Candidates []string
	Directive  Directive
}

// Source provides the dynamically discovered candidate lists.
// Acquisition failures surface as empty slices, never as errors.
type Source interface {
	Clusters() []string
	Templates() []string
}

// Candidate tables for the elasticluster CLI. Order matters: candidates
// are offered in table order, filtered by prefix, never sorted.
var (
	globalFlags = []string{"-h", "--help", "--version", "-v", "--verbose", "-s", "--storage", "-c", "--config"}

	subcommands = []string{"start", "stop", "setup", "resize", "list", "list-nodes", "list-templates", "ssh", "sftp"}

	commandFlags = map[string][]string{
		"start":  {"-h", "--help", "-v", "--verbose", "-n", "--name", "--nodes", "--no-setup"},
		"stop":   {"-h", "--help", "-v", "--verbose", "--force", "--wait"},
		"resize": {"-h", "--help", "-v", "--verbose", "-a", "--add", "-r", "--remove", "--no-setup"},
	}

	// Subcommands whose positional argument is a template name.
	// "setup" historically appeared in both dynamic tables; it resolves
	// to template names here, matching what the first-match dispatch of
	// the original completion function always produced.
	templateArg = map[string]bool{
		"start":          true,
		"setup":          true,
		"list-templates": true,
	}

	// Subcommands whose positional argument is a saved cluster name.
	clusterArg = map[string]bool{
		"stop":       true,
		"resize":     true,
		"list-nodes": true,
		"ssh":        true,
		"sftp":       true,
	}

	// Flags taking a filesystem path argument.
	pathFlags = map[string]Directive{
		"-c":        DirectiveDefault,
		"--config":  DirectiveDefault,
		"-s":        DirectiveFilterDirs,
		"--storage": DirectiveFilterDirs,
	}
)

// Dispatcher maps the previous command-line token to a candidate set.
type Dispatcher struct {
	prog   string
	source Source
}

// NewDispatcher creates a dispatcher for the given program name.
func NewDispatcher(prog string, source Source) *Dispatcher {
	return &Dispatcher{prog: prog, source: source}
}

// Complete returns the candidates for the word at index cword in words.
// All failure modes degrade to an empty reply; there is no error path.
func (d *Dispatcher) Complete(words []string, cword int) Reply {
	cur := currentWord(words, cword)
	prev := previousWord(words, cword)
	if prev == "" {
		return Reply{Directive: DirectiveNoFileComp}
	}

	candidates, directive := d.candidatesFor(prev, cur)
	return Reply{
		Candidates: Filter(candidates, cur),
		Directive:  directive,
	}
}

// candidatesFor selects the candidate universe for the previous token.
func (d *Dispatcher) candidatesFor(prev, cur string) ([]string, Directive) {
	// The program name may be typed with a path prefix.
	if filepath.Base(prev) == d.prog {
		if strings.HasPrefix(cur, "-") {
			return globalFlags, DirectiveNoFileComp
		}
		return subcommands, DirectiveNoFileComp
	}

	if directive, ok := pathFlags[prev]; ok {
		return nil, directive
	}

	if flags, ok := commandFlags[prev]; ok && strings.HasPrefix(cur, "-") {
		return flags, DirectiveNoFileComp
	}

	if templateArg[prev] {
		return d.source.Templates(), DirectiveNoFileComp
	}
	if clusterArg[prev] {
		return d.source.Clusters(), DirectiveNoFileComp
	}

	return nil, DirectiveNoFileComp
}

// Filter keeps the candidates sharing the given prefix, preserving
// relative order.
func Filter(candidates []string, prefix string) []string {
	if prefix == "" {
		return candidates
	}

	var filtered []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// GlobalFlags returns the global flag table.
func GlobalFlags() []string {
	return append([]string(nil), globalFlags...)
}

// Subcommands returns the subcommand table.
func Subcommands() []string {
	return append([]string(nil), subcommands...)
}

func currentWord(words []string, cword int) string {
	if cword >= 0 && cword < len(words) {
		return words[cword]
	}
	return ""
}

func previousWord(words []string, cword int) string {
	if cword >= 1 && cword <= len(words) {
		return words[cword-1]
	}
	return ""
}
