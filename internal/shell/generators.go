// Package shell generates the completion registration code that hooks
// elasticomp into the user's shell for the elasticluster command.
package shell

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
)

// Params feeds the completion templates.
type Params struct {
	// Tool is the command being completed (elasticluster).
	Tool string
	// Binary is the elasticomp executable the shell function calls back.
	Binary string
}

// CodeGenerator is an interface for shell-specific completion code
// generation. Implementations generate registration code for bash, zsh,
// etc.
type CodeGenerator interface {
	// GenerateRegistration renders the completion function and its
	// complete/compdef registration for the given parameters.
	GenerateRegistration(p Params) (string, error)
	// Name returns the shell name (bash, zsh, etc.)
	Name() string
}

// BashCodeGenerator generates bash-specific registration code.
type BashCodeGenerator struct{}

// Name returns the shell name for bash.
func (b *BashCodeGenerator) Name() string {
	return shellBash
}

// GenerateRegistration renders the bash completion function.
func (b *BashCodeGenerator) GenerateRegistration(p Params) (string, error) {
	return render("bash", bashTemplate, p)
}

// ZshCodeGenerator generates zsh-specific registration code.
type ZshCodeGenerator struct{}

// Name returns the shell name for zsh.
func (z *ZshCodeGenerator) Name() string {
	return shellZsh
}

// GenerateRegistration renders the zsh completion function.
func (z *ZshCodeGenerator) GenerateRegistration(p Params) (string, error) {
	return render("zsh", zshTemplate, p)
}

// MultiShellCodeGenerator generates registration code for multiple shells.
type MultiShellCodeGenerator struct {
	generators []CodeGenerator
}

// Name returns the shell name for the multi-shell generator.
func (m *MultiShellCodeGenerator) Name() string {
	return "multi"
}

// GenerateRegistration renders registration code for all configured shells.
func (m *MultiShellCodeGenerator) GenerateRegistration(p Params) (string, error) {
	var parts []string
	for _, gen := range m.generators {
		code, err := gen.GenerateRegistration(p)
		if err != nil {
			return "", err
		}
		parts = append(parts, code)
	}
	return strings.Join(parts, "\n"), nil
}

// NewCompletionGenerator creates the shell code generator for the given
// shell type.
func NewCompletionGenerator(shell string) CodeGenerator {
	switch shell {
	case shellBash:
		return &BashCodeGenerator{}
	case shellZsh:
		return &ZshCodeGenerator{}
	default:
		// Both shells
		return &MultiShellCodeGenerator{
			generators: []CodeGenerator{
				&BashCodeGenerator{},
				&ZshCodeGenerator{},
			},
		}
	}
}

func render(name, tmplText string, p Params) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(tmplText)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}
