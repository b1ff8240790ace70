package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/elasticomp/elasticomp/internal/completion"
)

// CompleteParams contains parameters for the Complete command.
type CompleteParams struct {
	ConfigPath string
	CachePath  string
	LogLevel   string
	Words      []string // Words on the command line (COMP_WORDS)
	CWord      int      // Index of the word being completed (COMP_CWORD)
	Out        io.Writer
}

// Complete handles one completion request from the shell: it prints the
// candidates for the current word, one per line, followed by a ":<n>"
// directive line. By contract it never returns an error; every failure
// degrades to an empty candidate list.
func Complete(params CompleteParams) error {
	out := params.Out
	if out == nil {
		out = os.Stdout
	}

	c := initializeComponents(params.ConfigPath, params.LogLevel, params.CachePath)

	c.log.Debug().
		Int("words_count", len(params.Words)).
		Int("cword", params.CWord).
		Str("words", fmt.Sprintf("%q", params.Words)).
		Msg("Received completion request")

	start := time.Now()
	dispatcher := completion.NewDispatcher(toolName, c.client)
	reply := dispatcher.Complete(params.Words, params.CWord)

	c.log.Debug().
		Int("candidates", len(reply.Candidates)).
		Int("directive", int(reply.Directive)).
		Dur("elapsed", time.Since(start)).
		Msg("Computed completions")

	for _, candidate := range reply.Candidates {
		fmt.Fprintln(out, candidate)
	}
	fmt.Fprintf(out, ":%d\n", int(reply.Directive))

	return nil
}
