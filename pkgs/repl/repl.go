// Package repl implements fsh's interactive read-eval-print loop: a thin
// bufio.Scanner reader over stdin (not a raw-mode line editor with
// arrow-key history — that collaborator is out of scope by spec), print
// the decoded FSH_PROMPT, parse and run one line, report any error to
// stderr as "fsh: <message>", and keep going until EOF (Ctrl-D).
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/flucium/fsh/pkgs/executor"
	"github.com/flucium/fsh/pkgs/parser"
	"github.com/flucium/fsh/pkgs/prompt"
	"github.com/flucium/fsh/pkgs/shell"
	"github.com/flucium/fsh/pkgs/vars"
)

// REPL holds everything one interactive session needs across lines: the
// input reader, the output streams, the variable store, and the executor
// state.
type REPL struct {
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
	store  *vars.Store
	state  *executor.State
}

// New creates a REPL reading lines from in and writing prompts/output to
// out and errors to errOut. store and state are shared with anything that
// ran the profile before the REPL started.
func New(in io.Reader, out, errOut io.Writer, store *vars.Store, state *executor.State) *REPL {
	return &REPL{
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		store:  store,
		state:  state,
	}
}

// Run reads and executes lines until EOF. It never returns an error for a
// single bad line — those are reported to errOut and the loop continues —
// only for a failure reading the input stream itself.
func (r *REPL) Run() error {
	for {
		if err := executor.ApplyCwdOverride(r.state, r.store); err != nil {
			fmt.Fprintf(r.errOut, "fsh: %v\n", err)
		}

		fmt.Fprint(r.out, r.currentPrompt())

		if !r.in.Scan() {
			return r.in.Err()
		}

		line := r.in.Text()
		if line == "" {
			continue
		}

		if err := r.runLine(line); err != nil {
			fmt.Fprintf(r.errOut, "fsh: %v\n", err)
		}
	}
}

func (r *REPL) runLine(line string) error {
	program, err := parser.Parse(line)
	if err != nil {
		return err
	}
	return executor.Run(program, r.state, r.store)
}

func (r *REPL) currentPrompt() string {
	template, ok := r.store.Get(shell.FshPromptVar)
	if !ok {
		template = shell.DefaultPromptValue
	}
	return prompt.Decode(template)
}
