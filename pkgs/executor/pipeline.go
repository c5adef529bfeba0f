package executor

import (
	"github.com/flucium/fsh/internal/invariant"
	"github.com/flucium/fsh/pkgs/ast"
	"github.com/flucium/fsh/pkgs/pipe"
	"github.com/flucium/fsh/pkgs/vars"
)

// runPipeline opens State's pipe, runs every stage left to right feeding
// each one's stdout into the next one's stdin, closes the pipe, then waits
// for every spawned process. Grounded on the Ast::Pipe arm of execute() in
// the original exec.rs.
func runPipeline(pipeline ast.Pipeline, state *State, store *vars.Store) error {
	state.Pipe = pipe.Open()

	for i, cmd := range pipeline.Commands {
		isLast := i == len(pipeline.Commands)-1
		if err := runCommand(cmd, state, store, isLast); err != nil {
			state.Pipe.Close()
			return err
		}
	}

	if err := state.Pipe.Close(); err != nil {
		return err
	}
	invariant.Invariant(state.Pipe.State() == pipe.Closed, "pipe coordinator must be closed once a pipeline finishes")

	state.Processes.Wait()
	return nil
}
