package executor

import (
	"os"
	"os/exec"

	"github.com/flucium/fsh/pkgs/ast"
	"github.com/flucium/fsh/pkgs/errors"
	"github.com/flucium/fsh/pkgs/vars"
)

// runCommand resolves and runs one ast.Command: builtins first, falling
// back to spawning a child process. isLast marks the final stage of a
// pipeline (or a lone command), whose stdout always inherits the shell's
// own rather than feeding State's pipe. Grounded on execute_command in the
// original execute.rs/exec.rs.
func runCommand(cmd ast.Command, state *State, store *vars.Store, isLast bool) error {
	name, err := resolveCommandName(cmd.Name, store)
	if err != nil {
		return err
	}

	args, err := resolveArgs(cmd.Args, store)
	if err != nil {
		return err
	}

	err = runBuiltin(name, args, state)
	if err == nil {
		return nil
	}
	if !errors.IsKind(err, errors.NotFound) || name == "cd" {
		return err
	}

	return runProcess(name, args, cmd.Redirects, cmd.Background, state, store, isLast)
}

// runProcess spawns name as a child process, wiring State's pipe (for
// inter-stage stdin/stdout), redirects, environment, and working directory,
// then registers it with State's process registry. Grounded on
// execute_process_command in the original exec.rs.
func runProcess(name string, args []string, redirects []ast.Redirect, background bool, state *State, store *vars.Store, isLast bool) error {
	c := exec.Command(name, args...)

	if state.Pipe.IsRecvable() {
		r, err := state.Pipe.Recv()
		if err != nil {
			return err
		}
		c.Stdin = r
		defer r.Close()
	} else {
		c.Stdin = os.Stdin
	}

	if state.Pipe.IsSendable() && !isLast {
		pr, pw, err := os.Pipe()
		if err != nil {
			return errors.Wrap(errors.Other, "cannot open pipe", err)
		}
		c.Stdout = pw
		defer pw.Close()
		if err := state.Pipe.Send(pr); err != nil {
			return err
		}
	} else {
		c.Stdout = os.Stdout
	}

	c.Stderr = os.Stderr
	c.Env = store.Environ()

	if dir, err := state.CurrentDir(); err == nil && dir != "" {
		c.Dir = dir
	}

	if err := applyRedirects(c, redirects, store); err != nil {
		return err
	}

	if err := c.Start(); err != nil {
		if stderrIsExecNotFound(err) {
			return errors.Newf(errors.NotFound, "%s: command not found", name)
		}
		return errors.Wrap(errors.Other, name+": failed to start", err)
	}

	state.Processes.Push(c, background)
	return nil
}

// stderrIsExecNotFound reports whether err is exec.Start's "not found in
// $PATH or working directory" error, distinct from any other start failure.
func stderrIsExecNotFound(err error) bool {
	execErr, ok := err.(*exec.Error)
	return ok && execErr.Err == exec.ErrNotFound
}
