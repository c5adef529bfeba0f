package executor

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/flucium/fsh/pkgs/errors"
	"github.com/flucium/fsh/pkgs/shell"
	"github.com/flucium/fsh/pkgs/vars"
)

// runBuiltin dispatches name as a builtin, reporting errors.NotFound when
// name isn't one so the caller can fall through to spawning a process. cd
// also reports errors.NotFound for a missing directory; the caller does not
// fall through for cd.
// Grounded on execute_builtin_command in the original execute.rs/exec.rs.
func runBuiltin(name string, args []string, state *State) error {
	switch name {
	case "cd":
		target := "/"
		if len(args) > 0 {
			target = args[0]
		}
		return builtinCd(target, state)

	case "exit":
		code := 0
		if len(args) > 0 {
			if n, err := parseExitCode(args[0]); err == nil {
				code = n
			}
		}
		os.Exit(code)
		return nil

	case "abort":
		_ = syscall.Kill(os.Getpid(), syscall.SIGABRT)
		return nil

	default:
		return errors.Newf(errors.NotFound, "%s: command not found", name)
	}
}

func parseExitCode(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errors.New(errors.InvalidInput, "not a number")
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// builtinCd resolves target against the shell's tracked current directory,
// verifies the result is a directory, then updates both the host process's
// actual working directory and State's tracked copy. Grounded on
// builtin::cd / analyze in the original src/builtin/mod.rs.
func builtinCd(target string, state *State) error {
	current, err := state.CurrentDir()
	if err != nil {
		return errors.Wrap(errors.Internal, "cannot resolve current directory", err)
	}

	base, err := filepath.Abs(current)
	if err != nil {
		return errors.Wrap(errors.InvalidInput, "current directory is not valid", err)
	}

	joined := target
	if !filepath.IsAbs(target) {
		joined = filepath.Join(base, target)
	}
	resolved, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return errors.Wrap(errors.NotFound, "cd: no such directory", err)
	}

	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return errors.New(errors.NotADirectory, "cd: not a directory")
	}

	if err := os.Chdir(resolved); err != nil {
		return errors.Wrap(errors.PermissionDenied, "cd: permission denied", err)
	}

	state.SetCurrentDir(resolved)
	return nil
}

// ApplyCwdOverride applies FSH_CWD, if set, as the shell's current
// directory. Grounded on the original app/src/main.rs repl() loop, which
// runs state.current_dir_mut().push(sh_vars.get_cwd().unwrap_or_default())
// at the top of every iteration — the REPL calls this once per iteration,
// before prompting for the next line, so FSH_CWD acts as a live override
// rather than a one-time startup value.
func ApplyCwdOverride(state *State, store *vars.Store) error {
	target, ok := store.Get(shell.FshCwdVar)
	if !ok || target == "" {
		return nil
	}
	return builtinCd(target, state)
}
