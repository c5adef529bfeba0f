// Package executor walks an ast.Program and runs it: assignments update the
// variable store, commands run as builtins or child processes, and
// pipelines chain child processes' stdout to the next stage's stdin.
// Grounded on the original fsh-engine's execute.rs/exec.rs and State
// (crates/fsh-engine/src/state.rs).
package executor

import (
	"os"

	"github.com/flucium/fsh/pkgs/pipe"
	"github.com/flucium/fsh/pkgs/process"
)

// State is the executor's mutable run state: the process registry, the
// pipe currently threading one pipeline stage's stdout into the next
// stage's stdin, and the shell's notion of its current directory.
type State struct {
	Processes  *process.Registry
	Pipe       *pipe.Pipe
	currentDir string
}

// NewState creates a State rooted at dir. An empty dir defers to the host
// process's actual working directory at first use.
func NewState(dir string) *State {
	return &State{
		Processes:  process.New(),
		Pipe:       pipe.New(),
		currentDir: dir,
	}
}

// CurrentDir returns the shell's tracked working directory, resolving to
// the host process's actual cwd if none has been set yet.
func (s *State) CurrentDir() (string, error) {
	if s.currentDir != "" {
		return s.currentDir, nil
	}
	return os.Getwd()
}

// SetCurrentDir overwrites the tracked working directory.
func (s *State) SetCurrentDir(dir string) {
	s.currentDir = dir
}
