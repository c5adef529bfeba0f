// Package process tracks spawned child processes with a foreground/
// background flag, grounded on the original fsh-engine's (unnamed in the
// kept source, referred to here as) ProcessHandler: state.rs holds it,
// exec.rs pushes children onto it and calls wait() after every statement and
// pipeline.
//
// Background entries need a non-blocking poll without leaking a zombie
// process while unreaped. os/exec only offers a blocking Wait, so a
// background entry's Wait is run on its own goroutine the moment it is
// pushed; polling is then a non-blocking receive on the goroutine's result
// channel, never a second call to Cmd.Wait (which os/exec forbids).
package process

import (
	"os/exec"
	"sync/atomic"

	"github.com/flucium/fsh/internal/invariant"
)

// Entry is one tracked child process.
type Entry struct {
	PID        int
	Cmd        *exec.Cmd
	Background bool

	done chan waitResult // non-nil only for Background entries
}

type waitResult struct {
	exitCode int
	err      error
}

var nextHandle atomic.Int64

// Registry is an ordered sequence of process entries, each exclusively
// owning its *exec.Cmd until reaped.
type Registry struct {
	order   []int64
	entries map[int64]*Entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[int64]*Entry)}
}

// Push registers a freshly spawned child and returns its registry handle
// (not the OS pid — a monotonically increasing id local to this process).
// For a background child the wait is started immediately on its own
// goroutine so Wait can poll it without blocking.
func (r *Registry) Push(cmd *exec.Cmd, background bool) int64 {
	handle := nextHandle.Add(1)
	entry := &Entry{PID: cmd.Process.Pid, Cmd: cmd, Background: background}

	if background {
		entry.done = make(chan waitResult, 1)
		go func() {
			err := cmd.Wait()
			entry.done <- waitResult{exitCode: exitCodeFromWaitErr(err), err: nonExitWaitErr(err)}
		}()
	}

	r.entries[handle] = entry
	r.order = append(r.order, handle)
	return handle
}

// Get returns the entry for handle, if still tracked.
func (r *Registry) Get(handle int64) (*Entry, bool) {
	e, ok := r.entries[handle]
	return e, ok
}

// Remove drops handle from the registry without waiting on it.
func (r *Registry) Remove(handle int64) {
	delete(r.entries, handle)
	for i, h := range r.order {
		if h == handle {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Kill sends SIGKILL to handle's process and removes it from the registry.
func (r *Registry) Kill(handle int64) error {
	e, ok := r.entries[handle]
	if !ok {
		return nil
	}
	err := e.Cmd.Process.Kill()
	r.Remove(handle)
	return err
}

// Reaped pairs a registry handle with the exit status observed for it.
type Reaped struct {
	Handle   int64
	ExitCode int
	Err      error
}

// Wait drains every entry in insertion order: foreground entries block on
// Cmd.Wait(); background entries are polled non-blockingly and left in
// place if still running. After Wait returns, the registry holds no
// foreground entries.
func (r *Registry) Wait() []Reaped {
	var results []Reaped

	remaining := r.order[:0:0]
	for _, handle := range r.order {
		e, ok := r.entries[handle]
		if !ok {
			continue
		}

		if e.Background {
			select {
			case res := <-e.done:
				results = append(results, Reaped{Handle: handle, ExitCode: res.exitCode, Err: res.err})
				delete(r.entries, handle)
			default:
				remaining = append(remaining, handle)
			}
			continue
		}

		err := e.Cmd.Wait()
		results = append(results, Reaped{Handle: handle, ExitCode: exitCodeFromWaitErr(err), Err: nonExitWaitErr(err)})
		delete(r.entries, handle)
	}

	r.order = remaining
	for _, handle := range r.order {
		invariant.Invariant(r.entries[handle].Background, "Wait must not leave a foreground entry (handle %d) tracked", handle)
	}

	return results
}

// Len reports how many entries remain tracked.
func (r *Registry) Len() int {
	return len(r.order)
}

func exitCodeFromWaitErr(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

// nonExitWaitErr returns err unless it is merely a non-zero exit status,
// which is not a failure of the shell itself.
func nonExitWaitErr(err error) error {
	if _, ok := err.(*exec.ExitError); ok {
		return nil
	}
	return err
}
