// Package pipe implements the two-ended handoff used to connect one
// pipeline stage's stdout to the next stage's stdin, grounded on the
// original fsh-engine's Pipe (crates/fsh-engine/src/pipe.rs /
// crates/fsh-ast/src/pipe.rs): a small state machine cycling between
// Sendable (ready to accept the write end) and Recvable (ready to hand the
// read end to whoever asked for it).
//
// The ends are *os.File values that os/exec installs directly as a child's
// stdin/stdout, so this type carries *os.File rather than a raw descriptor
// number. os/exec does not close an *os.File it is given; the executor
// closes the parent's copies once the child has started.
package pipe

import (
	"os"

	"github.com/flucium/fsh/pkgs/errors"
)

// State is the lifecycle state of a Pipe.
type State int

const (
	Closed State = iota
	Sendable
	Recvable
)

func (s State) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Sendable:
		return "Sendable"
	case Recvable:
		return "Recvable"
	default:
		return "Unknown"
	}
}

// Pipe hands one *os.File between a producer and a consumer stage,
// enforcing that only one side holds it at a time.
type Pipe struct {
	state State
	file  *os.File
}

func newPipe(state State) *Pipe {
	return &Pipe{state: state}
}

// New creates a Closed pipe.
func New() *Pipe {
	return newPipe(Closed)
}

// Open creates a pipe already in the Sendable state, ready for an initial
// Send without a prior Close/reopen cycle.
func Open() *Pipe {
	return newPipe(Sendable)
}

// State reports the pipe's current state.
func (p *Pipe) State() State {
	return p.state
}

// IsSendable reports whether Send may currently be called.
func (p *Pipe) IsSendable() bool {
	return p.state == Sendable
}

// IsRecvable reports whether Recv may currently be called.
func (p *Pipe) IsRecvable() bool {
	return p.state == Recvable
}

// Send deposits file into the pipe, transitioning Sendable -> Recvable.
func (p *Pipe) Send(file *os.File) error {
	if p.state != Sendable {
		return errors.Newf(errors.Internal, "pipe: cannot send in state %s", p.state)
	}
	p.file = file
	p.state = Recvable
	return nil
}

// Recv withdraws the deposited file, transitioning Recvable -> Sendable so
// the pipe is immediately ready for the next stage's Send.
func (p *Pipe) Recv() (*os.File, error) {
	if p.state != Recvable {
		return nil, errors.Newf(errors.Internal, "pipe: cannot recv in state %s", p.state)
	}
	file := p.file
	p.file = nil
	p.state = Sendable
	return file, nil
}

// Close releases any file currently held and resets the pipe to Closed.
func (p *Pipe) Close() error {
	if p.file != nil {
		err := p.file.Close()
		p.file = nil
		p.state = Closed
		return err
	}
	p.state = Closed
	return nil
}
