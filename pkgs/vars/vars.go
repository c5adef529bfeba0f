// Package vars implements fsh's shell variable store: a string-to-string map
// that inherits from the host process environment and a couple of reserved
// keys, grounded on the original fsh-engine's ShVars
// (crates/fsh-engine/src/sh_vars.rs). The shell is single-threaded (see
// spec's concurrency model), so no locking is needed here.
package vars

import (
	"os"
	"strings"

	"github.com/flucium/fsh/pkgs/errors"
	"github.com/flucium/fsh/pkgs/shell"
)

// PromptVar is the reserved variable holding the prompt template.
const PromptVar = shell.FshPromptVar

// CwdVar is the reserved variable holding the shell's intended working
// directory.
const CwdVar = shell.FshCwdVar

// Store is fsh's variable store.
type Store struct {
	values map[string]string
}

// New creates an empty Store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Inherit imports every key/value pair from the host process environment,
// overwriting any existing keys of the same name.
func (s *Store) Inherit() {
	for _, kv := range os.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		s.values[key] = value
	}
}

// Insert sets key to value. An empty key is rejected. An empty value is
// normalized to the literal string "null" — an intentional quirk of this
// shell's design, preserved exactly as specified; do not silently change it.
func (s *Store) Insert(key, value string) error {
	if key == "" {
		return errors.New(errors.InvalidInput, "variable name must not be empty")
	}
	if value == "" {
		value = "null"
	}
	s.values[key] = value
	return nil
}

// Get returns the value of key and whether it exists.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Remove deletes key, if present.
func (s *Store) Remove(key string) {
	delete(s.values, key)
}

// Exists reports whether key is present.
func (s *Store) Exists(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of distinct keys currently stored.
func (s *Store) Len() int {
	return len(s.values)
}

// IsEmpty reports whether the store holds no keys.
func (s *Store) IsEmpty() bool {
	return len(s.values) == 0
}

// Clear removes every key.
func (s *Store) Clear() {
	s.values = make(map[string]string)
}

// Keys returns every key, in unspecified order.
func (s *Store) Keys() []string {
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	return out
}

// Values returns every value, in unspecified order (not index-aligned with
// Keys — callers needing pairs should use Entries).
func (s *Store) Values() []string {
	out := make([]string, 0, len(s.values))
	for _, v := range s.values {
		out = append(out, v)
	}
	return out
}

// Entries returns a shallow copy of the entire key/value map, safe for a
// caller to range over or hand to exec.Cmd.Env construction without risking
// mutation of the store.
func (s *Store) Entries() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Environ renders the store as a KEY=VALUE slice suitable for
// exec.Cmd.Env.
func (s *Store) Environ() []string {
	out := make([]string, 0, len(s.values))
	for k, v := range s.values {
		out = append(out, k+"="+v)
	}
	return out
}
