package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatsWithAndWithoutCause(t *testing.T) {
	e := New(NotFound, "ls: command not found")
	assert.Equal(t, "ls: command not found", e.Error())

	wrapped := Wrap(PermissionDenied, "cd failed", errors.New("eacces"))
	assert.Equal(t, "cd failed: eacces", wrapped.Error())
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(Internal, "broke", cause)
	assert.Same(t, cause, errors.Unwrap(wrapped))
}

func TestIsKindAndKindOf(t *testing.T) {
	e := New(BrokenPipe, "pipe collapsed")
	assert.True(t, IsKind(e, BrokenPipe))
	assert.False(t, IsKind(e, Internal))
	assert.Equal(t, BrokenPipe, KindOf(e))

	plain := errors.New("plain")
	assert.False(t, IsKind(plain, BrokenPipe))
	assert.Equal(t, Other, KindOf(plain))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not found", NotFound.String())
	assert.Equal(t, "other", Kind(999).String())
}
