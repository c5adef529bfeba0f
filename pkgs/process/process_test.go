package process

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trueCmd(t *testing.T) *exec.Cmd {
	t.Helper()
	cmd := exec.Command("true")
	require.NoError(t, cmd.Start())
	return cmd
}

func sleepCmd(t *testing.T, seconds string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command("sleep", seconds)
	require.NoError(t, cmd.Start())
	return cmd
}

func TestPushForegroundThenWaitReaps(t *testing.T) {
	r := New()
	handle := r.Push(trueCmd(t), false)
	assert.Equal(t, 1, r.Len())

	reaped := r.Wait()
	require.Len(t, reaped, 1)
	assert.Equal(t, handle, reaped[0].Handle)
	assert.Equal(t, 0, reaped[0].ExitCode)
	assert.NoError(t, reaped[0].Err)
	assert.Equal(t, 0, r.Len())
}

func TestWaitLeavesRunningBackgroundEntryInRegistry(t *testing.T) {
	r := New()
	r.Push(sleepCmd(t, "1"), true)

	reaped := r.Wait()
	assert.Empty(t, reaped)
	assert.Equal(t, 1, r.Len())
}

func TestWaitReapsBackgroundEntryOnceFinished(t *testing.T) {
	r := New()
	handle := r.Push(sleepCmd(t, "0.05"), true)

	time.Sleep(200 * time.Millisecond)

	reaped := r.Wait()
	require.Len(t, reaped, 1)
	assert.Equal(t, handle, reaped[0].Handle)
	assert.Equal(t, 0, r.Len())
}

func TestWaitNeverLeavesAForegroundEntryTracked(t *testing.T) {
	r := New()
	r.Push(trueCmd(t), false)
	r.Push(sleepCmd(t, "1"), true)

	r.Wait()

	for _, handle := range r.order {
		e, ok := r.Get(handle)
		require.True(t, ok)
		assert.True(t, e.Background)
	}
}

func TestGetRemoveKill(t *testing.T) {
	r := New()
	handle := r.Push(sleepCmd(t, "5"), true)

	e, ok := r.Get(handle)
	require.True(t, ok)
	assert.True(t, e.Background)

	require.NoError(t, r.Kill(handle))
	_, ok = r.Get(handle)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRemoveWithoutWaiting(t *testing.T) {
	r := New()
	handle := r.Push(trueCmd(t), false)
	r.Remove(handle)
	assert.Equal(t, 0, r.Len())
	_, ok := r.Get(handle)
	assert.False(t, ok)
}

func TestExitCodeFromWaitErrNonZero(t *testing.T) {
	cmd := exec.Command("false")
	require.NoError(t, cmd.Start())
	r := New()
	handle := r.Push(cmd, false)

	reaped := r.Wait()
	require.Len(t, reaped, 1)
	assert.Equal(t, handle, reaped[0].Handle)
	assert.Equal(t, 1, reaped[0].ExitCode)
	assert.NoError(t, reaped[0].Err) // non-zero exit is not itself a shell error
}
