package profile

import (
	"path/filepath"
	"testing"

	"github.com/flucium/fsh/pkgs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsFalseForMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	assert.False(t, Exists(path))
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.fsh")
	require.NoError(t, Write(path, "$X = 1"))
	assert.True(t, Exists(path))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "$X = 1", got)
}

func TestReadMissingFileIsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	_, err := Read(path)
	assert.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.NotFound))
}

func TestUpdateAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.fsh")
	require.NoError(t, Write(path, "$X = 1;"))
	require.NoError(t, Update(path, "$Y = 2"))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "$X = 1;$Y = 2", got)
}

func TestLoadOrCreateCreatesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.fsh")
	content, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultContent, content)
	assert.True(t, Exists(path))
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.fsh")
	require.NoError(t, Write(path, "$X = 99"))

	content, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "$X = 99", content)
}
