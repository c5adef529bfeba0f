package vars

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreIsEmpty(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
}

func TestInsertAndGet(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Insert(fmt.Sprintf("key%d", i), fmt.Sprintf("value%d", i)))
	}
	for i := 0; i < 10; i++ {
		v, ok := s.Get(fmt.Sprintf("key%d", i))
		assert.True(t, ok)
		assert.Equal(t, fmt.Sprintf("value%d", i), v)
	}
	assert.Equal(t, 10, s.Len())
	assert.False(t, s.IsEmpty())
}

func TestInsertRejectsEmptyKey(t *testing.T) {
	s := New()
	err := s.Insert("", "value")
	assert.Error(t, err)
}

func TestInsertNormalizesEmptyValueToNull(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert("X", ""))
	v, ok := s.Get("X")
	require.True(t, ok)
	assert.Equal(t, "null", v)
}

func TestRemove(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert("key1", "value1"))
	require.NoError(t, s.Insert("key2", "value2"))

	s.Remove("key1")
	assert.False(t, s.Exists("key1"))
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get("key1")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert("key1", "value1"))
	require.NoError(t, s.Insert("key2", "value2"))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
}

func TestEntriesIsACopy(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert("key1", "value1"))

	entries := s.Entries()
	entries["key1"] = "mutated"

	v, _ := s.Get("key1")
	assert.Equal(t, "value1", v)
}

func TestInheritImportsEnvironment(t *testing.T) {
	t.Setenv("FSH_TEST_VAR", "from-env")
	s := New()
	s.Inherit()
	v, ok := s.Get("FSH_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "from-env", v)
}

func TestInheritOverwritesExistingKeys(t *testing.T) {
	t.Setenv("FSH_TEST_VAR", "from-env")
	s := New()
	require.NoError(t, s.Insert("FSH_TEST_VAR", "preexisting"))
	s.Inherit()
	v, _ := s.Get("FSH_TEST_VAR")
	assert.Equal(t, "from-env", v)
}

func TestEnvironRendersKeyValuePairs(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert("A", "1"))
	environ := s.Environ()
	assert.Contains(t, environ, "A=1")
}
