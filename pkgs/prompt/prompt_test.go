package prompt

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodePassesThroughLiteralText(t *testing.T) {
	assert.Equal(t, "# ", Decode("# "))
}

func TestDecodeExpandsShellNameAndVersion(t *testing.T) {
	got := Decode(`\s \v`)
	assert.Equal(t, Name+" "+Version, got)
}

func TestDecodeExpandsUserName(t *testing.T) {
	t.Setenv("USER", "alice")
	assert.Equal(t, "alice", Decode(`\u`))
}

func TestDecodeExpandsHostName(t *testing.T) {
	t.Setenv("HOSTNAME", "box")
	assert.Equal(t, "box", Decode(`\h`))
}

func TestDecodeExpandsCurrentDirectoryBaseName(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	assert.NoError(t, err)
	defer os.Chdir(cwd)

	assert.NoError(t, os.Chdir(dir))
	got := Decode(`\w`)
	assert.NotContains(t, got, string(os.PathSeparator))
}

func TestDecodeExpandsCurrentDirectoryFull(t *testing.T) {
	cwd, err := os.Getwd()
	assert.NoError(t, err)
	assert.Equal(t, cwd, Decode(`\W`))
}

func TestDecodeLeavesUnknownSequencesAlone(t *testing.T) {
	assert.Equal(t, `\q`, Decode(`\q`))
}
