package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "Pipe", Pipe.String())
	assert.Equal(t, "Type(99)", Type(99).String())
}

func TestTokenStringIncludesPayload(t *testing.T) {
	assert.Equal(t, `String("hi")`, StringTok("hi").String())
	assert.Equal(t, "Identifier(X)", IdentifierTok("X").String())
	assert.Equal(t, "Boolean(true)", BooleanTok(true).String())
	assert.Equal(t, "Number(7)", NumberTok(7).String())
	assert.Equal(t, "FileDescriptor(2)", FileDescriptorTok(2).String())
	assert.Equal(t, "Pipe", PipeTok().String())
}

func TestConstructorsSetType(t *testing.T) {
	assert.Equal(t, EOF, Eof().Type)
	assert.Equal(t, Semicolon, SemicolonTok().Type)
	assert.Equal(t, Ampersand, AmpersandTok().Type)
	assert.Equal(t, Equal, EqualTok().Type)
	assert.Equal(t, LessThan, LessThanTok().Type)
	assert.Equal(t, GreaterThan, GreaterThanTok().Type)
	assert.Equal(t, Null, NullTok().Type)
}
