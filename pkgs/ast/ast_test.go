package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpressionKindsAreDistinct(t *testing.T) {
	exprs := []Expression{
		Null{},
		String{Value: "x"},
		Number{Value: 1},
		Boolean{Value: true},
		Identifier{Name: "X"},
		FileDescriptor{FD: 1},
	}
	seen := map[ExprKind]bool{}
	for _, e := range exprs {
		assert.False(t, seen[e.Kind()], "duplicate kind for %v", e)
		seen[e.Kind()] = true
	}
}

func TestExpressionStringForms(t *testing.T) {
	assert.Equal(t, "null", Null{}.String())
	assert.Equal(t, "hi", String{Value: "hi"}.String())
	assert.Equal(t, "42", Number{Value: 42}.String())
	assert.Equal(t, "true", Boolean{Value: true}.String())
	assert.Equal(t, "$X", Identifier{Name: "X"}.String())
	assert.Equal(t, "@3", FileDescriptor{FD: 3}.String())
}

func TestRedirectOperatorString(t *testing.T) {
	assert.Equal(t, ">", Gt.String())
	assert.Equal(t, "<", Lt.String())
}
