package js_ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("foo"))
	assert.True(t, IsIdentifier("_C"))
	assert.True(t, IsIdentifier("$"))
	assert.True(t, IsIdentifier("été"))
	assert.True(t, IsIdentifier("a1"))

	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("1a"))
	assert.False(t, IsIdentifier("a b"))
	assert.False(t, IsIdentifier("a-b"))
}

func TestForceValidIdentifier(t *testing.T) {
	assert.Equal(t, "foo", ForceValidIdentifier("foo"))
	assert.Equal(t, "a_b", ForceValidIdentifier("a b"))
	assert.Equal(t, "_0", ForceValidIdentifier("10"))

	assert.True(t, IsIdentifier(ForceValidIdentifier("my fancy class!")))
}
