package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueTags(t *testing.T) {
	n := Number(42)
	assert.True(t, n.IsNumber())
	assert.False(t, n.IsString())

	s := String("hi")
	assert.True(t, s.IsString())
	assert.False(t, s.IsNumber())
}

func TestValueAsNumberTypeError(t *testing.T) {
	_, err := String("x").AsNumber()
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrTypeError, verr.Kind)
}

func TestValueAsStringTypeError(t *testing.T) {
	_, err := Number(1).AsString()
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrTypeError, verr.Kind)
}

func TestValueStringRendering(t *testing.T) {
	assert.Equal(t, "hello", String("hello").String())
	assert.Equal(t, "5", Number(5).String())
	assert.Equal(t, "1.5", Number(1.5).String())
}

func TestValueHashTruncationCollision(t *testing.T) {
	// Numbers whose integer truncation is equal must collide as context keys.
	assert.Equal(t, Number(3).Hash(), Number(3.9).Hash())
	assert.NotEqual(t, Number(3).Hash(), Number(4).Hash())
}

func TestValueHashStringDeterministic(t *testing.T) {
	assert.Equal(t, String("k").Hash(), String("k").Hash())
	assert.NotEqual(t, String("k").Hash(), String("j").Hash())
}
