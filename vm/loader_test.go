package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderLabelOnNoOpInstructionRecordsPreviousIndex(t *testing.T) {
	// A label attached to an object that emits no instruction (here, a
	// "_"-prefixed placeholder) still records the index most recently emitted
	// before it - the open question from the spec, resolved by preserving the
	// original behavior verbatim. See DESIGN.md.
	m := New(RunConfig{})
	mustLoad(t, m, []RawInstruction{
		rawNum(1), // program index 0
		withLabel(rawCall("_ignored"), "here"),
	})
	assert.Equal(t, 0, m.labels["here"])
}

func TestLoaderLabelBeforeAnyInstructionRecordsNegativeOne(t *testing.T) {
	m := New(RunConfig{})
	mustLoad(t, m, []RawInstruction{
		withLabel(rawCall("_ignored"), "nothing-yet"),
	})
	assert.Equal(t, -1, m.labels["nothing-yet"])
}

func TestLoaderUnknownFunctionListsRegisteredForeign(t *testing.T) {
	m := New(RunConfig{})
	m.RegisterForeign("helper", func(*Machine) error { return nil })
	err := m.Load([]RawInstruction{rawCall("bogus")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "helper")
}

func TestLoaderForeignMustBeRegisteredBeforeLoad(t *testing.T) {
	m := New(RunConfig{})
	err := m.Load([]RawInstruction{rawCall("notYetRegistered")})
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrUnknownFunction, verr.Kind)
}

func TestLoaderBadJSONValue(t *testing.T) {
	m := New(RunConfig{})
	bad := RawInstruction{Type: typePushNumber, Value: []byte(`"not-a-number"`)}
	err := m.Load([]RawInstruction{bad})
	require.Error(t, err)
}
