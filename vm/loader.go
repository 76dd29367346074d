package vm

import (
	"encoding/json"
	"fmt"
)

// Load parses instructions into the machine's program, resolving opcode
// names and foreign-function bindings and recording label positions. It is a
// single pass: foreign functions must already be registered via
// RegisterForeign for their names to be visible here.
//
// A label attached to an instruction object that emits no instruction (an
// unrecognized type, or a "_"-prefixed placeholder function name) still
// records the index most recently emitted before it, exactly as the index
// recorded by any other label - this surprises users who expect a label to
// always refer to "the next instruction", but it is the defined behavior.
func (m *Machine) Load(instructions []RawInstruction) error {
	for _, raw := range instructions {
		switch raw.Type {
		case typePushNumber:
			f, err := decodeNumber(raw.Value)
			if err != nil {
				return err
			}
			m.program = append(m.program, Instr{kind: iPushNumber, num: f})

		case typePushString:
			s, err := decodeString(raw.Value)
			if err != nil {
				return err
			}
			m.program = append(m.program, Instr{kind: iPushString, str: s})

		case typeInvoke:
			if err := m.loadInvoke(raw.FunctionName); err != nil {
				return err
			}
		}

		if raw.Label != nil {
			m.labels[*raw.Label] = len(m.program) - 1
		}
	}
	return nil
}

func (m *Machine) loadInvoke(name string) error {
	switch name {
	case "{":
		m.program = append(m.program, Instr{kind: iOpenBrace})
		return nil
	case "}":
		m.program = append(m.program, Instr{kind: iCloseBrace})
		return nil
	}

	if op, ok := lookupOpcode(name); ok {
		m.program = append(m.program, Instr{kind: iBuiltin, op: op})
		return nil
	}

	if fn, ok := m.foreign.lookup(name); ok {
		m.program = append(m.program, Instr{kind: iForeign, foreign: fn})
		return nil
	}

	if len(name) > 0 && name[0] == '_' {
		// placeholder / comment instruction: emit nothing
		return nil
	}

	known := m.foreign.Names()
	if len(known) == 0 {
		return newError(ErrUnknownFunction, "function %q is not a builtin and no foreign functions are registered", name)
	}
	return newError(ErrUnknownFunction, "function %q is not a builtin; registered foreign functions: %v", name, known)
}

func decodeNumber(raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("push-number-instruction: invalid value: %w", err)
	}
	return f, nil
}

func decodeString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("push-string-instruction: invalid value: %w", err)
	}
	return s, nil
}
