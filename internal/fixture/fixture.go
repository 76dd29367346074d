// Package fixture implements the test harness named as an external
// collaborator by the core specification: it reads a JSON fixture file
// describing an input program, an optional initial context, and an optional
// expected final stack, drives a vm.Machine through it, and reports whether
// the resulting stack matches the expectation.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kylelemons/godebug/diff"
	"github.com/mna/tzovm/vm"
)

// Fixture is the decoded shape of a fixture file, per the core
// specification's external-interfaces section.
type Fixture struct {
	InputProgram   []vm.RawInstruction        `json:"input_program"`
	InitialContext map[string]json.RawMessage `json:"initial_context"`
	Expected       struct {
		Stack []json.RawMessage `json:"stack"`
	} `json:"expected"`
}

// ReadFile reads and decodes the fixture file at path.
func ReadFile(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return Decode(b)
}

// Decode parses a fixture file's JSON content.
func Decode(b []byte) (*Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// Run loads f.InputProgram onto a fresh Machine, seeds f.InitialContext, and
// executes it to completion. For each initial_context entry, the value and
// then the key are pushed onto the stack and setContext's pop order (key,
// then value) is replayed, exactly as the core specification's external
// interfaces section describes.
func Run(f *Fixture) (*vm.Machine, error) {
	m := vm.New(vm.RunConfig{})
	if err := m.Load(f.InputProgram); err != nil {
		return nil, fmt.Errorf("load input_program: %w", err)
	}

	for key, raw := range f.InitialContext {
		val, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("initial_context[%s]: %w", key, err)
		}
		m.Push(val)
		m.Push(vm.String(key))
		a, err := m.Pop() // key
		if err != nil {
			return nil, err
		}
		b, err := m.Pop() // value
		if err != nil {
			return nil, err
		}
		m.SetContext(a, b)
	}

	if err := m.Run(); err != nil {
		return m, fmt.Errorf("run: %w", err)
	}
	return m, nil
}

func decodeValue(raw json.RawMessage) (vm.Value, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return vm.Number(f), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return vm.String(s), nil
	}
	return vm.Value{}, fmt.Errorf("value is neither a number nor a string: %s", raw)
}

// Compare checks the machine's final stack against the fixture's expected
// stack (when present) and returns a unified diff describing any mismatch, or
// an empty string if it matches. Only the prefix of the stack named by
// expected.stack is checked, matching the original harness's element-by-
// element comparison.
func Compare(f *Fixture, m *vm.Machine) (string, error) {
	if len(f.Expected.Stack) == 0 {
		return "", nil
	}

	got := m.Stack()
	wantLines := make([]string, len(f.Expected.Stack))
	gotLines := make([]string, len(f.Expected.Stack))
	for i, raw := range f.Expected.Stack {
		want, err := decodeValue(raw)
		if err != nil {
			return "", fmt.Errorf("expected.stack[%d]: %w", i, err)
		}
		wantLines[i] = describe(want)
		if i < len(got) {
			gotLines[i] = describe(got[i])
		} else {
			gotLines[i] = "<missing>"
		}
	}

	want := joinLines(wantLines)
	gotStr := joinLines(gotLines)
	return diff.Diff(want, gotStr), nil
}

func describe(v vm.Value) string {
	if v.IsString() {
		return fmt.Sprintf("string(%q)", v.String())
	}
	return fmt.Sprintf("number(%s)", v.String())
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
