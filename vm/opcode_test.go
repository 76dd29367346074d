package vm

import (
	"strings"
	"testing"
)

func TestOpcodeStringTable(t *testing.T) {
	for op := Opcode(0); op <= opcodeMax; op++ {
		if opcodeNames[op] == "" {
			t.Errorf("missing string representation of opcode %d", op)
		}
		if s := op.String(); strings.Contains(s, "illegal") {
			t.Errorf("invalid string representation of opcode %d", op)
		}
	}
}

func TestLookupOpcodeAliases(t *testing.T) {
	cases := map[string]Opcode{
		"+":    PLUS,
		"-":    MIN,
		"*":    MUL,
		"plus": PLUS,
		"min":  MIN,
		"mul":  MUL,
		"nop":  NOP,
	}
	for name, want := range cases {
		got, ok := lookupOpcode(name)
		if !ok {
			t.Fatalf("lookupOpcode(%q): not found", name)
		}
		if got != want {
			t.Errorf("lookupOpcode(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLookupOpcodeUnknown(t *testing.T) {
	if _, ok := lookupOpcode("definitelyNotAnOpcode"); ok {
		t.Fatal("expected unknown opcode to not be found")
	}
}
