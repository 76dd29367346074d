package vm

import "encoding/json"

func rawNum(f float64) RawInstruction {
	b, _ := json.Marshal(f)
	return RawInstruction{Type: typePushNumber, Value: b}
}

func rawStr(s string) RawInstruction {
	b, _ := json.Marshal(s)
	return RawInstruction{Type: typePushString, Value: b}
}

func rawCall(name string) RawInstruction {
	return RawInstruction{Type: typeInvoke, FunctionName: name}
}

func withLabel(r RawInstruction, label string) RawInstruction {
	r.Label = &label
	return r
}

func mustLoad(t interface{ Fatalf(string, ...any) }, m *Machine, instrs []RawInstruction) {
	if err := m.Load(instrs); err != nil {
		t.Fatalf("Load: %v", err)
	}
}
