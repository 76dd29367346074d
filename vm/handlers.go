package vm

import (
	"fmt"
	"math/rand"
)

// handlerFunc implements one builtin opcode against a Machine.
type handlerFunc func(m *Machine) error

var builtinHandlers = map[Opcode]handlerFunc{
	NOP:        handleNop,
	POP:        handlePop,
	PLUS:       handlePlus,
	MIN:        handleMin,
	MUL:        handleMul,
	CONCAT:     handleConcat,
	RCONCAT:    handleRconcat,
	RANDINT:    handleRandInt,
	CHARCODE:   handleCharCode,
	PPC:        handlePpc,
	EQ:         handleEq,
	NOT:        handleNot,
	OR:         handleOr,
	AND:        handleAnd,
	JGZ:        handleJgz,
	JZ:         handleJz,
	GT:         handleGt,
	LT:         handleLt,
	DUP:        handleDup,
	PAUSE:      handlePause,
	EXIT:       handleExit,
	GOTO:       handleGoto,
	GETCONTEXT: handleGetContext,
	HASCONTEXT: handleHasContext,
	SETCONTEXT: handleSetContext,
	DELCONTEXT: handleDelContext,
	STACKSIZE:  handleStackSize,
	STDOUT:     handleStdout,
	// OPENBRACE and CLOSEBRACE are dispatched directly in Machine.step, since
	// OPENBRACE needs to scan the program rather than just mutate the stack.
}

func handleNop(m *Machine) error { return nil }

func handlePop(m *Machine) error {
	_, err := m.Pop()
	return err
}

// binaryArith implements the shared pop-a-pop-b-push-op(a,b) shape of plus,
// min, and mul: if either operand is not a number, the result is silently
// dropped (the stack shrinks by 2) rather than failing the run.
func binaryArith(m *Machine, op func(a, b float64) float64) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	b, err := m.Pop()
	if err != nil {
		return err
	}
	af, aerr := a.AsNumber()
	bf, berr := b.AsNumber()
	if aerr != nil || berr != nil {
		return nil
	}
	m.Push(Number(op(af, bf)))
	return nil
}

func handlePlus(m *Machine) error { return binaryArith(m, func(a, b float64) float64 { return a + b }) }
func handleMin(m *Machine) error  { return binaryArith(m, func(a, b float64) float64 { return a - b }) }
func handleMul(m *Machine) error  { return binaryArith(m, func(a, b float64) float64 { return a * b }) }

func handleConcat(m *Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	b, err := m.Pop()
	if err != nil {
		return err
	}
	m.Push(String(a.String() + b.String()))
	return nil
}

func handleRconcat(m *Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	b, err := m.Pop()
	if err != nil {
		return err
	}
	m.Push(String(b.String() + a.String()))
	return nil
}

func handleRandInt(m *Machine) error {
	n, err := m.Pop()
	if err != nil {
		return err
	}
	nf, err := n.AsNumber()
	if err != nil {
		return err
	}
	bound := int64(nf)
	if bound <= 0 {
		m.Push(Number(0))
		return nil
	}
	m.Push(Number(float64(rand.Int63n(bound))))
	return nil
}

func handleCharCode(m *Machine) error {
	n, err := m.Pop()
	if err != nil {
		return err
	}
	nf, err := n.AsNumber()
	if err != nil {
		return err
	}
	b := byte(int64(nf))
	m.Push(String(string(rune(b))))
	return nil
}

func handlePpc(m *Machine) error {
	m.Push(Number(float64(m.pc)))
	return nil
}

func handleEq(m *Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	b, err := m.Pop()
	if err != nil {
		return err
	}
	equal := false
	switch {
	case a.IsNumber() && b.IsNumber():
		af, _ := a.AsNumber()
		bf, _ := b.AsNumber()
		equal = af == bf
	case a.IsString() && b.IsString():
		as, _ := a.AsString()
		bs, _ := b.AsString()
		equal = as == bs
	}
	m.Push(boolValue(equal))
	return nil
}

func boolValue(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}

func handleNot(m *Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	av, err := truncInt32(a)
	if err != nil {
		return err
	}
	m.Push(boolValue(av == 0))
	return nil
}

func handleOr(m *Machine) error {
	a, b, err := popTwoBools(m)
	if err != nil {
		return err
	}
	m.Push(boolValue(a != 0 || b != 0))
	return nil
}

func handleAnd(m *Machine) error {
	a, b, err := popTwoBools(m)
	if err != nil {
		return err
	}
	m.Push(boolValue(a != 0 && b != 0))
	return nil
}

func popTwoBools(m *Machine) (int32, int32, error) {
	a, err := m.Pop()
	if err != nil {
		return 0, 0, err
	}
	b, err := m.Pop()
	if err != nil {
		return 0, 0, err
	}
	av, err := truncInt32(a)
	if err != nil {
		return 0, 0, err
	}
	bv, err := truncInt32(b)
	if err != nil {
		return 0, 0, err
	}
	return av, bv, nil
}

func handleJgz(m *Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	av, err := truncInt32(a)
	if err != nil {
		return err
	}
	if av > 0 {
		m.pc++
	}
	return nil
}

func handleJz(m *Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	av, err := truncInt32(a)
	if err != nil {
		return err
	}
	if av == 0 {
		m.pc++
	}
	return nil
}

func handleGt(m *Machine) error { return compareInts(m, func(a, b int32) bool { return a > b }) }
func handleLt(m *Machine) error { return compareInts(m, func(a, b int32) bool { return a < b }) }

func compareInts(m *Machine, cmp func(a, b int32) bool) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	b, err := m.Pop()
	if err != nil {
		return err
	}
	av, err := truncInt32(a)
	if err != nil {
		return err
	}
	bv, err := truncInt32(b)
	if err != nil {
		return err
	}
	m.Push(boolValue(cmp(av, bv)))
	return nil
}

func handleDup(m *Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	m.Push(a)
	m.Push(a)
	return nil
}

func handlePause(m *Machine) error {
	m.Pause()
	return nil
}

func handleExit(m *Machine) error {
	m.Exit()
	return nil
}

func handleGoto(m *Machine) error {
	a, err := m.Pop()
	if err != nil {
		return err
	}
	if a.IsNumber() {
		f, _ := a.AsNumber()
		m.pc = int(f) - 1
		return nil
	}
	name, _ := a.AsString()
	target, ok := m.labels[name]
	if !ok {
		return newError(ErrLabelNotFound, "no label named %q", name)
	}
	m.pc = target - 1
	return nil
}

func handleGetContext(m *Machine) error {
	key, err := m.Pop()
	if err != nil {
		return err
	}
	v, err := m.GetContext(key)
	if err != nil {
		return err
	}
	m.Push(v)
	return nil
}

func handleHasContext(m *Machine) error {
	key, err := m.Pop()
	if err != nil {
		return err
	}
	m.Push(boolValue(m.HasContext(key)))
	return nil
}

func handleSetContext(m *Machine) error {
	key, err := m.Pop()
	if err != nil {
		return err
	}
	val, err := m.Pop()
	if err != nil {
		return err
	}
	m.SetContext(key, val)
	return nil
}

func handleDelContext(m *Machine) error {
	key, err := m.Pop()
	if err != nil {
		return err
	}
	m.DelContext(key)
	return nil
}

func handleStackSize(m *Machine) error {
	m.Push(Number(float64(len(m.stack))))
	return nil
}

func handleStdout(m *Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	fmt.Fprint(m.cfg.Stdout, v.String())
	return nil
}

// execOpenBrace scans forward from pc+1, tracking nesting depth, until it
// finds the matching CloseBrace, then sets pc to that index (the Run loop's
// post-increment then steps past it). A program with no matching close fails
// with UnbalancedBrace.
func (m *Machine) execOpenBrace() error {
	depth := 1
	for i := m.pc + 1; i < len(m.program); i++ {
		switch m.program[i].kind {
		case iOpenBrace:
			depth++
		case iCloseBrace:
			depth--
			if depth == 0 {
				m.pc = i
				return nil
			}
		}
	}
	return newError(ErrUnbalancedBrace, "no matching close brace for open brace at pc %d", m.pc)
}
