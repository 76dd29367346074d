package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/tzovm/internal/program"
	"github.com/mna/tzovm/vm"
)

// Run loads each file given on the command-line as a JSON program and
// executes it to completion, printing the resulting stack to stdout.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var failed bool
	for _, path := range args {
		if err := runFile(stdio, c.MaxSteps, path); err != nil {
			printError(stdio, fmt.Errorf("%s: %w", path, err))
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("one or more programs failed")
	}
	return nil
}

func runFile(stdio mainer.Stdio, maxSteps int, path string) error {
	instrs, err := program.ReadFile(path)
	if err != nil {
		return err
	}

	m := vm.New(vm.RunConfig{
		MaxSteps: maxSteps,
		Stdout:   stdio.Stdout,
		Stderr:   stdio.Stderr,
	})
	if err := m.Load(instrs); err != nil {
		return err
	}
	if err := m.Run(); err != nil {
		return err
	}

	for _, v := range m.Stack() {
		fmt.Fprintln(stdio.Stdout, v.String())
	}
	return nil
}
