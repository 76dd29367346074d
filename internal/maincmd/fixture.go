package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/tzovm/internal/fixture"
)

// Fixture loads each file given on the command-line as a fixture, runs it,
// and compares the resulting stack against the fixture's expected stack. It
// fails if any fixture mismatches or errors.
func (c *Cmd) Fixture(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var failed bool
	for _, path := range args {
		if err := runFixture(stdio, path); err != nil {
			printError(stdio, fmt.Errorf("%s: %w", path, err))
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("one or more fixtures failed")
	}
	return nil
}

func runFixture(stdio mainer.Stdio, path string) error {
	f, err := fixture.ReadFile(path)
	if err != nil {
		return err
	}

	m, err := fixture.Run(f)
	if err != nil {
		return err
	}

	patch, err := fixture.Compare(f, m)
	if err != nil {
		return err
	}
	if patch != "" {
		return fmt.Errorf("stack mismatch:\n%s", patch)
	}

	fmt.Fprintf(stdio.Stdout, "%s: ok\n", path)
	return nil
}
