// Package program reads a VM program from a JSON file on disk. It is a thin
// shell around the standard library's JSON decoder: the module's retrieved
// reference corpus never delegates JSON decoding to a third-party library, so
// encoding/json is used directly here (see DESIGN.md).
package program

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mna/tzovm/vm"
)

// ReadFile reads and decodes the JSON instruction array at path into a slice
// of vm.RawInstruction, ready to be passed to (*vm.Machine).Load.
func ReadFile(path string) ([]vm.RawInstruction, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program %s: %w", path, err)
	}
	return Decode(b)
}

// Decode parses a JSON instruction array into a slice of vm.RawInstruction.
func Decode(b []byte) ([]vm.RawInstruction, error) {
	var instrs []vm.RawInstruction
	if err := json.Unmarshal(b, &instrs); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	return instrs, nil
}
