package cpu

import "fmt"

// OpcodeError reports a byte with no instruction under the current prefix
// state. The CPU is left as it was before the fetch.
type OpcodeError struct {
	Opcode   byte
	Previous byte // last opcode dispatched before the failure
	Prefixed bool
}

func (e *OpcodeError) Error() string {
	space := "primary"
	if e.Prefixed {
		space = "CB"
	}
	return fmt.Sprintf("cpu: %s opcode %02X not implemented (previous %02X)", space, e.Opcode, e.Previous)
}

// UnimplementedError is raised by an opcode whose semantics could not be
// synthesized, at the moment it executes.
type UnimplementedError struct {
	Opcode   byte
	Prefixed bool
	Mnemonic string
	Reason   string
}

func (e *UnimplementedError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: CB %02X %s: unimplemented: %s", e.Opcode, e.Mnemonic, e.Reason)
	}
	return fmt.Sprintf("cpu: %02X %s: unimplemented: %s", e.Opcode, e.Mnemonic, e.Reason)
}
