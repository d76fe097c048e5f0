package isa

import (
	"errors"
	"fmt"
	"strings"
)

// FlagEffect describes how an instruction updates one flag.
type FlagEffect uint8

const (
	Unchanged FlagEffect = iota
	Reset                // always 0
	Set                  // always 1
	Computed             // derived from the result
	Custom               // instruction specific, no generic derivation
)

func (e FlagEffect) String() string {
	switch e {
	case Unchanged:
		return "-"
	case Reset:
		return "0"
	case Set:
		return "1"
	case Computed:
		return "computed"
	case Custom:
		return "*"
	}
	return fmt.Sprintf("FlagEffect(%d)", uint8(e))
}

// Flag indexes Descriptor.Flags.
const (
	FlagZ = iota
	FlagN
	FlagH
	FlagC
)

var flagLetters = [4]byte{'Z', 'N', 'H', 'C'}

// Descriptor is the static metadata of one opcode.
type Descriptor struct {
	Opcode      byte
	Prefixed    bool // CB space
	Mnemonic    string
	Length      uint8
	Cycles      uint8 // base cost, or the not-taken cost of a conditional
	CyclesTaken uint8 // zero unless the instruction branches
	Flags       [4]FlagEffect
}

// Branching reports whether the opcode has distinct taken/not-taken costs.
func (d Descriptor) Branching() bool { return d.CyclesTaken != 0 }

func (d Descriptor) String() string {
	if d.Prefixed {
		return fmt.Sprintf("CB %02X %s", d.Opcode, d.Mnemonic)
	}
	return fmt.Sprintf("%02X %s", d.Opcode, d.Mnemonic)
}

// ErrNotFound is returned when a mnemonic matches no descriptor.
var ErrNotFound = errors.New("instruction not found")

// entry is the textual form used by the tables.
type entry struct {
	op     byte
	mn     string
	length uint8
	cycles uint8
	taken  uint8
	flags  string // Z N H C, e.g. "Z0H-"
}

// parseFlags decodes a four character flag column. Each position accepts
// its own flag letter (computed), '0', '1', '-' or '*'.
func parseFlags(s string) ([4]FlagEffect, error) {
	var out [4]FlagEffect
	if len(s) != 4 {
		return out, fmt.Errorf("flag column %q: want 4 characters", s)
	}
	for i := 0; i < 4; i++ {
		switch ch := s[i]; ch {
		case '-':
			out[i] = Unchanged
		case '0':
			out[i] = Reset
		case '1':
			out[i] = Set
		case '*':
			out[i] = Custom
		case flagLetters[i]:
			out[i] = Computed
		default:
			return out, fmt.Errorf("flag column %q: bad code %q at %d", s, ch, i)
		}
	}
	return out, nil
}

// Normalize folds a mnemonic to the form used for lookup: lower case, one
// space after the keyword and none inside the operand list.
func Normalize(mnemonic string) string {
	fields := strings.Fields(strings.ToLower(mnemonic))
	if len(fields) == 0 {
		return ""
	}
	if len(fields) == 1 {
		return fields[0]
	}
	return fields[0] + " " + strings.Join(fields[1:], "")
}
