// Package ir is the fragment representation produced by the synthesizer:
// a straight-line sequence of read, compute, write, flag, PC and return
// nodes with at most one level of conditional branching. Backends either
// execute it (internal/cpu) or print it (internal/render).
package ir

import (
	"fmt"
	"strings"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/alu"
)

// Reg names an 8-bit register, a register pair, SP or PC.
type Reg uint8

const (
	A Reg = iota
	F
	B
	C
	D
	E
	H
	L
	AF
	BC
	DE
	HL
	SP
	PC
)

var regNames = [...]string{"A", "F", "B", "C", "D", "E", "H", "L", "AF", "BC", "DE", "HL", "SP", "PC"}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return fmt.Sprintf("Reg(%d)", uint8(r))
}

// Wide reports whether r is a 16-bit register.
func (r Reg) Wide() bool { return r >= AF }

// RegByName maps a register lexeme to its Reg.
func RegByName(name string) (Reg, bool) {
	for i, n := range regNames {
		if strings.EqualFold(n, name) {
			return Reg(i), true
		}
	}
	return 0, false
}

// Flag is one bit of the F register.
type Flag uint8

const (
	FlagZ Flag = 1 << 7
	FlagN Flag = 1 << 6
	FlagH Flag = 1 << 5
	FlagC Flag = 1 << 4
)

func (f Flag) String() string {
	switch f {
	case FlagZ:
		return "Z"
	case FlagN:
		return "N"
	case FlagH:
		return "H"
	case FlagC:
		return "C"
	}
	return fmt.Sprintf("Flag(%#02x)", uint8(f))
}

// Flags in descriptor order Z, N, H, C.
var Flags = [4]Flag{FlagZ, FlagN, FlagH, FlagC}

// Width of a memory access or value.
type Width uint8

const (
	Byte Width = 1
	Word Width = 2
)

// LocKind is an addressing mode.
type LocKind uint8

const (
	LocReg       LocKind = iota // register direct
	LocIndirect                 // memory at a register pair
	LocHigh                     // memory at 0xFF00 + 8-bit register
	LocImm                      // immediate at PC
	LocImmSigned                // signed 8-bit immediate at PC, sign extended
	LocAbs                      // memory at the 16-bit immediate address
	LocHighImm                  // memory at 0xFF00 + 8-bit immediate
)

// Loc is where a value is read from or written to.
type Loc struct {
	Kind  LocKind
	Reg   Reg   // LocReg, LocIndirect, LocHigh
	Width Width // size of the value moved
}

func (l Loc) String() string {
	switch l.Kind {
	case LocReg:
		return l.Reg.String()
	case LocIndirect:
		return fmt.Sprintf("(%s)%s", l.Reg, l.Width.suffix())
	case LocHigh:
		return fmt.Sprintf("(FF00+%s)", l.Reg)
	case LocImm:
		return "imm" + l.Width.suffix()
	case LocImmSigned:
		return "simm8"
	case LocAbs:
		return "(imm16)" + l.Width.suffix()
	case LocHighImm:
		return "(FF00+imm8)"
	}
	return fmt.Sprintf("Loc(%d)", l.Kind)
}

func (w Width) suffix() string {
	if w == Word {
		return "16"
	}
	return "8"
}

// Temp indexes a fragment-local value slot.
type Temp int

// Arg is either a temp or a constant.
type Arg struct {
	Temp    Temp
	Const   uint16
	IsConst bool
}

// T references a temp.
func T(t Temp) Arg { return Arg{Temp: t} }

// K is a constant argument.
func K(v uint16) Arg { return Arg{Const: v, IsConst: true} }

func (a Arg) String() string {
	if a.IsConst {
		return fmt.Sprintf("%#04x", a.Const)
	}
	return fmt.Sprintf("t%d", a.Temp)
}

// Cond is a flag test: the branch is taken when the flag equals Set.
type Cond struct {
	Flag Flag
	Set  bool
}

func (c Cond) String() string {
	if c.Set {
		return c.Flag.String()
	}
	return "N" + c.Flag.String()
}

// FlagSource says how a flag update obtains its value.
type FlagSource uint8

const (
	FlagReset FlagSource = iota
	FlagSet
	FlagFromZero  // Src.Value == 0
	FlagFromHalf  // Src.Half
	FlagFromCarry // Src.Carry
)

// Node is one step of a fragment.
type Node interface{ node() }

type (
	// Read loads Src into Dst.
	Read struct {
		Dst Temp
		Src Loc
	}
	// Write stores Src to Dst.
	Write struct {
		Dst Loc
		Src Arg
	}
	// Adjust adds Delta to a register pair after the access it decorates.
	Adjust struct {
		Reg   Reg
		Delta int
	}
	// Compute applies an ALU operation.
	Compute struct {
		Dst  Temp
		Op   alu.Op
		A, B Arg
		Bit  uint8
	}
	// UpdateFlag sets one flag.
	UpdateFlag struct {
		Flag   Flag
		Source FlagSource
		Src    Temp
	}
	// AdvancePC adds N to PC.
	AdvancePC struct{ N int }
	// Jump sets PC to Target, or adds it when Relative.
	Jump struct {
		Target   Arg
		Relative bool
	}
	// Push writes a word below SP.
	Push struct{ Src Arg }
	// Pop reads the word at SP into Dst.
	Pop struct{ Dst Temp }
	// SetIME changes the interrupt master enable.
	SetIME struct{ On bool }
	// Halt stops instruction fetch; Stop marks the STOP variant.
	Halt struct{ Stop bool }
	// SetPrefix enters or leaves the CB-pending state.
	SetPrefix struct{ On bool }
	// Branch runs Then when Cond holds and Else otherwise. Both end in Return.
	Branch struct {
		Cond Cond
		Then []Node
		Else []Node
	}
	// Return ends the fragment with the touched value and cycle cost.
	Return struct {
		Value  Arg
		Cycles int
	}
	// Fail reports semantics that could not be synthesized. It runs in place
	// of the instruction.
	Fail struct{ Reason string }
)

func (Read) node()       {}
func (Write) node()      {}
func (Adjust) node()     {}
func (Compute) node()    {}
func (UpdateFlag) node() {}
func (AdvancePC) node()  {}
func (Jump) node()       {}
func (Push) node()       {}
func (Pop) node()        {}
func (SetIME) node()     {}
func (Halt) node()       {}
func (SetPrefix) node()  {}
func (Branch) node()     {}
func (Return) node()     {}
func (Fail) node()       {}
