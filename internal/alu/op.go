package alu

import "fmt"

// Op names an operation so that it can be carried in a fragment and
// applied later.
type Op uint8

const (
	OpAdd8 Op = iota
	OpAdc8
	OpSub8
	OpSbc8
	OpAnd8
	OpOr8
	OpXor8
	OpInc8
	OpDec8
	OpInc16
	OpDec16
	OpAdd16
	OpAddSigned
	OpRlc
	OpRrc
	OpRl
	OpRr
	OpSla
	OpSra
	OpSrl
	OpSwap
	OpBit
	OpSet
	OpRes
	OpDaa
	OpCpl
	OpCcf
)

var opNames = [...]string{
	OpAdd8: "Add8", OpAdc8: "Adc8", OpSub8: "Sub8", OpSbc8: "Sbc8",
	OpAnd8: "And8", OpOr8: "Or8", OpXor8: "Xor8",
	OpInc8: "Inc8", OpDec8: "Dec8", OpInc16: "Inc16", OpDec16: "Dec16",
	OpAdd16: "Add16", OpAddSigned: "AddSigned",
	OpRlc: "Rlc", OpRrc: "Rrc", OpRl: "Rl", OpRr: "Rr",
	OpSla: "Sla", OpSra: "Sra", OpSrl: "Srl", OpSwap: "Swap",
	OpBit: "Bit", OpSet: "Set", OpRes: "Res",
	OpDaa: "Daa", OpCpl: "Cpl", OpCcf: "Ccf",
}

// String returns the name of the function implementing op.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Arity is the number of value operands op consumes.
func (op Op) Arity() int {
	switch op {
	case OpAdd8, OpAdc8, OpSub8, OpSbc8, OpAnd8, OpOr8, OpXor8, OpAdd16, OpAddSigned:
		return 2
	case OpCcf:
		return 0
	}
	return 1
}

// Flags are the incoming flag values some operations consume.
type Flags struct {
	Z, N, H, C bool
}

// Apply runs op. a and b are the operands (b unused for unary ops), n is the
// bit index for OpBit/OpSet/OpRes.
func Apply(op Op, a, b uint16, n uint8, in Flags) Result {
	switch op {
	case OpAdd8:
		return Add8(byte(a), byte(b))
	case OpAdc8:
		return Adc8(byte(a), byte(b), in.C)
	case OpSub8:
		return Sub8(byte(a), byte(b))
	case OpSbc8:
		return Sbc8(byte(a), byte(b), in.C)
	case OpAnd8:
		return And8(byte(a), byte(b))
	case OpOr8:
		return Or8(byte(a), byte(b))
	case OpXor8:
		return Xor8(byte(a), byte(b))
	case OpInc8:
		return Inc8(byte(a))
	case OpDec8:
		return Dec8(byte(a))
	case OpInc16:
		return Inc16(a)
	case OpDec16:
		return Dec16(a)
	case OpAdd16:
		return Add16(a, b)
	case OpAddSigned:
		return AddSigned(a, b)
	case OpRlc:
		return Rlc(byte(a))
	case OpRrc:
		return Rrc(byte(a))
	case OpRl:
		return Rl(byte(a), in.C)
	case OpRr:
		return Rr(byte(a), in.C)
	case OpSla:
		return Sla(byte(a))
	case OpSra:
		return Sra(byte(a))
	case OpSrl:
		return Srl(byte(a))
	case OpSwap:
		return Swap(byte(a))
	case OpBit:
		return Bit(byte(a), n)
	case OpSet:
		return Set(byte(a), n)
	case OpRes:
		return Res(byte(a), n)
	case OpDaa:
		return Daa(byte(a), in.N, in.H, in.C)
	case OpCpl:
		return Cpl(byte(a))
	case OpCcf:
		return Ccf(in.C)
	}
	panic(fmt.Sprintf("alu: unknown op %d", uint8(op)))
}
