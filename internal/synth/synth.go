// Package synth derives the operational semantics of an opcode from its
// parsed mnemonic and descriptor. Each instruction class has one routine
// that composes operand reads, an ALU operation, operand writes, post
// adjustments, the PC advance, the flag updates and the cycle return.
package synth

import (
	"fmt"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/alu"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/ir"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/isa"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/syntax"
)

type routine func(b *builder)

// Synthesizer maps instruction keywords to their synthesis routines. It is
// read-only after New and safe for concurrent use.
type Synthesizer struct {
	routines map[syntax.Instr]routine
}

// New returns a synthesizer covering the whole SM83 instruction set.
func New() *Synthesizer {
	s := &Synthesizer{routines: make(map[syntax.Instr]routine)}
	s.register(load, syntax.LD, syntax.LDH)
	s.register(push, syntax.PUSH)
	s.register(pop, syntax.POP)
	s.register(arith, syntax.ADD, syntax.ADC, syntax.SUB, syntax.SBC,
		syntax.AND, syntax.OR, syntax.XOR, syntax.CP)
	s.register(incdec, syntax.INC, syntax.DEC)
	s.register(unary, syntax.RLCA, syntax.RLA, syntax.RRCA, syntax.RRA,
		syntax.RLC, syntax.RL, syntax.RRC, syntax.RR,
		syntax.SLA, syntax.SRA, syntax.SRL, syntax.SWAP,
		syntax.DAA, syntax.CPL)
	s.register(carry, syntax.CCF, syntax.SCF)
	s.register(bits, syntax.BIT, syntax.SET, syntax.RES)
	s.register(jp, syntax.JP)
	s.register(jr, syntax.JR)
	s.register(call, syntax.CALL)
	s.register(ret, syntax.RET, syntax.RETI)
	s.register(rst, syntax.RST)
	s.register(misc, syntax.NOP, syntax.HALT, syntax.STOP, syntax.DI, syntax.EI)
	s.register(prefix, syntax.PREFIX)
	return s
}

func (s *Synthesizer) register(r routine, instrs ...syntax.Instr) {
	for _, i := range instrs {
		s.routines[i] = r
	}
}

// Synthesize builds the fragment of st. It never fails: semantics that
// cannot be derived turn the whole fragment into a single ir.Fail node that
// reports the problem when the opcode is executed.
func (s *Synthesizer) Synthesize(st *syntax.Statement) *ir.Fragment {
	d := st.Desc
	f := &ir.Fragment{
		Opcode:      d.Opcode,
		Prefixed:    d.Prefixed,
		Mnemonic:    d.Mnemonic,
		Cycles:      int(d.Cycles),
		CyclesTaken: int(d.CyclesTaken),
	}
	r, ok := s.routines[st.Instr]
	if !ok {
		f.Nodes = []ir.Node{ir.Fail{Reason: fmt.Sprintf("no synthesis routine for %s", st.Instr)}}
		return f
	}

	b := &builder{st: st, d: d, value: ir.K(0), result: noTemp}
	if d.Prefixed {
		b.emit(ir.SetPrefix{On: false})
	}
	r(b)
	if b.fail != "" {
		f.Nodes = []ir.Node{ir.Fail{Reason: b.fail}}
		return f
	}
	f.Nodes, f.Temps = b.nodes, b.temps
	return f
}

const noTemp ir.Temp = -1

type builder struct {
	st    *syntax.Statement
	d     isa.Descriptor
	nodes []ir.Node
	temps int

	pending      []ir.Node // post adjustments, flushed by tail
	result       ir.Temp   // ALU result the flags derive from
	value        ir.Arg    // last value touched, returned for diagnostics
	flagsWritten bool      // F was written directly, skip flag synthesis
	fail         string
}

func (b *builder) emit(n ir.Node) { b.nodes = append(b.nodes, n) }

func (b *builder) temp() ir.Temp {
	t := ir.Temp(b.temps)
	b.temps++
	return t
}

// failf records the first deficiency; later ones are dropped.
func (b *builder) failf(format string, args ...any) {
	if b.fail == "" {
		b.fail = fmt.Sprintf(format, args...)
	}
}

func (b *builder) compute(op alu.Op, a, x ir.Arg, bit uint8) ir.Arg {
	t := b.temp()
	b.emit(ir.Compute{Dst: t, Op: op, A: a, B: x, Bit: bit})
	b.result = t
	b.value = ir.T(t)
	return b.value
}

// operandBytes is how far PC moves past the operand bytes. CB fragments
// run with PC already past the prefix, so their second byte is the opcode.
func (b *builder) operandBytes() int {
	n := int(b.d.Length) - 1
	if b.d.Prefixed {
		n--
	}
	return n
}

func (b *builder) advance(n int) {
	if n > 0 {
		b.emit(ir.AdvancePC{N: n})
	}
}

func (b *builder) flush() {
	b.nodes = append(b.nodes, b.pending...)
	b.pending = nil
}

func (b *builder) ret(cycles uint8) {
	b.emit(ir.Return{Value: b.value, Cycles: int(cycles)})
}

// tail is the common epilogue of single path instructions.
func (b *builder) tail() {
	b.flush()
	b.advance(b.operandBytes())
	if !b.flagsWritten {
		b.flags()
	}
	b.ret(b.d.Cycles)
}

// flags translates the descriptor's flag effects into updates.
func (b *builder) flags() {
	for i, eff := range b.d.Flags {
		fl := ir.Flags[i]
		switch eff {
		case isa.Unchanged:
		case isa.Reset:
			b.emit(ir.UpdateFlag{Flag: fl, Source: ir.FlagReset})
		case isa.Set:
			b.emit(ir.UpdateFlag{Flag: fl, Source: ir.FlagSet})
		case isa.Computed:
			if b.result == noTemp {
				b.failf("%s flag is computed but %s produces no result", fl, b.st.Instr)
				continue
			}
			var src ir.FlagSource
			switch i {
			case isa.FlagZ:
				src = ir.FlagFromZero
			case isa.FlagH:
				src = ir.FlagFromHalf
			case isa.FlagC:
				src = ir.FlagFromCarry
			default:
				b.failf("no derivation for computed %s flag", fl)
				continue
			}
			b.emit(ir.UpdateFlag{Flag: fl, Source: src, Src: b.result})
		case isa.Custom:
			b.failf("%s flag effect is instruction specific", fl)
		default:
			b.failf("unknown flag effect %s", eff)
		}
	}
}

// branch emits a conditional with separately built arms. Temps defined in
// one arm are not visible in the other.
func (b *builder) branch(c ir.Cond, taken, notTaken func()) {
	saved, value := b.nodes, b.value
	b.nodes = nil
	taken()
	then := b.nodes
	b.nodes, b.value = nil, value
	notTaken()
	els := b.nodes
	b.nodes = append(saved, ir.Branch{Cond: c, Then: then, Else: els})
}
