package synth

import (
	"strconv"
	"strings"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/alu"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/ir"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/syntax"
)

// load covers LD and LDH: read the source, write the destination, then
// the post adjustments.
func load(b *builder) {
	st := b.st
	w, ok := widthOf(st.Src)
	if !ok {
		w, ok = widthOf(st.Dst)
	}
	if !ok {
		b.failf("cannot size %s", st)
		return
	}
	v := b.read(st.Src, w)
	b.write(st.Dst, w, v)
	b.tail()
}

func push(b *builder) {
	v := b.read(b.st.Dst, ir.Word)
	b.emit(ir.Push{Src: v})
	b.value = v
	b.tail()
}

// pop writes the popped word; POP AF takes its flags from it.
func pop(b *builder) {
	t := b.temp()
	b.emit(ir.Pop{Dst: t})
	b.write(b.st.Dst, ir.Word, ir.T(t))
	b.tail()
}

var arithOps = map[syntax.Instr]alu.Op{
	syntax.ADD: alu.OpAdd8,
	syntax.ADC: alu.OpAdc8,
	syntax.SUB: alu.OpSub8,
	syntax.SBC: alu.OpSbc8,
	syntax.AND: alu.OpAnd8,
	syntax.OR:  alu.OpOr8,
	syntax.XOR: alu.OpXor8,
	syntax.CP:  alu.OpSub8,
}

// arith is the 8-bit accumulator ALU. CP computes the difference for the
// flags only and leaves A alone.
func arith(b *builder) {
	st := b.st
	if st.Instr == syntax.ADD && st.Src != nil && !st.Dst.Indirect() {
		switch {
		case st.Dst.X.IsReg("hl"):
			add16(b)
			return
		case st.Dst.X.IsReg("sp"):
			addSP(b)
			return
		}
	}

	operand := st.Dst
	if st.Src != nil {
		if !st.Dst.X.IsReg("a") || st.Dst.Indirect() {
			b.failf("%s expects the accumulator as destination", st.Instr)
			return
		}
		operand = st.Src
	}
	a := b.read(accumulator, ir.Byte)
	v := b.read(operand, ir.Byte)
	r := b.compute(arithOps[st.Instr], a, v, 0)
	if st.Instr != syntax.CP {
		b.write(accumulator, ir.Byte, r)
	}
	b.tail()
}

func add16(b *builder) {
	hl := b.read(b.st.Dst, ir.Word)
	v := b.read(b.st.Src, ir.Word)
	r := b.compute(alu.OpAdd16, hl, v, 0)
	b.write(b.st.Dst, ir.Word, r)
	b.tail()
}

func addSP(b *builder) {
	sp := b.read(b.st.Dst, ir.Word)
	e := b.read(b.st.Src, ir.Word)
	r := b.compute(alu.OpAddSigned, sp, e, 0)
	b.write(b.st.Dst, ir.Word, r)
	b.tail()
}

// incdec updates its operand in place; (HL) is a byte access.
func incdec(b *builder) {
	e := b.st.Dst
	w, ok := widthOf(e)
	if !ok {
		w = ir.Byte
	}
	op := alu.OpInc8
	switch {
	case b.st.Instr == syntax.INC && w == ir.Word:
		op = alu.OpInc16
	case b.st.Instr == syntax.DEC && w == ir.Word:
		op = alu.OpDec16
	case b.st.Instr == syntax.DEC:
		op = alu.OpDec8
	}
	v := b.read(e, w)
	r := b.compute(op, v, ir.K(0), 0)
	b.write(e, w, r)
	b.tail()
}

var unaryOps = map[syntax.Instr]alu.Op{
	syntax.RLCA: alu.OpRlc,
	syntax.RLA:  alu.OpRl,
	syntax.RRCA: alu.OpRrc,
	syntax.RRA:  alu.OpRr,
	syntax.RLC:  alu.OpRlc,
	syntax.RL:   alu.OpRl,
	syntax.RRC:  alu.OpRrc,
	syntax.RR:   alu.OpRr,
	syntax.SLA:  alu.OpSla,
	syntax.SRA:  alu.OpSra,
	syntax.SRL:  alu.OpSrl,
	syntax.SWAP: alu.OpSwap,
	syntax.DAA:  alu.OpDaa,
	syntax.CPL:  alu.OpCpl,
}

// unary rewrites one byte operand, the accumulator when none is named.
func unary(b *builder) {
	e := b.st.Dst
	if e == nil {
		e = accumulator
	}
	v := b.read(e, ir.Byte)
	r := b.compute(unaryOps[b.st.Instr], v, ir.K(0), 0)
	b.write(e, ir.Byte, r)
	b.tail()
}

// carry handles CCF and SCF; SCF is fully described by its flag column.
func carry(b *builder) {
	if b.st.Instr == syntax.CCF {
		b.compute(alu.OpCcf, ir.K(0), ir.K(0), 0)
	}
	b.tail()
}

func bits(b *builder) {
	n, err := strconv.ParseUint(b.st.Dst.X.Text, 10, 3)
	if err != nil || b.st.Dst.X.Indirect {
		b.failf("bad bit index %s", b.st.Dst)
		return
	}
	v := b.read(b.st.Src, ir.Byte)
	switch b.st.Instr {
	case syntax.BIT:
		b.compute(alu.OpBit, v, ir.K(0), uint8(n))
	case syntax.SET:
		b.write(b.st.Src, ir.Byte, b.compute(alu.OpSet, v, ir.K(0), uint8(n)))
	case syntax.RES:
		b.write(b.st.Src, ir.Byte, b.compute(alu.OpRes, v, ir.K(0), uint8(n)))
	}
	b.tail()
}

// condition reads a flag test operand. "c" lexes as the register but
// names the carry condition here.
func (b *builder) condition(e *syntax.Expr) (ir.Cond, bool) {
	if e != nil && e.Kind == syntax.Nullary && !e.X.Indirect {
		switch e.X.Text {
		case "nz":
			return ir.Cond{Flag: ir.FlagZ}, true
		case "z":
			return ir.Cond{Flag: ir.FlagZ, Set: true}, true
		case "nc":
			return ir.Cond{Flag: ir.FlagC}, true
		case "c":
			return ir.Cond{Flag: ir.FlagC, Set: true}, true
		}
	}
	b.failf("bad condition %s", e)
	return ir.Cond{}, false
}

// conditional splits "JP NZ,a16" style statements into the condition and
// the target. ok is false when the statement is unconditional.
func (b *builder) conditional() (c ir.Cond, target *syntax.Expr, cond, ok bool) {
	if b.st.Src == nil {
		return ir.Cond{}, b.st.Dst, false, true
	}
	c, ok = b.condition(b.st.Dst)
	return c, b.st.Src, true, ok
}

func jp(b *builder) {
	c, target, cond, ok := b.conditional()
	if !ok {
		return
	}
	taken := func(cycles uint8) {
		t := b.read(target, ir.Word)
		b.emit(ir.Jump{Target: t})
		b.value = t
		b.ret(cycles)
	}
	if !cond {
		taken(b.d.Cycles)
		return
	}
	b.branch(c, func() { taken(b.d.CyclesTaken) }, b.skip)
}

// jr reads the displacement and moves PC past it on the taken path; the
// not-taken path only moves past it.
func jr(b *builder) {
	c, target, cond, ok := b.conditional()
	if !ok {
		return
	}
	taken := func(cycles uint8) {
		t := b.read(target, ir.Word)
		b.advance(b.operandBytes())
		b.emit(ir.Jump{Target: t, Relative: true})
		b.value = t
		b.ret(cycles)
	}
	if !cond {
		taken(b.d.Cycles)
		return
	}
	b.branch(c, func() { taken(b.d.CyclesTaken) }, b.skip)
}

// call pushes the address of the next instruction and jumps.
func call(b *builder) {
	c, target, cond, ok := b.conditional()
	if !ok {
		return
	}
	taken := func(cycles uint8) {
		t := b.read(target, ir.Word)
		b.advance(b.operandBytes())
		pc := b.read(programCtr, ir.Word)
		b.emit(ir.Push{Src: pc})
		b.emit(ir.Jump{Target: t})
		b.value = t
		b.ret(cycles)
	}
	if !cond {
		taken(b.d.Cycles)
		return
	}
	b.branch(c, func() { taken(b.d.CyclesTaken) }, b.skip)
}

// skip is the not-taken arm of a conditional: step over the operand.
func (b *builder) skip() {
	b.advance(b.operandBytes())
	b.ret(b.d.Cycles)
}

func ret(b *builder) {
	taken := func(cycles uint8) {
		t := b.temp()
		b.emit(ir.Pop{Dst: t})
		b.emit(ir.Jump{Target: ir.T(t)})
		if b.st.Instr == syntax.RETI {
			b.emit(ir.SetIME{On: true})
		}
		b.value = ir.T(t)
		b.ret(cycles)
	}
	if b.st.Dst == nil {
		taken(b.d.Cycles)
		return
	}
	c, ok := b.condition(b.st.Dst)
	if !ok {
		return
	}
	b.branch(c, func() { taken(b.d.CyclesTaken) }, b.skip)
}

// rst calls a fixed vector written as "38h".
func rst(b *builder) {
	text := strings.TrimSuffix(b.st.Dst.X.Text, "h")
	vec, err := strconv.ParseUint(text, 16, 16)
	if err != nil {
		b.failf("bad restart vector %s", b.st.Dst)
		return
	}
	pc := b.read(programCtr, ir.Word)
	b.emit(ir.Push{Src: pc})
	b.emit(ir.Jump{Target: ir.K(uint16(vec))})
	b.value = ir.K(uint16(vec))
	b.ret(b.d.Cycles)
}

func misc(b *builder) {
	switch b.st.Instr {
	case syntax.HALT:
		b.emit(ir.Halt{})
	case syntax.STOP:
		b.emit(ir.Halt{Stop: true})
	case syntax.DI:
		b.emit(ir.SetIME{On: false})
	case syntax.EI:
		b.emit(ir.SetIME{On: true})
	}
	b.tail()
}

// prefix enters the CB-pending state; the next byte is a CB opcode.
func prefix(b *builder) {
	b.emit(ir.SetPrefix{On: true})
	b.tail()
}
