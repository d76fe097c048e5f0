package synth

import (
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/alu"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/ir"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/syntax"
)

var (
	accumulator = &syntax.Expr{X: syntax.Classify("a", false)}
	programCtr  = &syntax.Expr{X: syntax.Classify("pc", false)}
)

// widthOf sizes an expression on its own. Memory operands have no size of
// their own and take the width of the other side of the instruction.
func widthOf(e *syntax.Expr) (ir.Width, bool) {
	switch {
	case e == nil:
		return 0, false
	case e.Kind == syntax.Binary:
		return ir.Word, true
	case e.X.Indirect:
		return 0, false
	case e.X.Width == syntax.W16:
		return ir.Word, true
	}
	return ir.Byte, true
}

// locate picks the addressing mode of e for an access of width w.
func (b *builder) locate(e *syntax.Expr, w ir.Width) (ir.Loc, bool) {
	x := e.X
	if x.Class == syntax.Register {
		r, ok := ir.RegByName(x.Text)
		if !ok {
			b.failf("unknown register %s", x.Text)
			return ir.Loc{}, false
		}
		switch {
		case !x.Indirect:
			rw := ir.Byte
			if r.Wide() {
				rw = ir.Word
			}
			return ir.Loc{Kind: ir.LocReg, Reg: r, Width: rw}, true
		case r.Wide():
			return ir.Loc{Kind: ir.LocIndirect, Reg: r, Width: w}, true
		default:
			return ir.Loc{Kind: ir.LocHigh, Reg: r, Width: ir.Byte}, true
		}
	}

	switch x.Text {
	case "d8":
		if !x.Indirect {
			return ir.Loc{Kind: ir.LocImm, Width: ir.Byte}, true
		}
	case "a8":
		if x.Indirect {
			return ir.Loc{Kind: ir.LocHighImm, Width: ir.Byte}, true
		}
		return ir.Loc{Kind: ir.LocImm, Width: ir.Byte}, true
	case "d16":
		if !x.Indirect {
			return ir.Loc{Kind: ir.LocImm, Width: ir.Word}, true
		}
	case "a16":
		if x.Indirect {
			return ir.Loc{Kind: ir.LocAbs, Width: w}, true
		}
		return ir.Loc{Kind: ir.LocImm, Width: ir.Word}, true
	case "r8":
		if !x.Indirect {
			return ir.Loc{Kind: ir.LocImmSigned, Width: ir.Word}, true
		}
	}
	b.failf("no addressing mode for operand %s", e)
	return ir.Loc{}, false
}

// read emits the fetch of e and returns the temp holding it.
func (b *builder) read(e *syntax.Expr, w ir.Width) ir.Arg {
	if e == nil {
		b.failf("%s is missing an operand", b.st.Instr)
		return ir.K(0)
	}
	if e.Kind == syntax.Binary {
		return b.readOffset(e)
	}
	loc, ok := b.locate(e, w)
	if !ok {
		return ir.K(0)
	}
	t := b.temp()
	b.emit(ir.Read{Dst: t, Src: loc})
	b.adjustAfter(e)
	return ir.T(t)
}

// readOffset handles SP+r8: the displacement is added with the flags of
// the low byte addition.
func (b *builder) readOffset(e *syntax.Expr) ir.Arg {
	if e.Sign < 0 || e.X.Indirect {
		b.failf("unsupported offset expression %s", e)
		return ir.K(0)
	}
	base := b.read(&syntax.Expr{X: e.X}, ir.Word)
	disp := b.read(&syntax.Expr{X: e.Y}, ir.Word)
	return b.compute(alu.OpAddSigned, base, disp, 0)
}

// write emits the store of v to e.
func (b *builder) write(e *syntax.Expr, w ir.Width, v ir.Arg) {
	if e == nil {
		b.failf("%s is missing a destination", b.st.Instr)
		return
	}
	if e.Kind == syntax.Binary {
		b.failf("cannot write to %s", e)
		return
	}
	loc, ok := b.locate(e, w)
	if !ok {
		return
	}
	if loc.Kind == ir.LocImm || loc.Kind == ir.LocImmSigned {
		b.failf("cannot write to immediate %s", e)
		return
	}
	b.emit(ir.Write{Dst: loc, Src: v})
	b.adjustAfter(e)
	b.value = v
	if loc.Kind == ir.LocReg && (loc.Reg == ir.F || loc.Reg == ir.AF) {
		b.flagsWritten = true
	}
}

// adjustAfter queues the post increment or decrement of a Unary operand.
// It runs after the access it decorates, once the instruction's own reads
// and writes are done.
func (b *builder) adjustAfter(e *syntax.Expr) {
	if e.Kind != syntax.Unary {
		return
	}
	r, ok := ir.RegByName(e.X.Text)
	if !ok || !r.Wide() {
		b.failf("post adjustment needs a register pair, got %s", e)
		return
	}
	b.pending = append(b.pending, ir.Adjust{Reg: r, Delta: e.Sign})
}
