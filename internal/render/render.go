// Package render prints fragments as Go source against the internal/cpu
// runtime: one switch case per opcode, with a default that reports the
// opcode error.
package render

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/assemble"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/ir"
)

const modulePath = "github.com/FabianRolfMatthiasNoll/sm83gen"

type printer struct {
	buf   bytes.Buffer
	q     string // qualifier for runtime identifiers, "" inside package cpu
	depth int
}

func (p *printer) line(format string, args ...any) {
	p.buf.WriteString(strings.Repeat("\t", p.depth))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

// Fragment prints the statements of one fragment, as they appear inside
// its switch case.
func Fragment(f *ir.Fragment) string {
	p := &printer{}
	p.nodes(f, f.Nodes)
	return p.buf.String()
}

// Tables prints the dispatch functions executePrimary and executeCB for
// package pkg, formatted with go/format. The output depends only on t.
func Tables(t *assemble.Tables, pkg string) ([]byte, error) {
	p := &printer{}
	if pkg != "cpu" {
		p.q = "cpu."
	}
	p.line("// Code generated by sm83gen; DO NOT EDIT.")
	p.line("")
	p.line("package %s", pkg)
	p.line("")
	p.line("import (")
	p.line("\t%q", modulePath+"/internal/alu")
	if p.q != "" {
		p.line("\t%q", modulePath+"/internal/cpu")
	}
	p.line("\t%q", modulePath+"/internal/ir")
	p.line(")")
	p.table("executePrimary", false, &t.Primary)
	p.table("executeCB", true, &t.CB)

	out, err := format.Source(p.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("render: format: %w", err)
	}
	return out, nil
}

func (p *printer) table(name string, prefixed bool, frags *[256]*ir.Fragment) {
	p.line("")
	p.line("func %s(c *%sCPU, op byte) (%sResult, error) {", name, p.q, p.q)
	p.depth++
	p.line("switch op {")
	for op, f := range frags {
		if f == nil {
			continue
		}
		p.line("case 0x%02X: // %s", op, f.Mnemonic)
		p.depth++
		p.nodes(f, f.Nodes)
		p.depth--
	}
	p.line("}")
	p.line("return %sResult{}, &%sOpcodeError{Opcode: op, Previous: c.PrevOpcode(), Prefixed: %v}", p.q, p.q, prefixed)
	p.depth--
	p.line("}")
}

func (p *printer) nodes(f *ir.Fragment, nodes []ir.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case ir.Read:
			p.line("t%d := alu.Of(%s)", n.Dst, p.load(n.Src))
		case ir.Write:
			p.store(n.Dst, arg(n.Src))
		case ir.Adjust:
			p.line("c.Set16(%s, c.Get16(%s)%+d)", reg(n.Reg), reg(n.Reg), n.Delta)
		case ir.Compute:
			p.line("t%d := alu.Apply(alu.Op%s, %s, %s, %d, c.ALUFlags())", n.Dst, n.Op, arg(n.A), arg(n.B), n.Bit)
		case ir.UpdateFlag:
			p.line("c.SetFlag(ir.Flag%s, %s)", n.Flag, flagExpr(n))
		case ir.AdvancePC:
			p.line("c.PC += %d", n.N)
		case ir.Jump:
			if n.Relative {
				p.line("c.PC += %s", arg(n.Target))
			} else {
				p.line("c.PC = %s", arg(n.Target))
			}
		case ir.Push:
			p.line("c.Push(%s)", arg(n.Src))
		case ir.Pop:
			p.line("t%d := alu.Of(c.Pop())", n.Dst)
		case ir.SetIME:
			p.line("c.IME = %v", n.On)
		case ir.Halt:
			p.line("c.Halt(%v)", n.Stop)
		case ir.SetPrefix:
			if n.On {
				p.line("c.State = %sStateCBPending", p.q)
			} else {
				p.line("c.State = %sStatePrimary", p.q)
			}
		case ir.Branch:
			not := "!"
			if n.Cond.Set {
				not = ""
			}
			p.line("if %sc.Flag(ir.Flag%s) {", not, n.Cond.Flag)
			p.depth++
			p.nodes(f, n.Then)
			p.depth--
			p.line("}")
			p.nodes(f, n.Else)
		case ir.Return:
			p.line("return %sResult{Value: %s, Cycles: %d}, nil", p.q, arg(n.Value), n.Cycles)
		case ir.Fail:
			p.line("return %sResult{}, &%sUnimplementedError{Opcode: 0x%02X, Prefixed: %v, Mnemonic: %q, Reason: %q}",
				p.q, p.q, f.Opcode, f.Prefixed, f.Mnemonic, n.Reason)
		}
	}
}

func reg(r ir.Reg) string { return "ir." + r.String() }

func arg(a ir.Arg) string {
	if a.IsConst {
		return fmt.Sprintf("0x%04X", a.Const)
	}
	return fmt.Sprintf("t%d.Value", a.Temp)
}

func flagExpr(n ir.UpdateFlag) string {
	switch n.Source {
	case ir.FlagSet:
		return "true"
	case ir.FlagFromZero:
		return fmt.Sprintf("t%d.Value == 0", n.Src)
	case ir.FlagFromHalf:
		return fmt.Sprintf("t%d.Half", n.Src)
	case ir.FlagFromCarry:
		return fmt.Sprintf("t%d.Carry", n.Src)
	}
	return "false"
}

func address(l ir.Loc) string {
	switch l.Kind {
	case ir.LocIndirect:
		return fmt.Sprintf("c.Get16(%s)", reg(l.Reg))
	case ir.LocHigh:
		return fmt.Sprintf("0xFF00|uint16(c.Get8(%s))", reg(l.Reg))
	case ir.LocAbs:
		return "c.Mem().ReadWord(c.PC)"
	case ir.LocHighImm:
		return "0xFF00|uint16(c.Mem().ReadByte(c.PC))"
	}
	return "c.PC"
}

func (p *printer) load(l ir.Loc) string {
	switch l.Kind {
	case ir.LocReg:
		if l.Reg.Wide() {
			return fmt.Sprintf("c.Get16(%s)", reg(l.Reg))
		}
		return fmt.Sprintf("uint16(c.Get8(%s))", reg(l.Reg))
	case ir.LocImmSigned:
		return "uint16(alu.Signed8(c.Mem().ReadByte(c.PC)))"
	}
	if l.Width == ir.Word {
		return fmt.Sprintf("c.Mem().ReadWord(%s)", address(l))
	}
	return fmt.Sprintf("uint16(c.Mem().ReadByte(%s))", address(l))
}

func (p *printer) store(l ir.Loc, v string) {
	switch {
	case l.Kind == ir.LocReg && l.Reg.Wide():
		p.line("c.Set16(%s, %s)", reg(l.Reg), v)
	case l.Kind == ir.LocReg:
		p.line("c.Set8(%s, byte(%s))", reg(l.Reg), v)
	case l.Width == ir.Word:
		p.line("c.Mem().WriteWord(%s, %s)", address(l), v)
	default:
		p.line("c.Mem().WriteByte(%s, byte(%s))", address(l), v)
	}
}
