package cpu

import (
	"fmt"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/alu"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/ir"
)

// run interprets fragment nodes. PC points one past the opcode on entry.
func (c *CPU) run(f *ir.Fragment, nodes []ir.Node, t []alu.Result) (Result, error) {
	for _, n := range nodes {
		switch n := n.(type) {
		case ir.Read:
			t[n.Dst] = alu.Of(c.load(n.Src))
		case ir.Write:
			c.store(n.Dst, arg(t, n.Src))
		case ir.Adjust:
			c.Set16(n.Reg, c.Get16(n.Reg)+uint16(n.Delta))
		case ir.Compute:
			t[n.Dst] = alu.Apply(n.Op, arg(t, n.A), arg(t, n.B), n.Bit, c.ALUFlags())
		case ir.UpdateFlag:
			c.SetFlag(n.Flag, flagValue(n, t))
		case ir.AdvancePC:
			c.PC += uint16(n.N)
		case ir.Jump:
			if n.Relative {
				c.PC += arg(t, n.Target)
			} else {
				c.PC = arg(t, n.Target)
			}
		case ir.Push:
			c.Push(arg(t, n.Src))
		case ir.Pop:
			t[n.Dst] = alu.Of(c.Pop())
		case ir.SetIME:
			c.IME = n.On
		case ir.Halt:
			c.Halt(n.Stop)
		case ir.SetPrefix:
			if n.On {
				c.State = StateCBPending
			} else {
				c.State = StatePrimary
			}
		case ir.Branch:
			if c.Flag(n.Cond.Flag) == n.Cond.Set {
				return c.run(f, n.Then, t)
			}
			return c.run(f, n.Else, t)
		case ir.Return:
			return Result{Value: arg(t, n.Value), Cycles: n.Cycles}, nil
		case ir.Fail:
			return Result{}, &UnimplementedError{Opcode: f.Opcode, Prefixed: f.Prefixed, Mnemonic: f.Mnemonic, Reason: n.Reason}
		default:
			return Result{}, fmt.Errorf("cpu: %s: unknown node %T", f.Mnemonic, n)
		}
	}
	return Result{}, fmt.Errorf("cpu: %s: fragment ended without return", f.Mnemonic)
}

func arg(t []alu.Result, a ir.Arg) uint16 {
	if a.IsConst {
		return a.Const
	}
	return t[a.Temp].Value
}

func flagValue(n ir.UpdateFlag, t []alu.Result) bool {
	switch n.Source {
	case ir.FlagSet:
		return true
	case ir.FlagFromZero:
		return t[n.Src].Value == 0
	case ir.FlagFromHalf:
		return t[n.Src].Half
	case ir.FlagFromCarry:
		return t[n.Src].Carry
	}
	return false
}

// address resolves the memory address of a non-register location.
func (c *CPU) address(l ir.Loc) uint16 {
	switch l.Kind {
	case ir.LocIndirect:
		return c.Get16(l.Reg)
	case ir.LocHigh:
		return 0xFF00 | uint16(c.Get8(l.Reg))
	case ir.LocAbs:
		return c.mem.ReadWord(c.PC)
	case ir.LocHighImm:
		return 0xFF00 | uint16(c.mem.ReadByte(c.PC))
	}
	return c.PC
}

func (c *CPU) load(l ir.Loc) uint16 {
	switch l.Kind {
	case ir.LocReg:
		if l.Reg.Wide() {
			return c.Get16(l.Reg)
		}
		return uint16(c.Get8(l.Reg))
	case ir.LocImmSigned:
		return uint16(alu.Signed8(c.mem.ReadByte(c.PC)))
	}
	addr := c.address(l)
	if l.Width == ir.Word {
		return c.mem.ReadWord(addr)
	}
	return uint16(c.mem.ReadByte(addr))
}

func (c *CPU) store(l ir.Loc, v uint16) {
	if l.Kind == ir.LocReg {
		if l.Reg.Wide() {
			c.Set16(l.Reg, v)
		} else {
			c.Set8(l.Reg, byte(v))
		}
		return
	}
	addr := c.address(l)
	if l.Width == ir.Word {
		c.mem.WriteWord(addr, v)
		return
	}
	c.mem.WriteByte(addr, byte(v))
}
