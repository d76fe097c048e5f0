package cpu

import (
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/alu"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/ir"
)

// The register file is one buffer ordered A F B C D E H L, matching the
// ir.Reg numbering. A pair is two adjacent bytes, high register first, so
// AF, BC, DE and HL alias their halves. The low nibble of F always reads
// as zero.

// Get8 reads an 8-bit register.
func (c *CPU) Get8(r ir.Reg) byte { return c.regs[r] }

// Set8 writes an 8-bit register.
func (c *CPU) Set8(r ir.Reg, v byte) {
	if r == ir.F {
		v &= 0xF0
	}
	c.regs[r] = v
}

// Get16 reads a register pair, SP or PC.
func (c *CPU) Get16(r ir.Reg) uint16 {
	switch r {
	case ir.SP:
		return c.SP
	case ir.PC:
		return c.PC
	}
	i := pairIndex(r)
	return uint16(c.regs[i])<<8 | uint16(c.regs[i+1])
}

// Set16 writes a register pair, SP or PC.
func (c *CPU) Set16(r ir.Reg, v uint16) {
	switch r {
	case ir.SP:
		c.SP = v
		return
	case ir.PC:
		c.PC = v
		return
	}
	i := pairIndex(r)
	c.regs[i] = byte(v >> 8)
	c.regs[i+1] = byte(v)
	if r == ir.AF {
		c.regs[ir.F] &= 0xF0
	}
}

func pairIndex(r ir.Reg) int {
	if r < ir.AF || r > ir.HL {
		panic("cpu: not a register pair: " + r.String())
	}
	return int(r-ir.AF) * 2
}

// Flag reads one flag.
func (c *CPU) Flag(f ir.Flag) bool { return c.regs[ir.F]&byte(f) != 0 }

// SetFlag writes one flag.
func (c *CPU) SetFlag(f ir.Flag, on bool) {
	if on {
		c.regs[ir.F] |= byte(f)
	} else {
		c.regs[ir.F] &^= byte(f)
	}
}

// ALUFlags is the incoming flag state for carry consuming operations.
func (c *CPU) ALUFlags() alu.Flags {
	return alu.Flags{
		Z: c.Flag(ir.FlagZ),
		N: c.Flag(ir.FlagN),
		H: c.Flag(ir.FlagH),
		C: c.Flag(ir.FlagC),
	}
}

// Push stores v below SP, high byte at the higher address.
func (c *CPU) Push(v uint16) {
	c.SP -= 2
	c.mem.WriteWord(c.SP, v)
}

// Pop loads the word at SP.
func (c *CPU) Pop() uint16 {
	v := c.mem.ReadWord(c.SP)
	c.SP += 2
	return v
}
