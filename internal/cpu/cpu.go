package cpu

import "github.com/FabianRolfMatthiasNoll/sm83gen/internal/ir"

// Memory is the byte addressable device the CPU runs against. Words are
// little-endian. Every access succeeds.
type Memory interface {
	ReadByte(addr uint16) byte
	ReadWord(addr uint16) uint16
	WriteByte(addr uint16, v byte)
	WriteWord(addr uint16, v uint16)
}

// State is the prefix state of the decoder.
type State uint8

const (
	StatePrimary State = iota
	StateCBPending
)

func (s State) String() string {
	if s == StateCBPending {
		return "cb-pending"
	}
	return "primary"
}

// Result is what a fragment reports: the value it touched, for
// diagnostics, and its cycle cost.
type Result struct {
	Value  uint16
	Cycles int
}

// CPU is an SM83 core driven by compiled opcode fragments.
type CPU struct {
	regs [8]byte // A F B C D E H L

	SP uint16
	PC uint16

	IME   bool
	State State

	halted  bool
	stopped bool
	prevOp  byte

	mem      Memory
	dispatch *Dispatch
}

// New creates a CPU running the built-in instruction set.
func New(mem Memory) *CPU {
	return NewWithDispatch(mem, Default())
}

// NewWithDispatch creates a CPU with its own dispatch tables.
func NewWithDispatch(mem Memory, d *Dispatch) *CPU {
	return &CPU{mem: mem, dispatch: d, SP: 0xFFFE}
}

// SetPC allows tests or a boot stub to set the program counter.
func (c *CPU) SetPC(pc uint16) { c.PC = pc }

// Mem exposes the memory device for tools and generated code.
func (c *CPU) Mem() Memory { return c.mem }

// PrevOpcode is the last opcode dispatched.
func (c *CPU) PrevOpcode() byte { return c.prevOp }

// Halted reports whether HALT or STOP suspended instruction fetch.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the suspension came from STOP.
func (c *CPU) Stopped() bool { return c.stopped }

// Halt suspends fetch. Generated code calls it for HALT and STOP.
func (c *CPU) Halt(stop bool) {
	c.halted = true
	c.stopped = stop
}

// Wake resumes fetch after HALT or STOP.
func (c *CPU) Wake() {
	c.halted = false
	c.stopped = false
}

// ResetNoBoot sets registers to typical DMG post-boot state.
// Useful when running without a boot ROM.
func (c *CPU) ResetNoBoot() {
	c.Set16(ir.AF, 0x01B0)
	c.Set16(ir.BC, 0x0013)
	c.Set16(ir.DE, 0x00D8)
	c.Set16(ir.HL, 0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.IME = false
	c.State = StatePrimary
	c.Wake()
}

// Execute runs a primary opcode. The caller has fetched op and PC points
// one past it.
func (c *CPU) Execute(op byte) (Result, error) {
	return c.exec(false, op)
}

// ExecuteCB runs a CB opcode; PC points one past it.
func (c *CPU) ExecuteCB(op byte) (Result, error) {
	return c.exec(true, op)
}

func (c *CPU) exec(prefixed bool, op byte) (Result, error) {
	h := c.dispatch.Handler(prefixed, op)
	if h == nil {
		return Result{}, &OpcodeError{Opcode: op, Previous: c.prevOp, Prefixed: prefixed}
	}
	c.prevOp = op
	return h(c)
}

// Step fetches and executes one instruction. A CB prefix is resolved in
// the same step and the CB opcode's cost, which covers the prefix byte, is
// returned. An opcode without a handler is reported before any state
// changes.
func (c *CPU) Step() (Result, error) {
	if c.halted {
		return Result{Cycles: 4}, nil
	}
	res, err := c.fetchExecute()
	if err != nil || c.State != StateCBPending {
		return res, err
	}
	return c.fetchExecute()
}

func (c *CPU) fetchExecute() (Result, error) {
	prefixed := c.State == StateCBPending
	op := c.mem.ReadByte(c.PC)
	if c.dispatch.Handler(prefixed, op) == nil {
		return Result{}, &OpcodeError{Opcode: op, Previous: c.prevOp, Prefixed: prefixed}
	}
	c.PC++
	return c.exec(prefixed, op)
}

// Dispatch returns the tables the CPU runs.
func (c *CPU) Dispatch() *Dispatch { return c.dispatch }

// Snapshot is the architectural state of a CPU, as kept in save states.
type Snapshot struct {
	Regs    [8]byte
	SP, PC  uint16
	IME     bool
	State   State
	Halted  bool
	Stopped bool
	Prev    byte
}

func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		Regs: c.regs, SP: c.SP, PC: c.PC, IME: c.IME, State: c.State,
		Halted: c.halted, Stopped: c.stopped, Prev: c.prevOp,
	}
}

// Restore loads s. The low nibble of F is masked as on any other write.
func (c *CPU) Restore(s Snapshot) {
	c.regs = s.Regs
	c.regs[ir.F] &= 0xF0
	c.SP, c.PC = s.SP, s.PC
	c.IME, c.State = s.IME, s.State
	c.halted, c.stopped, c.prevOp = s.Halted, s.Stopped, s.Prev
}
