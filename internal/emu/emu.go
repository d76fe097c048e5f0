package emu

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/bus"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/cpu"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/ir"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/isa"
)

// FrameCycles is one DMG video frame worth of machine cycles.
const FrameCycles = 70224

var ErrNoCartridge = errors.New("emu: no cartridge loaded")

// Machine wires a ROM image, the bus and the compiled CPU together.
type Machine struct {
	cfg Config
	// core components
	bus     *bus.Bus
	cpu     *cpu.CPU
	rom     []byte
	boot    []byte // boot image of the current load
	romPath string
	bootROM []byte
	serial  io.Writer
	trace   *log.Logger

	steps  int
	cycles int
}

// Stats summarizes a Run.
type Stats struct {
	Steps   int
	Cycles  int
	Elapsed time.Duration
}

func New(cfg Config) *Machine {
	if cfg.StartPC == 0 {
		cfg.StartPC = 0x0100
	}
	m := &Machine{cfg: cfg}
	if cfg.Trace {
		out := cfg.TraceOut
		if out == nil {
			out = os.Stderr
		}
		m.trace = log.New(out, "", 0)
	}
	return m
}

// LoadCartridge replaces the running program. With a boot ROM of at least
// 256 bytes execution starts at 0x0000 under the overlay; otherwise the
// registers take their post-boot values and PC the configured entry point.
func (m *Machine) LoadCartridge(rom []byte, boot []byte) error {
	if len(rom) == 0 {
		return errors.New("emu: empty ROM image")
	}
	b := bus.New(rom)
	if m.serial != nil {
		b.SetSerialWriter(m.serial)
	}
	c := cpu.New(b)
	if len(boot) >= 0x100 {
		b.SetBootROM(boot)
		c.SP = 0xFFFE
		c.SetPC(0x0000)
	} else {
		c.ResetNoBoot()
		c.SetPC(m.cfg.StartPC)
	}
	m.bus, m.cpu = b, c
	m.rom, m.boot = rom, boot
	m.steps, m.cycles = 0, 0
	return nil
}

// Reset reloads the current cartridge, discarding RAM and CPU state.
func (m *Machine) Reset() error {
	if m.rom == nil {
		return ErrNoCartridge
	}
	return m.LoadCartridge(m.rom, m.boot)
}

// LoadROMFromFile replaces the current program with a ROM from disk, preserving boot ROM setting.
func (m *Machine) LoadROMFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := m.LoadCartridge(data, m.bootROM); err != nil {
		return err
	}
	m.romPath = path
	return nil
}

// ROMPath returns the currently loaded ROM file path, if any.
func (m *Machine) ROMPath() string { return m.romPath }

// SetBootROM sets the boot ROM used by later loads. Short images are ignored.
func (m *Machine) SetBootROM(data []byte) {
	if len(data) >= 0x100 {
		m.bootROM = data
	} else {
		m.bootROM = nil
	}
}

func (m *Machine) HasBootROM() bool { return len(m.bootROM) >= 0x100 }

// SetSerialWriter connects an io.Writer to receive bytes written to the serial port (FF01/FF02).
// Useful for running test ROMs that report via serial.
func (m *Machine) SetSerialWriter(w io.Writer) {
	m.serial = w
	if m.bus != nil {
		m.bus.SetSerialWriter(w)
	}
}

// CPU and Bus expose the components for tools and tests; nil before a load.
func (m *Machine) CPU() *cpu.CPU { return m.cpu }
func (m *Machine) Bus() *bus.Bus { return m.bus }

func (m *Machine) Steps() int  { return m.steps }
func (m *Machine) Cycles() int { return m.cycles }

// Step executes one instruction.
func (m *Machine) Step() (cpu.Result, error) {
	if m.cpu == nil {
		return cpu.Result{}, ErrNoCartridge
	}
	pc := m.cpu.PC
	var text string
	if m.trace != nil {
		text, _ = m.Disassemble(pc)
	}
	res, err := m.cpu.Step()
	if err != nil {
		return res, fmt.Errorf("emu: step at %04X: %w", pc, err)
	}
	m.steps++
	m.cycles += res.Cycles
	if m.trace != nil {
		m.trace.Printf("PC=%04X %-14s cyc=%-2d %s", pc, text, res.Cycles, m.Registers())
	}
	return res, nil
}

// StepFrame advances the CPU for approximately one frame worth of cycles.
func (m *Machine) StepFrame() error {
	acc := 0
	for acc < FrameCycles {
		res, err := m.Step()
		if err != nil {
			return err
		}
		acc += res.Cycles
	}
	return nil
}

// Run steps until the context ends, MaxSteps is reached, the CPU halts or
// until reports true. With no interrupt sources a halted CPU never wakes,
// so a halt ends the run without an error.
func (m *Machine) Run(ctx context.Context, until func() bool) (Stats, error) {
	start := time.Now()
	first, firstCycles := m.steps, m.cycles
	stats := func() Stats {
		return Stats{Steps: m.steps - first, Cycles: m.cycles - firstCycles, Elapsed: time.Since(start)}
	}
	if m.cpu == nil {
		return stats(), ErrNoCartridge
	}
	for i := 0; m.cfg.MaxSteps == 0 || i < m.cfg.MaxSteps; i++ {
		if i&0x3FF == 0 {
			if err := ctx.Err(); err != nil {
				return stats(), err
			}
		}
		if _, err := m.Step(); err != nil {
			return stats(), err
		}
		if m.cpu.Halted() || (until != nil && until()) {
			break
		}
	}
	return stats(), nil
}

// Disassemble returns the mnemonic of the instruction at pc and its length.
// Unknown opcodes read as a DB directive of length one.
func (m *Machine) Disassemble(pc uint16) (string, int) {
	if m.bus == nil {
		return "", 0
	}
	op := m.bus.ReadByte(pc)
	if op == 0xCB {
		if d, ok := isa.Get(true, m.bus.ReadByte(pc+1)); ok {
			return d.Mnemonic, int(d.Length)
		}
	}
	d, ok := isa.Get(false, op)
	if !ok {
		return fmt.Sprintf("DB %02X", op), 1
	}
	return d.Mnemonic, int(d.Length)
}

// Listing disassembles n instructions starting at pc, one line each.
func (m *Machine) Listing(pc uint16, n int) []string {
	if m.bus == nil {
		return nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		text, size := m.Disassemble(pc)
		raw := make([]string, size)
		for j := range raw {
			raw[j] = fmt.Sprintf("%02X", m.bus.ReadByte(pc+uint16(j)))
		}
		out = append(out, fmt.Sprintf("%04X  %-9s %s", pc, strings.Join(raw, " "), text))
		pc += uint16(size)
	}
	return out
}

// Registers formats the register file for traces and the debugger.
func (m *Machine) Registers() string {
	if m.cpu == nil {
		return ""
	}
	c := m.cpu
	flags := []byte("----")
	for i, f := range ir.Flags {
		if c.Flag(f) {
			flags[i] = f.String()[0]
		}
	}
	return fmt.Sprintf("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X %s IME=%t",
		c.Get16(ir.AF), c.Get16(ir.BC), c.Get16(ir.DE), c.Get16(ir.HL), c.SP, flags, c.IME)
}

// --- Save/Load state ---
type machineState struct {
	Mem        []byte
	BootMapped bool
	CPU        cpu.Snapshot
	Steps      int
	Cycles     int
}

func (m *Machine) SaveState() ([]byte, error) {
	if m.bus == nil || m.cpu == nil {
		return nil, ErrNoCartridge
	}
	mem, boot := m.bus.Snapshot()
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(machineState{Mem: mem, BootMapped: boot, CPU: m.cpu.Snapshot(), Steps: m.steps, Cycles: m.cycles}); err != nil {
		return nil, fmt.Errorf("emu: encode state: %w", err)
	}
	return buf.Bytes(), nil
}

func (m *Machine) LoadState(data []byte) error {
	if m.bus == nil || m.cpu == nil {
		return ErrNoCartridge
	}
	var s machineState
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&s); err != nil {
		return fmt.Errorf("emu: decode state: %w", err)
	}
	if err := m.bus.Restore(s.Mem, s.BootMapped); err != nil {
		return err
	}
	m.cpu.Restore(s.CPU)
	m.steps, m.cycles = s.Steps, s.Cycles
	return nil
}

func (m *Machine) SaveStateToFile(path string) error {
	data, err := m.SaveState()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (m *Machine) LoadStateFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return m.LoadState(data)
}
