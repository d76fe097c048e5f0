package emu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/cpu"
)

func romWith(prog ...byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], prog)
	return rom
}

func load(t *testing.T, cfg Config, prog ...byte) *Machine {
	t.Helper()
	m := New(cfg)
	if err := m.LoadCartridge(romWith(prog...), nil); err != nil {
		t.Fatalf("LoadCartridge: %v", err)
	}
	return m
}

func TestMachine_SerialAndHalt(t *testing.T) {
	m := New(Defaults())
	var out bytes.Buffer
	m.SetSerialWriter(&out)
	prog := []byte{
		0x3E, 'A', // LD A,'A'
		0xEA, 0x01, 0xFF, // LD (FF01),A
		0x3E, 0x81, // LD A,81
		0xE0, 0x02, // LDH (02),A
		0x76, // HALT
	}
	if err := m.LoadCartridge(romWith(prog...), nil); err != nil {
		t.Fatalf("LoadCartridge: %v", err)
	}
	st, err := m.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "A" {
		t.Fatalf("serial got %q want %q", out.String(), "A")
	}
	if st.Steps != 5 || st.Cycles != 48 {
		t.Fatalf("stats got steps=%d cycles=%d want 5/48", st.Steps, st.Cycles)
	}
	if !m.CPU().Halted() {
		t.Fatal("expected CPU halted")
	}
}

func TestMachine_RunLimits(t *testing.T) {
	cfg := Defaults()
	cfg.MaxSteps = 10
	m := load(t, cfg, 0x18, 0xFE) // JR -2
	st, err := m.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st.Steps != 10 || st.Cycles != 120 {
		t.Fatalf("stats got steps=%d cycles=%d want 10/120", st.Steps, st.Cycles)
	}
	if m.CPU().PC != 0x0100 {
		t.Fatalf("PC got %04X want 0100", m.CPU().PC)
	}

	n := 0
	st, err = m.Run(context.Background(), func() bool { n++; return n == 3 })
	if err != nil || st.Steps != 3 {
		t.Fatalf("until: steps=%d err=%v", st.Steps, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Run(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled run got %v", err)
	}
}

func TestMachine_UnknownOpcode(t *testing.T) {
	m := load(t, Defaults(), 0x00, 0xD3)
	if _, err := m.Step(); err != nil {
		t.Fatalf("NOP: %v", err)
	}
	_, err := m.Step()
	var oe *cpu.OpcodeError
	if !errors.As(err, &oe) {
		t.Fatalf("got %v want *cpu.OpcodeError", err)
	}
	if oe.Opcode != 0xD3 || oe.Previous != 0x00 {
		t.Fatalf("error got %+v", oe)
	}
	if m.CPU().PC != 0x0101 {
		t.Fatalf("PC moved to %04X", m.CPU().PC)
	}
}

func TestMachine_NoCartridge(t *testing.T) {
	m := New(Defaults())
	if _, err := m.Step(); !errors.Is(err, ErrNoCartridge) {
		t.Fatalf("Step got %v", err)
	}
	if _, err := m.SaveState(); !errors.Is(err, ErrNoCartridge) {
		t.Fatalf("SaveState got %v", err)
	}
	if err := m.LoadCartridge(nil, nil); err == nil {
		t.Fatal("empty ROM accepted")
	}
}

func TestMachine_BootROM(t *testing.T) {
	boot := make([]byte, 0x100)
	copy(boot, []byte{0x3E, 0x01, 0xE0, 0x50}) // LD A,1; LDH (50),A
	rom := romWith()

	m := New(Defaults())
	m.SetBootROM(boot)
	if !m.HasBootROM() {
		t.Fatal("boot ROM not kept")
	}
	if err := m.LoadCartridge(rom, boot); err != nil {
		t.Fatalf("LoadCartridge: %v", err)
	}
	if m.CPU().PC != 0x0000 || !m.Bus().BootMapped() {
		t.Fatalf("boot start: PC=%04X mapped=%v", m.CPU().PC, m.Bus().BootMapped())
	}
	for i := 0; i < 2; i++ {
		if _, err := m.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if m.Bus().BootMapped() {
		t.Fatal("write to FF50 must unmap the boot ROM")
	}
	if m.Bus().ReadByte(0x0000) != 0x00 {
		t.Fatal("cartridge not visible after unmapping")
	}
}

func TestMachine_Trace(t *testing.T) {
	var out bytes.Buffer
	cfg := Defaults()
	cfg.Trace = true
	cfg.TraceOut = &out
	m := load(t, cfg, 0x00, 0xCB, 0x7C)
	for i := 0; i < 2; i++ {
		if _, err := m.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("trace lines got %d:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "PC=0100 NOP") || !strings.Contains(lines[0], "AF=01B0") {
		t.Fatalf("first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "PC=0101 BIT 7,H") || !strings.Contains(lines[1], "cyc=8") {
		t.Fatalf("second line %q", lines[1])
	}
}

func TestMachine_Disassemble(t *testing.T) {
	m := load(t, Defaults(), 0xC3, 0x50, 0x01, 0xCB, 0x7C, 0xD3)
	cases := []struct {
		pc   uint16
		text string
		n    int
	}{
		{0x0100, "JP a16", 3},
		{0x0103, "BIT 7,H", 2},
		{0x0105, "DB D3", 1},
	}
	for _, tc := range cases {
		text, n := m.Disassemble(tc.pc)
		if text != tc.text || n != tc.n {
			t.Fatalf("%04X: got %q/%d want %q/%d", tc.pc, text, n, tc.text, tc.n)
		}
	}
}

func TestMachine_SaveLoadState(t *testing.T) {
	m := load(t, Defaults(),
		0x3E, 0x12, // LD A,12
		0xEA, 0x00, 0xC0, // LD (C000),A
		0x3C, // INC A
		0x3C, // INC A
	)
	for i := 0; i < 2; i++ {
		if _, err := m.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	data, err := m.SaveState()
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	want := m.CPU().Snapshot()

	for i := 0; i < 2; i++ {
		if _, err := m.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	m.Bus().WriteByte(0xC000, 0x99)

	if err := m.LoadState(data); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if got := m.CPU().Snapshot(); got != want {
		t.Fatalf("cpu state got %+v want %+v", got, want)
	}
	if v := m.Bus().ReadByte(0xC000); v != 0x12 {
		t.Fatalf("(C000) got %02x want 12", v)
	}
	if m.Steps() != 2 {
		t.Fatalf("steps got %d want 2", m.Steps())
	}
	if err := m.LoadState([]byte("garbage")); err == nil {
		t.Fatal("garbage state accepted")
	}
}

func TestMachine_ListingAndReset(t *testing.T) {
	m := load(t, Defaults(), 0x3E, 0x12, 0xCB, 0x7C, 0x00)
	got := m.Listing(0x0100, 3)
	want := []string{
		"0100  3E 12     LD A,d8",
		"0102  CB 7C     BIT 7,H",
		"0104  00        NOP",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d got %q want %q", i, got[i], want[i])
		}
	}

	if _, err := m.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if m.CPU().PC != 0x0100 || m.Steps() != 0 {
		t.Fatalf("after reset PC=%04X steps=%d", m.CPU().PC, m.Steps())
	}
	if err := New(Defaults()).Reset(); !errors.Is(err, ErrNoCartridge) {
		t.Fatalf("Reset without cartridge got %v", err)
	}
}
