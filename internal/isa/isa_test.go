package isa

import (
	"errors"
	"testing"
)

func TestTables_Counts(t *testing.T) {
	if got := len(All(false)); got != 245 {
		t.Fatalf("primary entries got %d want 245", got)
	}
	if got := len(All(true)); got != 256 {
		t.Fatalf("CB entries got %d want 256", got)
	}
	for _, op := range []byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		if _, ok := Get(false, op); ok {
			t.Fatalf("opcode %02X should have no descriptor", op)
		}
	}
}

func TestTables_OpcodeOrder(t *testing.T) {
	for _, prefixed := range []bool{false, true} {
		prev := -1
		for _, d := range All(prefixed) {
			if int(d.Opcode) <= prev {
				t.Fatalf("%s out of order after %02X", d, prev)
			}
			prev = int(d.Opcode)
			if d.Prefixed != prefixed {
				t.Fatalf("%s prefixed=%v", d, d.Prefixed)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	cases := []struct {
		mn       string
		op       byte
		prefixed bool
	}{
		{"ADD HL,BC", 0x09, false},
		{"add hl, bc", 0x09, false},
		{"  JR   NZ , r8 ", 0x20, false},
		{"LD (HL+),A", 0x22, false},
		{"LD HL,SP+r8", 0xF8, false},
		{"PREFIX CB", 0xCB, false},
		{"BIT 7,H", 0x7C, true},
		{"SWAP (HL)", 0x36, true},
		{"SET 0,A", 0xC7, true},
	}
	for _, tc := range cases {
		d, err := Lookup(tc.mn)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tc.mn, err)
		}
		if d.Opcode != tc.op || d.Prefixed != tc.prefixed {
			t.Fatalf("Lookup(%q) got %s want %02X prefixed=%v", tc.mn, d, tc.op, tc.prefixed)
		}
	}
	if _, err := Lookup("LD Q,Q"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Lookup of unknown mnemonic got %v want ErrNotFound", err)
	}
}

func TestDescriptor_Costs(t *testing.T) {
	d, _ := Lookup("JR NZ,r8")
	if !d.Branching() || d.Cycles != 8 || d.CyclesTaken != 12 {
		t.Fatalf("JR NZ costs got %d/%d", d.Cycles, d.CyclesTaken)
	}
	d, _ = Lookup("ADD HL,BC")
	if d.Branching() || d.Cycles != 8 {
		t.Fatalf("ADD HL,BC cycles got %d", d.Cycles)
	}
	want := [4]FlagEffect{Unchanged, Reset, Computed, Computed}
	if d.Flags != want {
		t.Fatalf("ADD HL,BC flags got %v want %v", d.Flags, want)
	}
	d, _ = Lookup("BIT 7,(HL)")
	if d.Cycles != 12 || d.Length != 2 {
		t.Fatalf("BIT 7,(HL) got len=%d cycles=%d", d.Length, d.Cycles)
	}
}

func TestParseFlags(t *testing.T) {
	got, err := parseFlags("Z1*-")
	if err != nil {
		t.Fatal(err)
	}
	want := [4]FlagEffect{Computed, Set, Custom, Unchanged}
	if got != want {
		t.Fatalf("parseFlags got %v want %v", got, want)
	}
	for _, bad := range []string{"ZNH", "NZHC", "Z0H?"} {
		if _, err := parseFlags(bad); err == nil {
			t.Fatalf("parseFlags(%q) should fail", bad)
		}
	}
}
