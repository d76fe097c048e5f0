package alu

import "testing"

func TestSigned8_RoundTrip(t *testing.T) {
	for raw := 0; raw < 256; raw++ {
		if got, want := Signed8(byte(raw)), int(int8(byte(raw))); got != want {
			t.Fatalf("Signed8(%02x) got %d want %d", raw, got, want)
		}
	}
	for n := -128; n <= 127; n++ {
		if got := Signed8(Unsigned8(n)); got != n {
			t.Fatalf("Signed8(Unsigned8(%d)) got %d", n, got)
		}
	}
	if Signed8(0xFE) != -2 {
		t.Fatal("0xFE should decode to -2")
	}
}

func TestAdd8_Sub8_Flags(t *testing.T) {
	cases := []struct {
		name        string
		r           Result
		value       uint16
		half, carry bool
	}{
		{"add 0F+01", Add8(0x0F, 0x01), 0x10, true, false},
		{"add FF+01", Add8(0xFF, 0x01), 0x00, true, true},
		{"adc 0E+01+c", Adc8(0x0E, 0x01, true), 0x10, true, false},
		{"sub 10-01", Sub8(0x10, 0x01), 0x0F, true, false},
		{"sub 00-01", Sub8(0x00, 0x01), 0xFF, true, true},
		{"sbc 10-0F-c", Sbc8(0x10, 0x0F, true), 0x00, true, false},
		{"sbc 00-00-c", Sbc8(0x00, 0x00, true), 0xFF, true, true},
		{"and", And8(0xF0, 0x3C), 0x30, true, false},
		{"xor self", Xor8(0x5A, 0x5A), 0x00, false, false},
	}
	for _, tc := range cases {
		if tc.r.Value != tc.value || tc.r.Half != tc.half || tc.r.Carry != tc.carry {
			t.Fatalf("%s got %+v want value=%02x h=%v c=%v", tc.name, tc.r, tc.value, tc.half, tc.carry)
		}
	}
}

func TestIncDec8_Half(t *testing.T) {
	if r := Inc8(0x0F); r.Value != 0x10 || !r.Half {
		t.Fatalf("Inc8(0F) got %+v", r)
	}
	if r := Inc8(0xFF); r.Value != 0x00 || !r.Zero() {
		t.Fatalf("Inc8(FF) got %+v", r)
	}
	if r := Dec8(0x10); r.Value != 0x0F || !r.Half {
		t.Fatalf("Dec8(10) got %+v", r)
	}
	if r := Dec8(0x01); !r.Zero() || r.Half {
		t.Fatalf("Dec8(01) got %+v", r)
	}
}

func TestAdd16_AddSigned(t *testing.T) {
	if r := Add16(0x0100, 0x0001); r.Value != 0x0101 || r.Half || r.Carry {
		t.Fatalf("Add16 got %+v", r)
	}
	if r := Add16(0x0FFF, 0x0001); !r.Half || r.Carry {
		t.Fatalf("Add16 half got %+v", r)
	}
	if r := Add16(0xFFFF, 0x0001); r.Value != 0 || !r.Carry {
		t.Fatalf("Add16 carry got %+v", r)
	}
	// SP=FFF8, e=+8 -> low byte F8+08 carries
	if r := AddSigned(0xFFF8, 0x0008); r.Value != 0x0000 || !r.Half || !r.Carry {
		t.Fatalf("AddSigned got %+v", r)
	}
	// negative displacement: FFFE + (-2)
	if r := AddSigned(0xFFFE, uint16(0xFFFE)); r.Value != 0xFFFC || !r.Carry {
		t.Fatalf("AddSigned negative got %+v", r)
	}
}

func TestRotates(t *testing.T) {
	cases := []struct {
		name  string
		r     Result
		value uint16
		carry bool
	}{
		{"rlc 85", Rlc(0x85), 0x0B, true},
		{"rrc 01", Rrc(0x01), 0x80, true},
		{"rl 80 c=0", Rl(0x80, false), 0x00, true},
		{"rl 11 c=1", Rl(0x11, true), 0x23, false},
		{"rr 01 c=0", Rr(0x01, false), 0x00, true},
		{"rr 8A c=1", Rr(0x8A, true), 0xC5, false},
		{"sla FF", Sla(0xFF), 0xFE, true},
		{"sra 8A", Sra(0x8A), 0xC5, false},
		{"srl 01", Srl(0x01), 0x00, true},
		{"swap F1", Swap(0xF1), 0x1F, false},
	}
	for _, tc := range cases {
		if tc.r.Value != tc.value || tc.r.Carry != tc.carry {
			t.Fatalf("%s got %+v want %02x c=%v", tc.name, tc.r, tc.value, tc.carry)
		}
	}
}

func TestBitOps(t *testing.T) {
	if r := Bit(0x80, 7); r.Zero() {
		t.Fatal("BIT 7 of 0x80 should be set")
	}
	if r := Bit(0x00, 7); !r.Zero() {
		t.Fatal("BIT 7 of 0x00 should be clear")
	}
	if r := Set(0x00, 3); r.Value != 0x08 {
		t.Fatalf("SET 3 got %02x", r.Value)
	}
	if r := Res(0xFF, 0); r.Value != 0xFE {
		t.Fatalf("RES 0 got %02x", r.Value)
	}
}

func TestDaa(t *testing.T) {
	// 0x45 + 0x38 = 0x7D -> 0x83
	add := Add8(0x45, 0x38)
	if r := Daa(byte(add.Value), false, add.Half, add.Carry); r.Value != 0x83 || r.Carry {
		t.Fatalf("DAA after add got %+v", r)
	}
	// 0x83 - 0x38 = 0x4B (H set) -> 0x45
	sub := Sub8(0x83, 0x38)
	if r := Daa(byte(sub.Value), true, sub.Half, sub.Carry); r.Value != 0x45 || r.Carry {
		t.Fatalf("DAA after sub got %+v", r)
	}
	// 0x99 + 0x01 = 0x9A -> 0x00 with carry
	add = Add8(0x99, 0x01)
	if r := Daa(byte(add.Value), false, add.Half, add.Carry); r.Value != 0x00 || !r.Carry {
		t.Fatalf("DAA overflow got %+v", r)
	}
}

func TestApply_MatchesDirectCalls(t *testing.T) {
	in := Flags{C: true}
	if Apply(OpAdc8, 0x0E, 0x01, 0, in) != Adc8(0x0E, 0x01, true) {
		t.Fatal("Apply(OpAdc8) mismatch")
	}
	if Apply(OpBit, 0x80, 0, 7, in) != Bit(0x80, 7) {
		t.Fatal("Apply(OpBit) mismatch")
	}
	if r := Apply(OpCcf, 0, 0, 0, in); r.Carry {
		t.Fatal("CCF of set carry should clear it")
	}
	if OpAddSigned.String() != "AddSigned" || OpAdd8.Arity() != 2 || OpInc8.Arity() != 1 || OpCcf.Arity() != 0 {
		t.Fatal("op metadata mismatch")
	}
}
