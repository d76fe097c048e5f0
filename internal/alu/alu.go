// Package alu implements the SM83 arithmetic with its half-carry and carry
// derivations. Every operation returns a Result; the zero flag is derived
// by the caller from Result.Value.
package alu

// Result is the outcome of one operation.
type Result struct {
	Value uint16
	Half  bool
	Carry bool
}

// Of wraps a plain value.
func Of(v uint16) Result { return Result{Value: v} }

// Zero reports whether the result value is zero.
func (r Result) Zero() bool { return r.Value == 0 }

// Signed8 reinterprets raw as a two's complement displacement.
func Signed8(raw byte) int { return int(0x80^raw) - 0x80 }

// Unsigned8 is the inverse of Signed8 for n in -128..127.
func Unsigned8(n int) byte { return byte(n) }

func b2u(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func Add8(a, b byte) Result {
	r := uint16(a) + uint16(b)
	return Result{
		Value: r & 0xFF,
		Half:  (a&0x0F)+(b&0x0F) > 0x0F,
		Carry: r > 0xFF,
	}
}

func Adc8(a, b byte, carry bool) Result {
	ci := b2u(carry)
	r := uint16(a) + uint16(b) + uint16(ci)
	return Result{
		Value: r & 0xFF,
		Half:  (a&0x0F)+(b&0x0F)+ci > 0x0F,
		Carry: r > 0xFF,
	}
}

func Sub8(a, b byte) Result {
	return Result{
		Value: uint16(a - b),
		Half:  a&0x0F < b&0x0F,
		Carry: a < b,
	}
}

func Sbc8(a, b byte, carry bool) Result {
	ci := b2u(carry)
	return Result{
		Value: uint16(a - b - ci),
		Half:  a&0x0F < b&0x0F+ci,
		Carry: uint16(a) < uint16(b)+uint16(ci),
	}
}

func And8(a, b byte) Result { return Result{Value: uint16(a & b), Half: true} }
func Or8(a, b byte) Result  { return Result{Value: uint16(a | b)} }
func Xor8(a, b byte) Result { return Result{Value: uint16(a ^ b)} }

// Inc8 sets Half when the low nibble overflows. Carry is untouched by INC
// and left false.
func Inc8(a byte) Result {
	return Result{Value: uint16(a + 1), Half: a&0x0F == 0x0F}
}

// Dec8 sets Half when the low nibble borrows.
func Dec8(a byte) Result {
	return Result{Value: uint16(a - 1), Half: a&0x0F == 0x00}
}

func Inc16(a uint16) Result { return Result{Value: a + 1} }
func Dec16(a uint16) Result { return Result{Value: a - 1} }

// Add16 is ADD HL,rr: half carry out of bit 11, carry out of bit 15.
func Add16(a, b uint16) Result {
	r := uint32(a) + uint32(b)
	return Result{
		Value: uint16(r),
		Half:  (a&0x0FFF)+(b&0x0FFF) > 0x0FFF,
		Carry: r > 0xFFFF,
	}
}

// AddSigned is SP+e8. e is the sign-extended displacement; the flags come
// from the unsigned addition of the low bytes.
func AddSigned(sp, e uint16) Result {
	return Result{
		Value: sp + e,
		Half:  (sp&0x0F)+(e&0x0F) > 0x0F,
		Carry: (sp&0xFF)+(e&0xFF) > 0xFF,
	}
}

func Rlc(v byte) Result {
	c := v >> 7
	return Result{Value: uint16(v<<1 | c), Carry: c == 1}
}

func Rrc(v byte) Result {
	c := v & 1
	return Result{Value: uint16(v>>1 | c<<7), Carry: c == 1}
}

func Rl(v byte, carry bool) Result {
	return Result{Value: uint16(v<<1 | b2u(carry)), Carry: v&0x80 != 0}
}

func Rr(v byte, carry bool) Result {
	return Result{Value: uint16(v>>1 | b2u(carry)<<7), Carry: v&1 != 0}
}

func Sla(v byte) Result { return Result{Value: uint16(v << 1), Carry: v&0x80 != 0} }
func Sra(v byte) Result { return Result{Value: uint16(v>>1 | v&0x80), Carry: v&1 != 0} }
func Srl(v byte) Result { return Result{Value: uint16(v >> 1), Carry: v&1 != 0} }

func Swap(v byte) Result { return Result{Value: uint16(v<<4 | v>>4)} }

// Bit tests bit n of v; Value is the tested bit.
func Bit(v byte, n uint8) Result { return Result{Value: uint16(v>>n) & 1} }
func Set(v byte, n uint8) Result { return Result{Value: uint16(v | 1<<n)} }
func Res(v byte, n uint8) Result { return Result{Value: uint16(v &^ (1 << n))} }

// Daa adjusts a to packed BCD after an addition (n clear) or subtraction.
func Daa(a byte, n, h, c bool) Result {
	if !n {
		if c || a > 0x99 {
			a += 0x60
			c = true
		}
		if h || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if c {
			a -= 0x60
		}
		if h {
			a -= 0x06
		}
	}
	return Result{Value: uint16(a), Carry: c}
}

func Cpl(a byte) Result { return Result{Value: uint16(^a)} }

// Ccf complements the carry flag.
func Ccf(carry bool) Result { return Result{Carry: !carry} }
