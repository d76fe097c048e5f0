// Package bus is a flat 64 KiB memory device with the cartridge ROM mapped
// at 0x0000-0x7FFF, an optional boot ROM overlay and the serial port.
package bus

import (
	"fmt"
	"io"
)

const (
	regSB   = 0xFF01 // serial data
	regSC   = 0xFF02 // serial control
	regIF   = 0xFF0F
	regBoot = 0xFF50 // non-zero write unmaps the boot ROM
)

type Bus struct {
	rom  []byte
	boot []byte
	mem  [0x10000]byte

	bootMapped bool
	serial     io.Writer
}

func New(rom []byte) *Bus {
	return &Bus{
		rom: rom,
	}
}

// SetBootROM overlays boot over the start of the address space until the
// program writes a non-zero value to 0xFF50.
func (b *Bus) SetBootROM(boot []byte) {
	b.boot = boot
	b.bootMapped = len(boot) > 0
}

// BootMapped reports whether the boot ROM still shadows the cartridge.
func (b *Bus) BootMapped() bool { return b.bootMapped }

// SetSerialWriter receives every byte sent over the serial port.
func (b *Bus) SetSerialWriter(w io.Writer) { b.serial = w }

func (b *Bus) Read(addr uint16) byte {
	switch {
	case b.bootMapped && int(addr) < len(b.boot) && addr < 0x0100:
		return b.boot[addr]
	case addr < 0x8000: // ROM area
		if int(addr) < len(b.rom) {
			return b.rom[addr]
		}
		return 0xFF // out-of-bounds read
	case addr >= 0xE000 && addr < 0xFE00: // echo of C000-DDFF
		return b.mem[addr-0x2000]
	case addr == regIF:
		return b.mem[addr] | 0xE0
	}
	return b.mem[addr]
}

func (b *Bus) Write(addr uint16, value byte) {
	switch {
	case addr < 0x8000: // ROM is read-only
	case addr >= 0xE000 && addr < 0xFE00:
		b.mem[addr-0x2000] = value
	case addr == regSC:
		b.mem[addr] = value
		if value == 0x81 {
			b.transfer()
		}
	case addr == regBoot:
		b.mem[addr] = value
		if value != 0 {
			b.bootMapped = false
		}
	default:
		b.mem[addr] = value
	}
}

// transfer completes a serial transfer immediately: the byte goes out,
// the start bit clears and the serial interrupt is requested.
func (b *Bus) transfer() {
	if b.serial != nil {
		b.serial.Write([]byte{b.mem[regSB]})
	}
	b.mem[regSC] &^= 0x80
	b.mem[regIF] |= 1 << 3
}

// ReadByte, ReadWord, WriteByte and WriteWord make Bus the CPU's memory.

func (b *Bus) ReadByte(addr uint16) byte { return b.Read(addr) }

func (b *Bus) ReadWord(addr uint16) uint16 {
	return uint16(b.Read(addr)) | uint16(b.Read(addr+1))<<8
}

func (b *Bus) WriteByte(addr uint16, v byte) { b.Write(addr, v) }

func (b *Bus) WriteWord(addr uint16, v uint16) {
	b.Write(addr, byte(v))
	b.Write(addr+1, byte(v>>8))
}

// Snapshot copies the address space and the boot overlay flag.
func (b *Bus) Snapshot() (mem []byte, bootMapped bool) {
	mem = make([]byte, len(b.mem))
	copy(mem, b.mem[:])
	return mem, b.bootMapped
}

// Restore loads memory taken by Snapshot. The ROM images are not part of
// it and stay as loaded.
func (b *Bus) Restore(mem []byte, bootMapped bool) error {
	if len(mem) != len(b.mem) {
		return fmt.Errorf("bus: snapshot is %d bytes, want %d", len(mem), len(b.mem))
	}
	copy(b.mem[:], mem)
	b.bootMapped = bootMapped && len(b.boot) > 0
	return nil
}
