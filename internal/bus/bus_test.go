package bus

import "testing"

func TestBus_ROMAndRAM(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0x42
	b := New(rom)

	if got := b.Read(0x0100); got != 0x42 {
		t.Fatalf("ROM read got %02x, want 42", got)
	}
	b.Write(0x0100, 0x00)
	if got := b.Read(0x0100); got != 0x42 {
		t.Fatalf("ROM write must be ignored, got %02x", got)
	}

	// RAM write+read
	b.Write(0xC000, 0x99)
	if got := b.Read(0xC000); got != 0x99 {
		t.Fatalf("RAM read got %02x, want 99", got)
	}

	// Echo RAM mirrors C000–DDFF
	b.Write(0xE000, 0x55)
	if got := b.Read(0xC000); got != 0x55 {
		t.Fatalf("Echo write did not mirror to WRAM: got %02x", got)
	}

	// HRAM read/write
	b.Write(0xFF80, 0xAB)
	if got := b.Read(0xFF80); got != 0xAB {
		t.Fatalf("HRAM read got %02x, want AB", got)
	}

	// short ROM image
	if got := New([]byte{0x00}).Read(0x4000); got != 0xFF {
		t.Fatalf("unbacked ROM read got %02x, want FF", got)
	}
}

func TestBus_WordsAreLittleEndian(t *testing.T) {
	b := New(nil)
	b.WriteWord(0xC000, 0xBEEF)
	if lo, hi := b.ReadByte(0xC000), b.ReadByte(0xC001); lo != 0xEF || hi != 0xBE {
		t.Fatalf("WriteWord bytes got %02x %02x want EF BE", lo, hi)
	}
	if got := b.ReadWord(0xC000); got != 0xBEEF {
		t.Fatalf("ReadWord got %04x want BEEF", got)
	}
}

func TestBus_BootROMOverlay(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0000] = 0xC3
	rom[0x0100] = 0x00
	boot := make([]byte, 0x100)
	boot[0x0000] = 0x31
	b := New(rom)
	b.SetBootROM(boot)

	if got := b.Read(0x0000); got != 0x31 {
		t.Fatalf("boot overlay got %02x want 31", got)
	}
	if got := b.Read(0x0100); got != 0x00 {
		t.Fatalf("cartridge above overlay got %02x want 00", got)
	}
	b.Write(0xFF50, 0x00)
	if !b.BootMapped() {
		t.Fatal("zero write to FF50 must keep the boot ROM mapped")
	}
	b.Write(0xFF50, 0x01)
	if b.BootMapped() || b.Read(0x0000) != 0xC3 {
		t.Fatalf("boot ROM should be unmapped, read %02x", b.Read(0x0000))
	}
}

func TestBus_SerialImmediate(t *testing.T) {
	b := New(make([]byte, 0x8000))
	var out []byte
	b.SetSerialWriter(writerFunc(func(p []byte) (int, error) {
		out = append(out, p...)
		return len(p), nil
	}))

	b.Write(0xFF01, 0x41) // 'A'
	b.Write(0xFF02, 0x81) // start, internal clock
	if len(out) != 1 || out[0] != 0x41 {
		t.Fatalf("serial out got %v want [0x41]", out)
	}
	if got := b.Read(0xFF02); (got & 0x80) != 0 { // transfer done => bit7 cleared
		t.Fatalf("serial control bit7 not cleared: %02x", got)
	}
	if (b.Read(0xFF0F) & (1 << 3)) == 0 { // IF bit3 set
		t.Fatalf("serial IF bit not set after transfer")
	}

	b.Write(0xFF02, 0x80) // external clock: nothing sent
	if len(out) != 1 {
		t.Fatalf("transfer without internal clock sent %v", out)
	}
}

func TestBus_SnapshotRestore(t *testing.T) {
	boot := make([]byte, 0x100)
	b := New(make([]byte, 0x8000))
	b.SetBootROM(boot)
	b.Write(0xC000, 0x12)
	b.Write(0xFF50, 0x01)

	mem, mapped := b.Snapshot()
	if mapped {
		t.Fatal("snapshot after FF50 write must report the overlay unmapped")
	}
	b.Write(0xC000, 0x99)
	if err := b.Restore(mem, true); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := b.Read(0xC000); got != 0x12 {
		t.Fatalf("(C000) got %02x want 12", got)
	}
	if !b.BootMapped() {
		t.Fatal("restore must remap the overlay when a boot ROM is present")
	}
	if err := b.Restore(mem[:10], false); err == nil {
		t.Fatal("short snapshot accepted")
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
