package main

import (
	"flag"
	"fmt"
	"hash/crc32"
	"log"
	"os"
	"strings"
	"time"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/emu"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/ui"
)

type CLIFlags struct {
	ROMPath string
	BootROM string
	Scale   int
	Title   string
	Trace   bool
	Paused  bool
	State   string

	// headless
	Headless bool
	Frames   int
	Expect   string // expected state CRC32 hex (e.g., "1a2b3c4d")
}

func parseFlags() CLIFlags {
	var f CLIFlags
	flag.StringVar(&f.ROMPath, "rom", "", "path to ROM (.gb)")
	flag.StringVar(&f.BootROM, "bootrom", "", "optional DMG boot ROM")
	flag.IntVar(&f.Scale, "scale", 2, "window scale")
	flag.StringVar(&f.Title, "title", "sm83 debugger", "window title")
	flag.BoolVar(&f.Trace, "trace", false, "CPU trace log")
	flag.BoolVar(&f.Paused, "paused", false, "start paused")
	flag.StringVar(&f.State, "state", "", "save state file for F5/F9 (default slot0.savestate)")

	// headless options
	flag.BoolVar(&f.Headless, "headless", false, "run without a window")
	flag.IntVar(&f.Frames, "frames", 300, "frames to run in headless mode")
	flag.StringVar(&f.Expect, "expect", "", "assert CRC32 (hex) of the final machine state")
	flag.Parse()
	return f
}

// runHeadless steps frames and checksums the resulting save state, which
// covers memory and registers.
func runHeadless(m *emu.Machine, frames int, expectCRC string) error {
	if frames <= 0 {
		frames = 1
	}

	start := time.Now()
	for i := 0; i < frames; i++ {
		if err := m.StepFrame(); err != nil {
			return err
		}
	}
	dur := time.Since(start)

	state, err := m.SaveState()
	if err != nil {
		return err
	}
	crc := crc32.ChecksumIEEE(state)
	fps := float64(frames) / dur.Seconds()

	log.Printf("headless: frames=%d elapsed=%s fps=%.2f state_crc32=%08x",
		frames, dur.Truncate(time.Millisecond), fps, crc)
	log.Printf("PC=%04X %s", m.CPU().PC, m.Registers())

	if expectCRC != "" {
		// normalize expected hex (allow with/without 0x, upper/lowercase)
		want := strings.TrimPrefix(strings.ToLower(expectCRC), "0x")
		got := fmt.Sprintf("%08x", crc)
		if got != want {
			return fmt.Errorf("checksum mismatch: got %s, want %s", got, want)
		}
	}
	return nil
}

func mustRead(path string) []byte {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	return b
}

func main() {
	f := parseFlags()
	if f.ROMPath == "" {
		log.Fatal("-rom is required")
	}

	cfg := emu.Defaults()
	cfg.Trace = f.Trace
	m := emu.New(cfg)
	m.SetBootROM(mustRead(f.BootROM))
	if err := m.LoadROMFromFile(f.ROMPath); err != nil {
		log.Fatalf("load rom: %v", err)
	}

	if f.Headless {
		if err := runHeadless(m, f.Frames, f.Expect); err != nil {
			log.Fatal(err)
		}
		return
	}

	app := ui.NewApp(ui.Config{Title: f.Title, Scale: f.Scale, StatePath: f.State, StartPaused: f.Paused}, m)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
