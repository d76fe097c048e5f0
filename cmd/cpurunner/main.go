package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/emu"
)

// Regex for failure summary: "Failed <n> tests"
var failRe = regexp.MustCompile(`(?i)failed\s+(\d+)\s+tests?`)

func main() {
	romPath := flag.String("rom", "", "path to ROM (.gb)")
	bootPath := flag.String("bootrom", "", "optional DMG boot ROM to run from 0x0000 until FF50 disables it")
	steps := flag.Int("steps", 5_000_000, "max CPU steps to run")
	startPC := flag.Int("pc", 0x0100, "initial PC value")
	trace := flag.Bool("trace", false, "print PC/opcodes")
	until := flag.String("until", "Passed", "stop when serial output contains this substring (case-insensitive); empty to disable")
	auto := flag.Bool("auto", false, "auto-detect 'Passed' or 'Failed N tests' in serial output and exit with code 0/1")
	timeout := flag.Duration("timeout", 0, "optional wall-clock timeout (e.g. 30s, 2m); 0 disables")
	statePath := flag.String("savestate", "", "write a save state here when the run ends")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("-rom is required")
	}
	cfg := emu.Defaults()
	cfg.Trace = *trace
	cfg.TraceOut = os.Stdout
	cfg.MaxSteps = *steps
	cfg.StartPC = uint16(*startPC)
	m := emu.New(cfg)
	if *bootPath != "" {
		b, err := os.ReadFile(*bootPath)
		if err != nil {
			log.Fatalf("read bootrom: %v", err)
		}
		m.SetBootROM(b)
	}

	// Stream serial to stdout and capture in-memory for pattern detection
	var ser bytes.Buffer
	m.SetSerialWriter(io.MultiWriter(os.Stdout, &ser))
	if err := m.LoadROMFromFile(*romPath); err != nil {
		log.Fatalf("load rom: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	var verdict string
	code := 0
	check := func() bool {
		s := ser.String()
		switch {
		case *auto && strings.Contains(strings.ToLower(s), "passed"):
			verdict = "Detected PASS in serial output."
		case *auto && failRe.MatchString(s):
			verdict = fmt.Sprintf("Detected %s in serial output.", failRe.FindString(s))
			code = 1
		case !*auto && *until != "" && strings.Contains(strings.ToLower(s), strings.ToLower(*until)):
			verdict = fmt.Sprintf("Detected '%s' in serial output.", *until)
		}
		return verdict != ""
	}
	var stopWhen func() bool
	if *auto || *until != "" {
		stopWhen = check
	}

	st, err := m.Run(ctx, stopWhen)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Printf("\nTimeout after %s.\n", st.Elapsed.Truncate(time.Millisecond))
		code = 2
	case errors.Is(err, context.Canceled):
		fmt.Printf("\nInterrupted.\n")
		code = 130
	case err != nil:
		fmt.Printf("\n%v\n", err)
		fmt.Printf("PC=%04X %s\n", m.CPU().PC, m.Registers())
		code = 3
	case verdict != "":
		fmt.Printf("\n%s\n", verdict)
	case m.CPU().Halted():
		fmt.Printf("\nHalted at PC=%04X.\n", m.CPU().PC)
	}

	if *statePath != "" {
		if err := m.SaveStateToFile(*statePath); err != nil {
			log.Printf("save state: %v", err)
		}
	}
	fmt.Println()
	fmt.Println(summary(st))
	os.Exit(code)
}

// summary formats the final counters, trimmed to the terminal width when
// stdout is one.
func summary(st emu.Stats) string {
	s := fmt.Sprintf("Done: steps=%d cycles~=%d elapsed=%s", st.Steps, st.Cycles, st.Elapsed.Truncate(time.Millisecond))
	if secs := st.Elapsed.Seconds(); secs > 0 {
		s += fmt.Sprintf(" (%.2f MHz effective)", float64(st.Cycles)/secs/1e6)
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return s
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 && len(s) > w {
		s = s[:w]
	}
	return s
}
