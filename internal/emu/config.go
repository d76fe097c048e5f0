package emu

import "io"

// Config contains settings that affect how a Machine runs.
type Config struct {
	Trace    bool      // log every instruction
	TraceOut io.Writer // trace destination, os.Stderr when nil
	MaxSteps int       // Run stops after this many steps; 0 means no limit
	StartPC  uint16    // entry point without a boot ROM; 0 means 0x0100
}

// Defaults returns the settings cpurunner and the debugger start from.
func Defaults() Config {
	return Config{StartPC: 0x0100, MaxSteps: 5_000_000}
}
