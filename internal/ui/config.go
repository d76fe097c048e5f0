package ui

// Config contains window and stepping settings of the debugger.
type Config struct {
	Title         string // window title
	Scale         int    // integer upscaling factor
	StepsPerFrame int    // instructions run per update while not paused
	StatePath     string // save state file for F5/F9
	StartPaused   bool
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "sm83 debugger"
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.StepsPerFrame <= 0 {
		c.StepsPerFrame = 1000
	}
	if c.StatePath == "" {
		c.StatePath = "slot0.savestate"
	}
}
