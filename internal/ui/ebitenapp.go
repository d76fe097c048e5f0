package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/emu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

const (
	screenW    = 480
	screenH    = 320
	lineH      = 16
	serialRows = 6
)

var (
	background = color.RGBA{0x10, 0x12, 0x1a, 0xff}
	foreground = color.RGBA{0xd8, 0xde, 0xe9, 0xff}
	highlight  = color.RGBA{0xeb, 0xcb, 0x8b, 0xff}
	failure    = color.RGBA{0xbf, 0x61, 0x6a, 0xff}
)

type App struct {
	cfg    Config
	m      *emu.Machine
	paused bool
	fast   bool
	status string
	err    error // sticky execution error; cleared by reset
	shot   bool

	serial console

	clipboardOnce sync.Once
	clipboardOK   bool
}

// console keeps the tail of the serial output as text lines.
type console struct {
	lines []string
	cur   strings.Builder
}

func (c *console) Write(p []byte) (int, error) {
	for _, b := range p {
		switch {
		case b == '\n':
			c.push()
		case b >= 0x20 && b < 0x7F:
			c.cur.WriteByte(b)
		}
	}
	return len(p), nil
}

func (c *console) push() {
	c.lines = append(c.lines, c.cur.String())
	c.cur.Reset()
	if len(c.lines) > serialRows {
		c.lines = c.lines[len(c.lines)-serialRows:]
	}
}

func (c *console) tail() []string {
	out := append([]string(nil), c.lines...)
	if c.cur.Len() > 0 {
		out = append(out, c.cur.String())
	}
	if len(out) > serialRows {
		out = out[len(out)-serialRows:]
	}
	return out
}

func NewApp(cfg Config, m *emu.Machine) *App {
	cfg.Defaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(screenW*cfg.Scale, screenH*cfg.Scale)
	a := &App{cfg: cfg, m: m, paused: cfg.StartPaused}
	m.SetSerialWriter(&a.serial)
	return a
}

func (a *App) Run() error { return ebiten.RunGame(a) }

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Pause toggle (P)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}

	// Fast-forward (Tab): while held, run a frame worth of cycles per update
	a.fast = ebiten.IsKeyPressed(ebiten.KeyTab)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.err = nil
		a.serial = console{}
		a.report(a.m.Reset(), "reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.report(a.m.SaveStateToFile(a.cfg.StatePath), "saved "+a.cfg.StatePath)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.err = nil
		a.report(a.m.LoadStateFromFile(a.cfg.StatePath), "loaded "+a.cfg.StatePath)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.shot = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copyState()
	}

	if a.err != nil {
		return nil
	}
	switch {
	case a.paused && inpututil.IsKeyJustPressed(ebiten.KeyN): // single instruction
		_, a.err = a.m.Step()
	case a.paused && inpututil.IsKeyJustPressed(ebiten.KeyF): // one frame
		a.err = a.m.StepFrame()
	case a.paused:
	case a.fast:
		a.err = a.m.StepFrame()
	default:
		for i := 0; i < a.cfg.StepsPerFrame && a.err == nil; i++ {
			_, a.err = a.m.Step()
		}
	}
	return nil
}

func (a *App) report(err error, ok string) {
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = ok
}

// copyState puts the register dump and the upcoming instructions on the
// system clipboard.
func (a *App) copyState() {
	a.clipboardOnce.Do(func() {
		a.clipboardOK = clipboard.Init() == nil
	})
	if !a.clipboardOK || a.m.CPU() == nil {
		a.status = "clipboard unavailable"
		return
	}
	lines := append([]string{a.m.Registers()}, a.m.Listing(a.m.CPU().PC, 8)...)
	clipboard.Write(clipboard.FmtText, []byte(strings.Join(lines, "\n")+"\n"))
	a.status = "copied state to clipboard"
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	c := a.m.CPU()
	if c == nil {
		ebitenutil.DebugPrintAt(screen, "no program loaded", 10, 10)
		return
	}
	state := "running"
	switch {
	case a.err != nil:
		state = "error"
	case c.Halted():
		state = "halted"
	case a.paused:
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  PC=%04X  steps=%d cycles=%d", state, c.PC, a.m.Steps(), a.m.Cycles()),
		a.m.Registers(),
		"",
	}
	lines = append(lines, a.m.Listing(c.PC, 8)...)
	lines = append(lines, "", "serial:")
	lines = append(lines, a.serial.tail()...)
	face := basicfont.Face7x13
	for i, s := range lines {
		prefix, clr := "  ", color.Color(foreground)
		if i == 3 {
			prefix, clr = "> ", highlight
		}
		text.Draw(screen, prefix+s, face, 10, 22+i*lineH, clr)
	}

	if a.err != nil {
		text.Draw(screen, a.err.Error(), face, 10, screenH-2*lineH, failure)
	} else {
		ebitenutil.DebugPrintAt(screen, a.status, 10, screenH-2*lineH-6)
	}
	ebitenutil.DebugPrintAt(screen, "P: pause  N: step  F: frame  R: reset  C: copy  F5/F9: state  Esc: quit", 10, screenH-lineH-6)

	if a.shot {
		a.shot = false
		if err := saveScreenshot(screen); err != nil {
			a.status = err.Error()
		}
	}
}

func (a *App) Layout(outW, outH int) (int, int) { return screenW, screenH }

func saveScreenshot(screen *ebiten.Image) error {
	b := screen.Bounds()
	img := image.NewRGBA(b)
	screen.ReadPixels(img.Pix)
	ts := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("screenshot_%s.png", ts)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return errors.Join(err, os.Remove(name))
	}
	return nil
}
