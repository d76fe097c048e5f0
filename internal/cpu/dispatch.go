package cpu

import (
	"context"
	"sync"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/alu"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/assemble"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/ir"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/synth"
)

// Handler executes one opcode against c.
type Handler func(c *CPU) (Result, error)

// Dispatch holds a dense handler table per opcode space. A nil slot has no
// instruction.
type Dispatch struct {
	primary [256]Handler
	cb      [256]Handler
	frags   [2][256]*ir.Fragment
}

// Compile turns assembled fragments into handlers.
func Compile(t *assemble.Tables) *Dispatch {
	d := &Dispatch{}
	for op := 0; op < 256; op++ {
		if f := t.Primary[op]; f != nil {
			d.primary[op] = handlerFor(f)
			d.frags[0][op] = f
		}
		if f := t.CB[op]; f != nil {
			d.cb[op] = handlerFor(f)
			d.frags[1][op] = f
		}
	}
	return d
}

func handlerFor(f *ir.Fragment) Handler {
	if reason, failed := f.Failure(); failed {
		err := &UnimplementedError{Opcode: f.Opcode, Prefixed: f.Prefixed, Mnemonic: f.Mnemonic, Reason: reason}
		return func(*CPU) (Result, error) { return Result{}, err }
	}
	return func(c *CPU) (Result, error) {
		return c.run(f, f.Nodes, make([]alu.Result, f.Temps))
	}
}

// Handler returns the handler of op, or nil.
func (d *Dispatch) Handler(prefixed bool, op byte) Handler {
	if prefixed {
		return d.cb[op]
	}
	return d.primary[op]
}

// Fragment returns the fragment behind a handler, for tracing and tools.
func (d *Dispatch) Fragment(prefixed bool, op byte) *ir.Fragment {
	if prefixed {
		return d.frags[1][op]
	}
	return d.frags[0][op]
}

var (
	defaultOnce     sync.Once
	defaultDispatch *Dispatch
)

// Default returns the dispatch of the built-in instruction set, assembled
// on first use. The tables are static, so a build failure is a programming
// error and panics.
func Default() *Dispatch {
	defaultOnce.Do(func() {
		t, err := assemble.Build(context.Background(), synth.New())
		if err != nil {
			panic(err)
		}
		defaultDispatch = Compile(t)
	})
	return defaultDispatch
}
