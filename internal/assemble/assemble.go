// Package assemble folds the synthesized fragments of every opcode into the
// primary and CB dispatch tables.
package assemble

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/ir"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/isa"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/synth"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/syntax"
)

// Tables holds one fragment per opcode and space. A nil slot has no
// instruction; dispatching it is an error.
type Tables struct {
	Primary [256]*ir.Fragment
	CB      [256]*ir.Fragment
}

// Get returns the fragment of op in the selected space.
func (t *Tables) Get(prefixed bool, op byte) *ir.Fragment {
	if prefixed {
		return t.CB[op]
	}
	return t.Primary[op]
}

// Build assembles the built-in instruction set.
func Build(ctx context.Context, s *synth.Synthesizer) (*Tables, error) {
	return FromDescriptors(ctx, s, isa.All(false), isa.All(true))
}

// FromDescriptors assembles the given descriptor lists. The two spaces are
// synthesized concurrently, each into its own array. The first parse error
// aborts the build.
func FromDescriptors(ctx context.Context, s *synth.Synthesizer, primary, cb []isa.Descriptor) (*Tables, error) {
	var t Tables
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return fill(ctx, s, primary, &t.Primary) })
	g.Go(func() error { return fill(ctx, s, cb, &t.CB) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &t, nil
}

func fill(ctx context.Context, s *synth.Synthesizer, descs []isa.Descriptor, dst *[256]*ir.Fragment) error {
	for _, d := range descs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if dst[d.Opcode] != nil {
			return fmt.Errorf("assemble: duplicate opcode %s", d)
		}
		st, err := syntax.ParseDescriptor(d)
		if err != nil {
			return fmt.Errorf("assemble: %s: %w", d, err)
		}
		dst[d.Opcode] = s.Synthesize(&st)
	}
	return nil
}
