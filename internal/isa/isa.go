// Package isa holds the SM83 opcode metadata: mnemonic, length, cycle costs
// and flag effects for the primary and CB-prefixed opcode spaces.
package isa

import "fmt"

var (
	primary    [256]*Descriptor
	cb         [256]*Descriptor
	byMnemonic = make(map[string]*Descriptor, 512)
)

func init() {
	load(primaryTable, false, &primary)
	load(cbTable, true, &cb)
}

func load(rows []entry, prefixed bool, dst *[256]*Descriptor) {
	for _, r := range rows {
		flags, err := parseFlags(r.flags)
		if err != nil {
			panic(fmt.Sprintf("isa: opcode %02X: %v", r.op, err))
		}
		d := &Descriptor{
			Opcode:      r.op,
			Prefixed:    prefixed,
			Mnemonic:    r.mn,
			Length:      r.length,
			Cycles:      r.cycles,
			CyclesTaken: r.taken,
			Flags:       flags,
		}
		if dst[r.op] != nil {
			panic(fmt.Sprintf("isa: duplicate opcode %s", d))
		}
		key := Normalize(r.mn)
		if _, dup := byMnemonic[key]; dup {
			panic(fmt.Sprintf("isa: duplicate mnemonic %q", r.mn))
		}
		dst[r.op] = d
		byMnemonic[key] = d
	}
}

// Lookup resolves a mnemonic against both tables, ignoring case and
// operand spacing.
func Lookup(mnemonic string) (Descriptor, error) {
	d, ok := byMnemonic[Normalize(mnemonic)]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrNotFound, mnemonic)
	}
	return *d, nil
}

// Get returns the descriptor of op in the selected space.
func Get(prefixed bool, op byte) (Descriptor, bool) {
	t := &primary
	if prefixed {
		t = &cb
	}
	if t[op] == nil {
		return Descriptor{}, false
	}
	return *t[op], true
}

// All returns every descriptor of a space in opcode order.
func All(prefixed bool) []Descriptor {
	t := &primary
	if prefixed {
		t = &cb
	}
	out := make([]Descriptor, 0, 256)
	for _, d := range t {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out
}
