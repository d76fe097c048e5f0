package ir

import (
	"fmt"
	"strings"
)

// Fragment is the synthesized semantics of one opcode.
type Fragment struct {
	Opcode      byte
	Prefixed    bool
	Mnemonic    string
	Cycles      int
	CyclesTaken int
	Temps       int // number of temp slots the nodes use
	Nodes       []Node
}

// Failure returns the reason of a deferred-failure fragment.
func (f *Fragment) Failure() (string, bool) {
	if len(f.Nodes) == 1 {
		if n, ok := f.Nodes[0].(Fail); ok {
			return n.Reason, true
		}
	}
	return "", false
}

// Costs lists the cycle cost of every Return in the fragment, taken paths
// before not-taken paths.
func (f *Fragment) Costs() []int {
	var out []int
	Walk(f.Nodes, func(n Node) {
		if r, ok := n.(Return); ok {
			out = append(out, r.Cycles)
		}
	})
	return out
}

// Walk visits nodes depth first, Then before Else.
func Walk(nodes []Node, fn func(Node)) {
	for _, n := range nodes {
		fn(n)
		if b, ok := n.(Branch); ok {
			Walk(b.Then, fn)
			Walk(b.Else, fn)
		}
	}
}

func (f *Fragment) String() string {
	var sb strings.Builder
	if f.Prefixed {
		fmt.Fprintf(&sb, "CB %02X %s\n", f.Opcode, f.Mnemonic)
	} else {
		fmt.Fprintf(&sb, "%02X %s\n", f.Opcode, f.Mnemonic)
	}
	dump(&sb, f.Nodes, 1)
	return sb.String()
}

func dump(sb *strings.Builder, nodes []Node, depth int) {
	pad := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch n := n.(type) {
		case Read:
			fmt.Fprintf(sb, "%st%d = read %s\n", pad, n.Dst, n.Src)
		case Write:
			fmt.Fprintf(sb, "%swrite %s = %s\n", pad, n.Dst, n.Src)
		case Adjust:
			fmt.Fprintf(sb, "%s%s += %d\n", pad, n.Reg, n.Delta)
		case Compute:
			fmt.Fprintf(sb, "%st%d = %s %s %s #%d\n", pad, n.Dst, n.Op, n.A, n.B, n.Bit)
		case UpdateFlag:
			fmt.Fprintf(sb, "%sflag %s source=%d t%d\n", pad, n.Flag, n.Source, n.Src)
		case AdvancePC:
			fmt.Fprintf(sb, "%sPC += %d\n", pad, n.N)
		case Jump:
			fmt.Fprintf(sb, "%sjump %s relative=%v\n", pad, n.Target, n.Relative)
		case Push:
			fmt.Fprintf(sb, "%spush %s\n", pad, n.Src)
		case Pop:
			fmt.Fprintf(sb, "%st%d = pop\n", pad, n.Dst)
		case SetIME:
			fmt.Fprintf(sb, "%sime %v\n", pad, n.On)
		case Halt:
			fmt.Fprintf(sb, "%shalt stop=%v\n", pad, n.Stop)
		case SetPrefix:
			fmt.Fprintf(sb, "%sprefix %v\n", pad, n.On)
		case Branch:
			fmt.Fprintf(sb, "%sif %s\n", pad, n.Cond)
			dump(sb, n.Then, depth+1)
			fmt.Fprintf(sb, "%selse\n", pad)
			dump(sb, n.Else, depth+1)
		case Return:
			fmt.Fprintf(sb, "%sreturn %s, %d\n", pad, n.Value, n.Cycles)
		case Fail:
			fmt.Fprintf(sb, "%sfail %q\n", pad, n.Reason)
		}
	}
}
