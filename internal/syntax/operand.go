package syntax

// MemClass says whether an operand names a register or a value located
// elsewhere (immediate, address, condition, constant).
type MemClass uint8

const (
	Register MemClass = iota
	Address
)

func (m MemClass) String() string {
	if m == Register {
		return "register"
	}
	return "address"
}

// Width is an operand size in bits.
type Width uint8

const (
	W8  Width = 8
	W16 Width = 16
)

// Arg is a classified operand.
type Arg struct {
	Text     string
	Class    MemClass
	Width    Width
	Indirect bool
}

func (a Arg) String() string {
	if a.Indirect {
		return "(" + a.Text + ")"
	}
	return a.Text
}

// IsReg reports whether a is the named register.
func (a Arg) IsReg(name string) bool {
	return a.Class == Register && a.Text == name
}

var registers = map[string]Width{
	"a": W8, "b": W8, "c": W8, "d": W8, "e": W8, "h": W8, "l": W8, "f": W8,
	"bc": W16, "de": W16, "hl": W16, "sp": W16, "pc": W16, "af": W16,
}

// placeholders with a width that the length rule would get wrong.
var placeholders = map[string]Width{
	"d8": W8, "a8": W8, "r8": W8,
	"d16": W16, "a16": W16,
}

// Classify maps a lexeme to its operand class. The decision is purely
// lexical: it never depends on the instruction.
func Classify(text string, indirect bool) Arg {
	if w, ok := registers[text]; ok {
		return Arg{Text: text, Class: Register, Width: w, Indirect: indirect}
	}
	if w, ok := placeholders[text]; ok {
		return Arg{Text: text, Class: Address, Width: w, Indirect: indirect}
	}
	w := W16
	if len(text) == 1 {
		w = W8
	}
	return Arg{Text: text, Class: Address, Width: w, Indirect: indirect}
}

// ExprKind is the shape of an argument expression.
type ExprKind uint8

const (
	Nullary ExprKind = iota // plain operand
	Unary                   // operand with post increment/decrement
	Binary                  // X ± Y
)

// Expr is one instruction argument.
type Expr struct {
	Kind ExprKind
	X    Arg
	Y    Arg // Binary only
	Sign int // +1 or -1 for Unary and Binary
}

// Indirect reports whether the expression addresses memory.
func (e *Expr) Indirect() bool { return e.X.Indirect }

func (e *Expr) String() string {
	sign := "+"
	if e.Sign < 0 {
		sign = "-"
	}
	switch e.Kind {
	case Unary:
		s := e.X.Text + sign
		if e.X.Indirect {
			return "(" + s + ")"
		}
		return s
	case Binary:
		s := e.X.Text + sign + e.Y.Text
		if e.X.Indirect {
			return "(" + s + ")"
		}
		return s
	}
	return e.X.String()
}
