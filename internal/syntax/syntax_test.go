package syntax

import (
	"errors"
	"testing"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/isa"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLex(t *testing.T) {
	cases := []struct {
		src  string
		want []Kind
	}{
		{"NOP", []Kind{Keyword, EOF}},
		{"LD (HL+),A", []Kind{Keyword, LParen, Operand, Plus, RParen, Comma, Operand, EOF}},
		{"ld hl, sp+r8", []Kind{Keyword, Operand, Comma, Operand, Plus, Operand, EOF}},
		{"JR NZ,r8", []Kind{Keyword, Operand, Comma, Operand, EOF}},
		{"LD A,(HL-)", []Kind{Keyword, Operand, Comma, LParen, Operand, Minus, RParen, EOF}},
		{"RST 38H", []Kind{Keyword, Operand, EOF}},
		{"LD A;B", []Kind{Keyword, Operand, EOF}},
	}
	for _, tc := range cases {
		got := kinds(Lex(tc.src))
		if len(got) != len(tc.want) {
			t.Fatalf("Lex(%q) got %v want %v", tc.src, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Lex(%q)[%d] got %s want %s", tc.src, i, got[i], tc.want[i])
			}
		}
	}
}

func TestLex_LowerCasesIdentifiers(t *testing.T) {
	toks := Lex("BIT 7,H")
	if toks[0].Text != "bit" || toks[1].Text != "7" || toks[3].Text != "h" {
		t.Fatalf("Lex texts got %q %q %q", toks[0].Text, toks[1].Text, toks[3].Text)
	}
	if toks[3].Pos != 6 {
		t.Fatalf("H position got %d want 6", toks[3].Pos)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		text  string
		class MemClass
		width Width
	}{
		{"a", Register, W8},
		{"f", Register, W8},
		{"hl", Register, W16},
		{"af", Register, W16},
		{"d8", Address, W8},
		{"r8", Address, W8},
		{"a16", Address, W16},
		{"z", Address, W8},
		{"nz", Address, W16},
		{"38h", Address, W16},
		{"7", Address, W8},
	}
	for _, tc := range cases {
		a := Classify(tc.text, false)
		if a.Class != tc.class || a.Width != tc.width {
			t.Fatalf("Classify(%q) got %s/%d want %s/%d", tc.text, a.Class, a.Width, tc.class, tc.width)
		}
	}
	if !Classify("c", true).Indirect {
		t.Fatal("Classify should carry indirection")
	}
}

func TestParse_Shapes(t *testing.T) {
	st, err := Parse("LD (HL+),A")
	if err != nil {
		t.Fatal(err)
	}
	if st.Instr != LD || st.Class != Transfer || st.Desc.Opcode != 0x22 {
		t.Fatalf("LD (HL+),A got %s class=%s op=%02X", st.Instr, st.Class, st.Desc.Opcode)
	}
	if st.Dst.Kind != Unary || st.Dst.Sign != 1 || !st.Dst.Indirect() || !st.Dst.X.IsReg("hl") {
		t.Fatalf("dst got %+v", st.Dst)
	}
	if st.Src.Kind != Nullary || !st.Src.X.IsReg("a") {
		t.Fatalf("src got %+v", st.Src)
	}

	st, err = Parse("LD HL,SP+r8")
	if err != nil {
		t.Fatal(err)
	}
	if st.Src.Kind != Binary || !st.Src.X.IsReg("sp") || st.Src.Y.Text != "r8" || st.Src.Indirect() {
		t.Fatalf("LD HL,SP+r8 src got %+v", st.Src)
	}

	st, err = Parse("LD A,(HL-)")
	if err != nil {
		t.Fatal(err)
	}
	if st.Src.Kind != Unary || st.Src.Sign != -1 {
		t.Fatalf("LD A,(HL-) src got %+v", st.Src)
	}

	st, err = Parse("JR NZ,r8")
	if err != nil {
		t.Fatal(err)
	}
	if st.Class != Control || st.Dst.X.Text != "nz" || st.Src.X.Text != "r8" {
		t.Fatalf("JR NZ,r8 got %s", &st)
	}

	st, err = Parse("NOP")
	if err != nil {
		t.Fatal(err)
	}
	if st.Dst != nil || st.Src != nil || len(st.Args()) != 0 {
		t.Fatal("NOP should have no arguments")
	}

	st, err = Parse("bit 7,h")
	if err != nil {
		t.Fatal(err)
	}
	if !st.Desc.Prefixed || st.Desc.Opcode != 0x7C || st.Class != BitOps {
		t.Fatalf("BIT 7,H got %s", st.Desc)
	}
}

func TestParse_String(t *testing.T) {
	for _, mn := range []string{"ld (hl+),a", "ld hl,sp+r8", "ldh (c),a", "jr nz,r8", "ret", "inc (hl)"} {
		st, err := parse(mn, isa.Descriptor{})
		if err != nil {
			t.Fatal(err)
		}
		if got := st.String(); got != mn {
			t.Fatalf("String got %q want %q", got, mn)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse("LD Q,Q"); !errors.Is(err, isa.ErrNotFound) {
		t.Fatalf("unknown mnemonic got %v want ErrNotFound", err)
	}

	bad := []string{
		"ld (hl,a",   // missing ')'
		"ld hl+,a",   // unary outside parentheses
		"ld a,b c",   // trailing operand
		"ld ,a",      // missing operand
		"(hl)",       // no keyword
		"ld a,(hl+b", // binary without ')'
		"ld a;b",     // lexer stops at ';'
		"inc",        // missing argument
		"ld cp,a",    // keyword used as operand
	}
	for _, src := range bad {
		_, err := parse(src, isa.Descriptor{})
		var ge *GrammarError
		if !errors.As(err, &ge) {
			t.Fatalf("parse(%q) got %v want GrammarError", src, err)
		}
	}
}

func TestParse_AllDescriptors(t *testing.T) {
	for _, prefixed := range []bool{false, true} {
		for _, d := range isa.All(prefixed) {
			st, err := ParseDescriptor(d)
			if err != nil {
				t.Fatalf("%s: %v", d, err)
			}
			if st.Desc != d {
				t.Fatalf("%s: descriptor not attached", d)
			}
		}
	}
}
