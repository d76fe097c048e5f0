// Package syntax turns SM83 mnemonics such as "LD (HL+),A" or "JR NZ,r8"
// into typed statements.
package syntax

import (
	"fmt"
	"strings"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/isa"
)

// GrammarError reports a token stream that does not fit the argument
// grammar INSTR [ARG[,ARG]].
type GrammarError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("syntax: %q at %d: %s", e.Input, e.Pos, e.Msg)
}

// Statement is a parsed mnemonic bound to its descriptor.
type Statement struct {
	Mnemonic string
	Instr    Instr
	Class    Class
	Desc     isa.Descriptor
	Dst      *Expr // first argument, may be nil
	Src      *Expr // second argument, may be nil
}

// Args returns the present arguments in order.
func (s *Statement) Args() []*Expr {
	switch {
	case s.Dst == nil:
		return nil
	case s.Src == nil:
		return []*Expr{s.Dst}
	}
	return []*Expr{s.Dst, s.Src}
}

func (s *Statement) String() string {
	switch {
	case s.Dst == nil:
		return s.Instr.String()
	case s.Src == nil:
		return fmt.Sprintf("%s %s", s.Instr, s.Dst)
	}
	return fmt.Sprintf("%s %s,%s", s.Instr, s.Dst, s.Src)
}

// Parse resolves mnemonic in the opcode tables and builds its statement.
func Parse(mnemonic string) (Statement, error) {
	d, err := isa.Lookup(mnemonic)
	if err != nil {
		return Statement{}, err
	}
	return parse(mnemonic, d)
}

// ParseDescriptor builds the statement of a descriptor's own mnemonic.
func ParseDescriptor(d isa.Descriptor) (Statement, error) {
	return parse(d.Mnemonic, d)
}

func parse(mnemonic string, d isa.Descriptor) (Statement, error) {
	src := strings.ToLower(strings.TrimSpace(mnemonic))
	p := &parser{src: src, toks: Lex(src)}
	st := Statement{Mnemonic: mnemonic, Desc: d}

	kw := p.peek()
	if kw.Kind != Keyword {
		return st, p.errorf(kw, "expected instruction keyword, found %s", kw.Kind)
	}
	p.advance()
	st.Instr = keywords[kw.Text]
	st.Class = ClassOf(st.Instr)

	if t := p.peek(); t.Kind == EOF {
		if !p.atEnd() {
			return st, p.errorf(t, "unexpected character %q", t.Text)
		}
		if !NoArgs(st.Instr) {
			return st, p.errorf(t, "%s takes arguments", st.Instr)
		}
		return st, nil
	}
	dst, err := p.expr()
	if err != nil {
		return st, err
	}
	st.Dst = dst
	if p.peek().Kind == Comma {
		p.advance()
		src, err := p.expr()
		if err != nil {
			return st, err
		}
		st.Src = src
	}
	if t := p.peek(); !p.atEnd() {
		if t.Kind == EOF {
			return st, p.errorf(t, "unexpected character %q", t.Text)
		}
		return st, p.errorf(t, "unexpected %s after arguments", t.Kind)
	}
	return st, nil
}

// NoArgs reports whether an instruction is complete without arguments.
func NoArgs(i Instr) bool {
	switch i {
	case NOP, HALT, DI, EI, RET, RETI, RLCA, RLA, RRCA, RRA, DAA, CPL, CCF, SCF:
		return true
	}
	return false
}

type parser struct {
	src  string
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Kind: EOF, Pos: len(p.src)}
	}
	return p.toks[p.pos]
}

func (p *parser) advance() { p.pos++ }

// atEnd reports whether the stream ended at the end of the input rather
// than at a character the lexer could not read.
func (p *parser) atEnd() bool {
	t := p.peek()
	return t.Kind == EOF && t.Pos >= len(p.src)
}

func (p *parser) errorf(t Token, format string, args ...any) error {
	return &GrammarError{Input: p.src, Pos: t.Pos, Msg: fmt.Sprintf(format, args...)}
}

// expr parses operand, (operand), (operand±operand), operand±operand or
// (operand±).
func (p *parser) expr() (*Expr, error) {
	indirect := false
	if p.peek().Kind == LParen {
		indirect = true
		p.advance()
	}
	t := p.peek()
	if t.Kind != Operand {
		return nil, p.errorf(t, "expected operand, found %s", t.Kind)
	}
	p.advance()
	e := &Expr{Kind: Nullary, X: Classify(t.Text, indirect)}

	if s := p.peek(); s.Kind == Plus || s.Kind == Minus {
		p.advance()
		e.Sign = 1
		if s.Kind == Minus {
			e.Sign = -1
		}
		switch n := p.peek(); {
		case n.Kind == Operand:
			p.advance()
			e.Kind = Binary
			e.Y = Classify(n.Text, false)
		case indirect && n.Kind == RParen:
			e.Kind = Unary
		default:
			return nil, p.errorf(n, "expected operand or ')' after %s, found %s", s.Kind, n.Kind)
		}
	}

	if indirect {
		if c := p.peek(); c.Kind != RParen {
			return nil, p.errorf(c, "expected ')', found %s", c.Kind)
		}
		p.advance()
	}
	return e, nil
}
