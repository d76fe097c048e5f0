package syntax

import "strings"

// Lex splits a mnemonic into tokens terminated by an EOF token.
// Identifiers are read greedily and lower-cased; those outside the keyword
// vocabulary become operands. There is no lexical error: a character that
// cannot start a token ends the stream and the parser reports the damage.
func Lex(src string) []Token {
	var toks []Token
	i := 0
	for i < len(src) {
		ch := src[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
			continue
		case isIdent(ch):
			start := i
			for i < len(src) && isIdent(src[i]) {
				i++
			}
			text := strings.ToLower(src[start:i])
			kind := Operand
			if _, ok := keywords[text]; ok {
				kind = Keyword
			}
			toks = append(toks, Token{Kind: kind, Text: text, Pos: start})
			continue
		}
		kind := EOF
		switch ch {
		case '(':
			kind = LParen
		case ')':
			kind = RParen
		case ',':
			kind = Comma
		case '+':
			kind = Plus
		case '-':
			kind = Minus
		}
		toks = append(toks, Token{Kind: kind, Text: string(ch), Pos: i})
		if kind == EOF {
			return toks
		}
		i++
	}
	return append(toks, Token{Kind: EOF, Pos: len(src)})
}

func isIdent(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
