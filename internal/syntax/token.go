package syntax

import "fmt"

// Kind classifies a token.
type Kind uint8

const (
	EOF Kind = iota
	Keyword
	Operand
	Plus
	Minus
	Comma
	LParen
	RParen
)

var kindNames = [...]string{
	EOF:     "end of input",
	Keyword: "keyword",
	Operand: "operand",
	Plus:    "'+'",
	Minus:   "'-'",
	Comma:   "','",
	LParen:  "'('",
	RParen:  "')'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is one lexeme of a mnemonic. Text is lower-cased.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

// Instr identifies an instruction keyword.
type Instr uint8

const (
	InstrInvalid Instr = iota
	LD
	LDH
	PUSH
	POP
	ADD
	ADC
	SUB
	SBC
	CP
	AND
	OR
	XOR
	INC
	DEC
	SWAP
	DAA
	CPL
	CCF
	SCF
	NOP
	HALT
	STOP
	DI
	EI
	RLCA
	RLA
	RRCA
	RRA
	RLC
	RL
	RRC
	RR
	SLA
	SRA
	SRL
	BIT
	SET
	RES
	JP
	JR
	CALL
	RST
	RET
	RETI
	PREFIX
)

var keywords = map[string]Instr{
	"ld": LD, "ldh": LDH, "push": PUSH, "pop": POP,
	"add": ADD, "adc": ADC, "sub": SUB, "sbc": SBC, "cp": CP,
	"and": AND, "or": OR, "xor": XOR, "inc": INC, "dec": DEC,
	"swap": SWAP, "daa": DAA, "cpl": CPL, "ccf": CCF, "scf": SCF,
	"nop": NOP, "halt": HALT, "stop": STOP, "di": DI, "ei": EI,
	"rlca": RLCA, "rla": RLA, "rrca": RRCA, "rra": RRA,
	"rlc": RLC, "rl": RL, "rrc": RRC, "rr": RR,
	"sla": SLA, "sra": SRA, "srl": SRL,
	"bit": BIT, "set": SET, "res": RES,
	"jp": JP, "jr": JR, "call": CALL, "rst": RST, "ret": RET, "reti": RETI,
	"prefix": PREFIX,
}

var instrNames = func() map[Instr]string {
	m := make(map[Instr]string, len(keywords))
	for k, v := range keywords {
		m[v] = k
	}
	return m
}()

func (i Instr) String() string {
	if s, ok := instrNames[i]; ok {
		return s
	}
	return fmt.Sprintf("Instr(%d)", uint8(i))
}

// LookupKeyword reports the instruction named by a lower-case identifier.
func LookupKeyword(ident string) (Instr, bool) {
	i, ok := keywords[ident]
	return i, ok
}

// Class groups instructions the way opcode sheets do.
type Class uint8

const (
	Misc Class = iota
	Transfer
	Arithmetic
	RotateShift
	BitOps
	Control
)

func (c Class) String() string {
	switch c {
	case Transfer:
		return "transfer"
	case Arithmetic:
		return "arithmetic"
	case RotateShift:
		return "rotate-shift"
	case BitOps:
		return "bit-operations"
	case Control:
		return "control"
	}
	return "misc"
}

// ClassOf maps an instruction to its class.
func ClassOf(i Instr) Class {
	switch i {
	case LD, LDH, PUSH, POP:
		return Transfer
	case ADD, ADC, SUB, SBC, CP, AND, OR, XOR, INC, DEC, DAA, CPL, CCF, SCF:
		return Arithmetic
	case RLCA, RLA, RRCA, RRA, RLC, RL, RRC, RR, SLA, SRA, SRL, SWAP:
		return RotateShift
	case BIT, SET, RES:
		return BitOps
	case JP, JR, CALL, RST, RET, RETI:
		return Control
	}
	return Misc
}
