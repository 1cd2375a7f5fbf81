package lexer

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	Unknown Kind = iota
	IntegerLiteral
	OpenBracket
	CloseBracket
	Multiply
	Divide
	Add
	Subtract
)

var kindNames = [...]string{
	Unknown:        "UNKNOWN",
	IntegerLiteral: "INT",
	OpenBracket:    "LP",
	CloseBracket:   "RP",
	Multiply:       "MUL",
	Divide:         "DIV",
	Add:            "ADD",
	Subtract:       "SUB",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid token kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", b)
}

// Token is a comparable value; Value is only meaningful for IntegerLiteral.
type Token struct {
	Kind  Kind
	Value int32
}

func Int(v int32) Token { return Token{Kind: IntegerLiteral, Value: v} }

func (t Token) String() string {
	switch t.Kind {
	case IntegerLiteral:
		return "INT(" + strconv.FormatInt(int64(t.Value), 10) + ")"
	case OpenBracket:
		return "("
	case CloseBracket:
		return ")"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Add:
		return "+"
	case Subtract:
		return "-"
	default:
		return "UNKNOWN"
	}
}
