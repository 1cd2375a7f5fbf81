// Package lexer splits a space-delimited prefix arithmetic expression such
// as "( + 2 2 )" into classified tokens.
package lexer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

var (
	ErrIntegerOverflow = errors.New("integer literal out of 32-bit range")
	ErrEmptyLiteral    = errors.New("empty fragment")
)

// Error reports the fragment that aborted a Tokenize call.
type Error struct {
	Index    int
	Fragment string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fragment %d %q: %v", e.Index, e.Fragment, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}

// Lexer is stateless; the zero value is ready to use.
type Lexer struct {
	log *slog.Logger
}

var _ Tokenizer = Lexer{}

func (l Lexer) WithLogger(log *slog.Logger) Lexer {
	l.log = log
	return l
}

func Tokenize(input string) ([]Token, error) {
	return Lexer{}.Tokenize(input)
}

// Tokenize returns exactly one token per fragment of input, in order.
// On error no tokens are returned.
func (l Lexer) Tokenize(input string) ([]Token, error) {
	frags := Fragments(input)
	toks := make([]Token, 0, len(frags))
	for i, f := range frags {
		tok, err := Classify(f)
		if err != nil {
			if l.log != nil {
				l.log.LogAttrs(context.Background(), slog.LevelDebug, "tokenize failed",
					slog.Int("index", i), slog.String("fragment", f), slog.Any("error", err))
			}
			return nil, &Error{Index: i, Fragment: f, Err: err}
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// Fragments splits on U+0020 only. Runs of spaces are not collapsed, so
// "" and "a  b" produce empty fragments.
func Fragments(input string) []string {
	return strings.Split(input, " ")
}

func Classify(frag string) (Token, error) {
	switch frag {
	case "(":
		return Token{Kind: OpenBracket}, nil
	case ")":
		return Token{Kind: CloseBracket}, nil
	case "*":
		return Token{Kind: Multiply}, nil
	case "+":
		return Token{Kind: Add}, nil
	case "/":
		return Token{Kind: Divide}, nil
	case "-":
		return Token{Kind: Subtract}, nil
	case "":
		return Token{}, ErrEmptyLiteral
	}
	if !allDigits(frag) {
		return Token{Kind: Unknown}, nil
	}
	v, err := strconv.ParseInt(frag, 10, 32)
	if err != nil {
		// only ErrRange is possible for a non-empty digit string
		return Token{}, ErrIntegerOverflow
	}
	return Int(int32(v)), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
