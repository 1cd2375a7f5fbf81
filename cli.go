package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cjcho/arith-lexer-go/lexer"
)

const (
	exitRead     = 1
	exitEmpty    = 2
	exitTokenize = 3
	exitEncode   = 4
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// tokenView is the json/yaml shape of a token.
type tokenView struct {
	Kind  lexer.Kind `json:"kind" yaml:"kind"`
	Value *int32     `json:"value,omitempty" yaml:"value,omitempty"`
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		format  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "arithlex [expression]",
		Short: "Tokenize a space-delimited prefix arithmetic expression",
		Long: `arithlex splits an expression such as "( + 2 2 )" on single spaces and
prints one classified token per fragment.

With no argument the expression is read from stdin:
  echo "( * 2 3 )" | arithlex --format json
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			src, err := readSource(stdin, args)
			if err != nil {
				log.Error("read failed", "error", err)
				return &exitError{code: exitRead, err: err}
			}
			if src == "" {
				fmt.Fprintln(stderr, `usage: echo "( + 1 2 )" | arithlex`)
				return &exitError{code: exitEmpty, err: fmt.Errorf("empty input")}
			}

			toks, err := lexer.Lexer{}.WithLogger(log).Tokenize(src)
			if err != nil {
				log.Error("tokenize failed", "error", err)
				return &exitError{code: exitTokenize, err: fmt.Errorf("tokenize: %w", err)}
			}
			log.Debug("tokenized", "tokens", len(toks))

			if err := writeTokens(stdout, format, toks); err != nil {
				log.Error("encode failed", "format", format, "error", err)
				return &exitError{code: exitEncode, err: err}
			}
			return nil
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// readSource joins stdin lines with single spaces so a multi-line
// expression tokenizes the same as a one-line one.
func readSource(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<20)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.Join(lines, " "), nil
}

func writeTokens(w io.Writer, format string, toks []lexer.Token) error {
	switch format {
	case "text":
		for _, t := range toks {
			if _, err := fmt.Fprintln(w, t); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views(toks))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views(toks)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func views(toks []lexer.Token) []tokenView {
	out := make([]tokenView, len(toks))
	for i, t := range toks {
		out[i].Kind = t.Kind
		if t.Kind == lexer.IntegerLiteral {
			v := t.Value
			out[i].Value = &v
		}
	}
	return out
}
