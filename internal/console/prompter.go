// Package console reads line oriented answers from an interactive user.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/jwalitptl/clinic-cli/pkg/errors"
)

const (
	choicePrompt  = "Please make your choice: "
	invalidChoice = "Your input is invalid!"
)

// ErrTooManyAttempts is returned by ReadChoice once MaxAttempts invalid
// answers have been given.
var ErrTooManyAttempts = errors.New("too many invalid choices")

type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// MaxAttempts bounds ReadChoice; zero means no bound.
	MaxAttempts int
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Field prints "\t<label>: " and returns the next line exactly as typed,
// minus its line terminator.
func (p *Prompter) Field(label string) (string, error) {
	fmt.Fprintf(p.out, "\t%s: ", label)
	return p.readLine()
}

// Println writes a line of text between prompts.
func (p *Prompter) Println(text string) {
	fmt.Fprintln(p.out, text)
}

// ReadChoice asks until the user enters an integer accepted by valid. It
// stops on end of input, on ctx cancellation (checked before every prompt)
// or after MaxAttempts rejected answers.
func (p *Prompter) ReadChoice(ctx context.Context, valid func(int) bool) (int, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprint(p.out, choicePrompt)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		choice, convErr := strconv.Atoi(line)
		if convErr == nil && (valid == nil || valid(choice)) {
			return choice, nil
		}

		fmt.Fprintln(p.out, invalidChoice)
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return 0, apperrors.Input(ErrTooManyAttempts.Error(), ErrTooManyAttempts)
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", apperrors.Input("failed to read input", err)
	}
	return trimEOL(line), nil
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
