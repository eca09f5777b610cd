package handler

import (
	"fmt"

	apperrors "github.com/jwalitptl/clinic-cli/pkg/errors"
)

const (
	MsgAdded          = "ADDED VALUES"
	MsgNotAvailable   = "APPOINTMENT NOT AVAILABLE"
	totalRowsTemplate = "total row(s): %d\n"
)

func (s *Session) Added() {
	fmt.Fprintln(s.Out, MsgAdded)
}

func (s *Session) Total(n int) {
	fmt.Fprintf(s.Out, totalRowsTemplate, n)
}

// Fail prints err as a single line on the error stream.
func (s *Session) Fail(err error) {
	fmt.Fprintln(s.ErrOut, apperrors.Message(err))
}
