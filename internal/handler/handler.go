package handler

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-cli/internal/console"
	"github.com/jwalitptl/clinic-cli/internal/repository"
	"github.com/jwalitptl/clinic-cli/pkg/logger"
)

// Session is the one interactive session: the user's terminal and the
// database gateway. Every menu handler receives it explicitly.
type Session struct {
	ID      uuid.UUID
	Prompt  *console.Prompter
	Gateway repository.Gateway
	Out     io.Writer
	ErrOut  io.Writer
	Log     *logger.Logger
}

func NewSession(in io.Reader, out, errOut io.Writer, gw repository.Gateway, log *logger.Logger) *Session {
	id := uuid.New()
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		ID:      id,
		Prompt:  console.NewPrompter(in, out),
		Gateway: gw,
		Out:     out,
		ErrOut:  errOut,
		Log:     log.WithFields(map[string]interface{}{"session_id": id.String()}),
	}
}

// HandlerFunc runs one menu option to completion.
type HandlerFunc func(ctx context.Context, s *Session) error

// Registrar binds menu choices to handlers.
type Registrar interface {
	Register(choice int, title string, fn HandlerFunc)
}
