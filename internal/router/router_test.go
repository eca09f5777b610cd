package router

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-cli/internal/handler"
	"github.com/jwalitptl/clinic-cli/internal/handler/handlertest"
	"github.com/jwalitptl/clinic-cli/pkg/logger"
)

type stubHandler struct {
	choice int
	title  string
	fn     handler.HandlerFunc
}

func (h stubHandler) RegisterRoutes(r handler.Registrar) {
	r.Register(h.choice, h.title, h.fn)
}

func newRouter(input string, handlers ...Handler) (*Router, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	s := handler.NewSession(strings.NewReader(input), &out, &errOut, &handlertest.Gateway{}, logger.Nop())
	return NewRouter(s, handlers...), &out, &errOut
}

func counter(n *int) handler.HandlerFunc {
	return func(ctx context.Context, s *handler.Session) error {
		*n++
		return nil
	}
}

func TestRunMenu(t *testing.T) {
	var calls int
	r, out, _ := newRouter("9\n", stubHandler{choice: 1, title: "Add Doctor", fn: counter(&calls)})

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 0, calls)
	assert.Equal(t, "MAIN MENU\n---------\n1. Add Doctor\n9. < EXIT\nPlease make your choice: ", out.String())
}

func TestRunDispatch(t *testing.T) {
	var first, second int
	r, out, _ := newRouter("1\n2\n1\n9\n",
		stubHandler{choice: 1, title: "one", fn: counter(&first)},
		stubHandler{choice: 2, title: "two", fn: counter(&second)},
	)

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 2, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 4, strings.Count(out.String(), "MAIN MENU"))
}

func TestRunRejectsUnknownChoices(t *testing.T) {
	var calls int
	r, out, _ := newRouter("0\n10\n3\nthree\n1\n9\n", stubHandler{choice: 1, title: "one", fn: counter(&calls)})

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 4, strings.Count(out.String(), "Your input is invalid!"))
	assert.Equal(t, 2, strings.Count(out.String(), "MAIN MENU"))
}

func TestRunContainsFailures(t *testing.T) {
	var after int
	failing := func(ctx context.Context, s *handler.Session) error {
		return assert.AnError
	}
	panicking := func(ctx context.Context, s *handler.Session) error {
		var m map[string]int
		m["boom"] = 1
		return nil
	}

	r, _, errOut := newRouter("1\n2\n3\n9\n",
		stubHandler{choice: 1, title: "fails", fn: failing},
		stubHandler{choice: 2, title: "panics", fn: panicking},
		stubHandler{choice: 3, title: "works", fn: counter(&after)},
	)

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 1, after)
	lines := strings.Split(strings.TrimSuffix(errOut.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, assert.AnError.Error(), lines[0])
	assert.Contains(t, lines[1], "internal error")
}

func TestRunEndOfInput(t *testing.T) {
	r, _, _ := newRouter("", stubHandler{choice: 1, title: "one", fn: counter(new(int))})

	assert.NoError(t, r.Run(context.Background()))
}

func TestRegisterConflicts(t *testing.T) {
	noop := counter(new(int))

	assert.Panics(t, func() {
		newRouter("", stubHandler{choice: ChoiceExit, title: "exit", fn: noop})
	})
	assert.Panics(t, func() {
		newRouter("",
			stubHandler{choice: 1, title: "a", fn: noop},
			stubHandler{choice: 1, title: "b", fn: noop},
		)
	})
}
