package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"sort"

	"github.com/jwalitptl/clinic-cli/internal/handler"
	apperrors "github.com/jwalitptl/clinic-cli/pkg/errors"
)

// ChoiceExit ends the session.
const ChoiceExit = 9

type Handler interface {
	RegisterRoutes(handler.Registrar)
}

type route struct {
	title string
	fn    handler.HandlerFunc
}

// Router is the main menu: it shows the options, reads a choice and runs
// the matching handler until the user exits.
type Router struct {
	session *handler.Session
	routes  map[int]route
}

func NewRouter(session *handler.Session, handlers ...Handler) *Router {
	r := &Router{
		session: session,
		routes:  make(map[int]route),
	}
	for _, h := range handlers {
		h.RegisterRoutes(r)
	}
	return r
}

func (r *Router) Register(choice int, title string, fn handler.HandlerFunc) {
	if choice == ChoiceExit {
		panic(fmt.Sprintf("router: choice %d is reserved for exit", ChoiceExit))
	}
	if _, dup := r.routes[choice]; dup {
		panic(fmt.Sprintf("router: choice %d registered twice", choice))
	}
	r.routes[choice] = route{title: title, fn: fn}
}

// Run loops until exit is chosen or input ends. A handler failure is
// printed and the menu is shown again. Only a cancelled ctx or an input
// error is returned.
func (r *Router) Run(ctx context.Context) error {
	for {
		r.printMenu()

		choice, err := r.session.Prompt.ReadChoice(ctx, r.valid)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if choice == ChoiceExit {
			return nil
		}

		r.dispatch(ctx, choice)
	}
}

func (r *Router) valid(choice int) bool {
	if choice == ChoiceExit {
		return true
	}
	_, ok := r.routes[choice]
	return ok
}

func (r *Router) dispatch(ctx context.Context, choice int) {
	rt := r.routes[choice]
	log := r.session.Log.WithFields(map[string]interface{}{"choice": choice})

	defer func() {
		if p := recover(); p != nil {
			err := apperrors.Internal(fmt.Errorf("%v", p))
			log.Error(err, "handler panic recovered", "stack", string(debug.Stack()))
			r.session.Fail(err)
		}
	}()

	log.Debug("running menu option", "title", rt.title)
	if err := rt.fn(ctx, r.session); err != nil {
		log.Debug("menu option failed", "error", err.Error())
		if errors.Is(err, io.EOF) {
			r.session.Fail(apperrors.Input("input ended before all fields were entered", io.EOF))
			return
		}
		r.session.Fail(err)
	}
}

func (r *Router) printMenu() {
	choices := make([]int, 0, len(r.routes))
	for c := range r.routes {
		choices = append(choices, c)
	}
	sort.Ints(choices)

	out := r.session.Out
	fmt.Fprintln(out, "MAIN MENU")
	fmt.Fprintln(out, "---------")
	for _, c := range choices {
		fmt.Fprintf(out, "%d. %s\n", c, r.routes[c].title)
	}
	fmt.Fprintf(out, "%d. < EXIT\n", ChoiceExit)
}
