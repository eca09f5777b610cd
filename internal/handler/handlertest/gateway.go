// Package handlertest provides an in-memory repository.Gateway for handler
// and menu tests.
package handlertest

import (
	"context"
	"io"

	"github.com/jwalitptl/clinic-cli/internal/model"
	"github.com/jwalitptl/clinic-cli/internal/render"
	apperrors "github.com/jwalitptl/clinic-cli/pkg/errors"
)

type Call struct {
	Op    string
	Stmt  model.Statement
	Guard model.Statement
}

// Gateway records every call and answers from its fields.
type Gateway struct {
	Calls []Call

	Columns []string
	Rows    [][]string

	// GuardRows is the row count ExecuteQueryCount reports.
	GuardRows int
	// GuardMatched decides whether InsertIfExists inserts.
	GuardMatched bool
	Sequence     int

	// Err, when set, fails every statement.
	Err        error
	Panic      interface{}
	CloseCount int
}

func (g *Gateway) record(op string, stmt model.Statement) error {
	g.Calls = append(g.Calls, Call{Op: op, Stmt: stmt})
	if g.Panic != nil {
		panic(g.Panic)
	}
	if g.Err != nil {
		return apperrors.Statement(op, g.Err)
	}
	return nil
}

func (g *Gateway) ExecuteUpdate(ctx context.Context, stmt model.Statement) error {
	return g.record("update", stmt)
}

func (g *Gateway) ExecuteQueryAndPrint(ctx context.Context, stmt model.Statement, w io.Writer) (int, error) {
	if err := g.record("print", stmt); err != nil {
		return 0, err
	}
	return render.Table(w, render.NewSliceCursor(g.Columns, g.Rows))
}

func (g *Gateway) ExecuteQueryAndCollect(ctx context.Context, stmt model.Statement) ([][]string, error) {
	if err := g.record("collect", stmt); err != nil {
		return nil, err
	}
	return render.Collect(render.NewSliceCursor(g.Columns, g.Rows))
}

func (g *Gateway) ExecuteQueryCount(ctx context.Context, stmt model.Statement) (int, error) {
	if err := g.record("count", stmt); err != nil {
		return 0, err
	}
	return g.GuardRows, nil
}

func (g *Gateway) CurrentSequenceValue(ctx context.Context, sequence string) (int, error) {
	if err := g.record("currval", model.NewStatement("select currval($1)", sequence)); err != nil {
		return -1, err
	}
	return g.Sequence, nil
}

func (g *Gateway) InsertIfExists(ctx context.Context, guard, insert model.Statement) (bool, error) {
	g.Calls = append(g.Calls, Call{Op: "insert_if_exists", Stmt: insert, Guard: guard})
	if g.Err != nil {
		return false, apperrors.Statement("insert_if_exists", g.Err)
	}
	return g.GuardMatched, nil
}

func (g *Gateway) Close() error {
	g.CloseCount++
	return nil
}

// Ops lists the recorded operation names in call order.
func (g *Gateway) Ops() []string {
	ops := make([]string, len(g.Calls))
	for i, c := range g.Calls {
		ops[i] = c.Op
	}
	return ops
}
