package repository

import (
	"context"
	"io"

	"github.com/jwalitptl/clinic-cli/internal/model"
)

type (
	// Gateway owns the one database connection and runs statements on it,
	// one at a time.
	Gateway interface {
		ExecuteUpdate(ctx context.Context, stmt model.Statement) error
		ExecuteQueryAndPrint(ctx context.Context, stmt model.Statement, w io.Writer) (int, error)
		ExecuteQueryAndCollect(ctx context.Context, stmt model.Statement) ([][]string, error)
		ExecuteQueryCount(ctx context.Context, stmt model.Statement) (int, error)
		// CurrentSequenceValue returns -1 when the sequence has no value
		// in this session.
		CurrentSequenceValue(ctx context.Context, sequence string) (int, error)
		// InsertIfExists runs insert only when guard returns a row, both in
		// one transaction. It reports whether the insert ran.
		InsertIfExists(ctx context.Context, guard, insert model.Statement) (bool, error)
		Close() error
	}
)
