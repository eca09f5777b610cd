package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-cli/internal/repository"
	"github.com/jwalitptl/clinic-cli/pkg/logger"
	"github.com/jwalitptl/clinic-cli/pkg/metrics"
)

type gateway struct {
	BaseRepository
	metrics *metrics.Metrics
	log     *logger.Logger
	closed  bool
}

func NewGateway(db *sqlx.DB, m *metrics.Metrics, log *logger.Logger) repository.Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &gateway{
		BaseRepository: NewBaseRepository(db),
		metrics:        m,
		log:            log,
	}
}
