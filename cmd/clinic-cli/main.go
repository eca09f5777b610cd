package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jwalitptl/clinic-cli/internal/config"
	"github.com/jwalitptl/clinic-cli/internal/handler"
	"github.com/jwalitptl/clinic-cli/internal/handler/appointment"
	"github.com/jwalitptl/clinic-cli/internal/handler/doctor"
	"github.com/jwalitptl/clinic-cli/internal/handler/patient"
	"github.com/jwalitptl/clinic-cli/internal/handler/report"
	"github.com/jwalitptl/clinic-cli/internal/repository/postgres"
	"github.com/jwalitptl/clinic-cli/internal/router"
	apperrors "github.com/jwalitptl/clinic-cli/pkg/errors"
	"github.com/jwalitptl/clinic-cli/pkg/logger"
	"github.com/jwalitptl/clinic-cli/pkg/metrics"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(prog string, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	args, err := config.ParseArgs(argv)
	if err != nil {
		fmt.Fprintf(stderr, "Usage: %s <dbname> <port> <user>\n", filepath.Base(prog))
		return exitUsage
	}

	// Load configuration
	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error - %v\n", err)
		return exitError
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: cfg.Log.TimeFormat,
		Output:     stderr,
	})

	if !postgres.DriverAvailable() {
		fmt.Fprintln(stderr, "Where is your PostgreSQL driver? It must be linked into this binary.")
		return exitError
	}

	// Initialize database
	fmt.Fprint(stdout, "Connecting to database...")
	fmt.Fprintf(stdout, "Connection URL: %s\n\n", cfg.Database.URL())
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Error(err, "connection failed", "url", cfg.Database.URL())
		fmt.Fprintf(stderr, "Error - Unable to Connect to Database: %s\n", apperrors.Message(err))
		fmt.Fprintln(stdout, "Make sure you started postgres on this machine")
		return exitError
	}
	fmt.Fprintln(stdout, "Done")

	m := metrics.New("clinic_cli")
	gw := postgres.NewGateway(db, m, log)
	session := handler.NewSession(stdin, stdout, stderr, gw, log)

	code := serve(context.Background(), session)
	logSummary(log, m)
	return code
}

// serve runs the menu and then closes the gateway exactly once, whatever
// happened during the session.
func serve(ctx context.Context, s *handler.Session) int {
	r := router.NewRouter(s,
		doctor.NewHandler(),
		patient.NewHandler(),
		appointment.NewHandler(),
		report.NewHandler(),
	)

	code := exitOK
	if err := r.Run(ctx); err != nil {
		s.Fail(err)
		code = exitError
	}

	fmt.Fprint(s.Out, "Disconnecting from database...")
	s.Gateway.Close()
	fmt.Fprint(s.Out, "Done\n\nBye !\n")
	return code
}

func logSummary(log *logger.Logger, m *metrics.Metrics) {
	summary, err := m.Summary()
	if err != nil {
		log.Warn("failed to gather metrics", "error", err.Error())
		return
	}
	fields := make(map[string]interface{}, len(summary))
	for k, v := range summary {
		fields[k] = v
	}
	log.WithFields(fields).Info("session statements")
}
