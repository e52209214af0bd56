package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/monkeyexplorer/internal/catalog"
	"github.com/dbsmedya/monkeyexplorer/internal/config"
	"github.com/dbsmedya/monkeyexplorer/internal/display"
	"github.com/dbsmedya/monkeyexplorer/internal/logger"
	"github.com/dbsmedya/monkeyexplorer/internal/metrics"
)

// session bundles what every command needs: configuration, a logger
// tagged with a session ID, and a catalog wired to the metrics recorder.
type session struct {
	id       string
	cfg      *config.Config
	log      *logger.Logger
	catalog  *catalog.Catalog
	recorder *metrics.Recorder
	render   *display.Renderer
}

func newSession(cmd *cobra.Command) (*session, error) {
	// Load configuration
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.WrapWidth, overrides.Seed, overrides.NoColor)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Initialize logger
	baseLog, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	id := uuid.NewString()
	log := baseLog.WithSession(id).WithCommand(cmd.Name())

	recorder := metrics.NewRecorder(prometheus.NewRegistry())

	cat, err := catalog.New(catalog.DefaultMonkeys(),
		catalog.WithSeed(cfg.Catalog.Seed),
		catalog.WithObserver(recorder),
		catalog.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	log.Debugw("session ready", "monkeys", cat.Count(), "seed", cfg.Catalog.Seed)

	return &session{
		id:       id,
		cfg:      cfg,
		log:      log,
		catalog:  cat,
		recorder: recorder,
		render:   display.NewRenderer(cmd.OutOrStdout(), cfg.Display),
	}, nil
}

// close exports session metrics when configured and flushes the logger.
func (s *session) close() error {
	defer func() { _ = s.log.Sync() }()

	if s.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := s.recorder.WriteTextfile(s.cfg.Metrics.Textfile); err != nil {
		s.log.Errorw("metrics export failed", "path", s.cfg.Metrics.Textfile, "error", err)
		return err
	}
	s.log.Infow("metrics exported", "path", s.cfg.Metrics.Textfile)
	return nil
}

// withSession runs fn inside a session and reports the first error.
func withSession(cmd *cobra.Command, fn func(*session) error) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	runErr := fn(s)
	closeErr := s.close()
	if runErr != nil {
		return runErr
	}
	return closeErr
}
