package cmd

import (
	"fmt"

	"asset-curator/core/config"
	"asset-curator/core/curator"
	"asset-curator/core/database"
	"asset-curator/core/logger"
	"asset-curator/core/storage"
	"asset-curator/feature/cure"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// runtime bundles everything a command needs.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *cure.Service
}

// setup loads configuration and wires the curator with its optional history and report sink.
func setup() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Curator.Validate(); err != nil {
		return nil, fmt.Errorf("invalid curator config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	// Run history (Optional)
	var history *cure.HistoryStore
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, run history disabled", zap.Error(err))
		} else {
			history = cure.NewHistoryStore(db)
			if err := history.Migrate(); err != nil {
				logg.Warn("Run history disabled", zap.Error(err))
				history = nil
			}
		}
	}

	// Report sink (Optional)
	var publisher *cure.ReportPublisher
	if cfg.Storage.Enabled {
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Report sink disabled", zap.Error(err))
		} else {
			publisher = cure.NewReportPublisher(client, cfg.Storage.Bucket, cfg.Storage.Prefix, logg)
		}
	}

	c := curator.New(afero.NewOsFs(), logg, cfg.Curator)
	return &runtime{
		cfg:     cfg,
		logger:  logg,
		service: cure.NewService(c, history, publisher, logg),
	}, nil
}

// targets picks the directories to work on: explicit args, then --library, then configuration.
func (rt *runtime) targets(args []string, library string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if library != "" {
		return curator.Targets(afero.NewOsFs(), library)
	}

	dirs, err := rt.service.Targets()
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no directories given; pass them as arguments, use --library or set CURATOR_DIRECTORIES")
	}
	return dirs, nil
}
