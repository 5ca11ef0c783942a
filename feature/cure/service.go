package cure

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"asset-curator/core/curator"
	"asset-curator/feature/cure/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrHistoryDisabled is returned when no history store is configured.
	ErrHistoryDisabled = errors.New("run history is disabled")
	// ErrNoRoots is returned when neither a library nor explicit directories are configured.
	ErrNoRoots = errors.New("no cure roots configured")
	// ErrOutsideRoots is returned for directories that are not a configured target.
	ErrOutsideRoots = errors.New("directory is not a configured cure target")
)

// Service coordinates cure passes with the optional history store and report sink.
type Service struct {
	curator   *curator.Curator
	history   *HistoryStore
	publisher *ReportPublisher
	logger    *zap.Logger

	// mu keeps passes sequential inside the process.
	mu    sync.Mutex
	group singleflight.Group
}

// NewService creates a new cure service. history and publisher may be nil.
func NewService(c *curator.Curator, history *HistoryStore, publisher *ReportPublisher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		curator:   c,
		history:   history,
		publisher: publisher,
		logger:    logger,
	}
}

// Targets returns the configured cure targets: explicit directories first, then library children.
func (s *Service) Targets() ([]string, error) {
	cfg := s.curator.Config()
	dirs := append([]string(nil), cfg.Directories...)
	if cfg.Library != "" {
		children, err := curator.Targets(s.curator.Fs(), cfg.Library)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, children...)
	}
	return dirs, nil
}

// Authorize maps a requested directory to a configured target.
// Relative names resolve against the library; only its immediate children are accepted.
func (s *Service) Authorize(dir string) (string, error) {
	cfg := s.curator.Config()
	if cfg.Library == "" && len(cfg.Directories) == 0 {
		return "", ErrNoRoots
	}
	if cfg.Library != "" && !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.Library, dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for _, d := range cfg.Directories {
		if a, err := filepath.Abs(d); err == nil && a == abs {
			return abs, nil
		}
	}
	if cfg.Library != "" {
		lib, err := filepath.Abs(cfg.Library)
		if err != nil {
			return "", err
		}
		if filepath.Dir(abs) == lib && abs != lib {
			return abs, nil
		}
	}
	return "", ErrOutsideRoots
}

// Cure runs a pass over dir. Concurrent calls for the same directory share one pass.
func (s *Service) Cure(ctx context.Context, dir string) *curator.Report {
	key := filepath.Clean(dir)
	if abs, err := filepath.Abs(dir); err == nil {
		key = abs
	}

	v, _, shared := s.group.Do(key, func() (interface{}, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		rep := s.curator.Cure(ctx, dir)
		s.Record(ctx, rep)
		return rep, nil
	})
	if shared {
		s.logger.Debug("Shared in-flight cure pass", zap.String("dir", key))
	}
	return v.(*curator.Report)
}

// CureAll cures every directory in order.
func (s *Service) CureAll(ctx context.Context, dirs []string) []*curator.Report {
	reports := make([]*curator.Report, 0, len(dirs))
	for _, dir := range dirs {
		reports = append(reports, s.Cure(ctx, dir))
	}
	return reports
}

// Plan scans dir without touching it.
func (s *Service) Plan(ctx context.Context, dir string) (*curator.Plan, error) {
	return s.curator.Plan(ctx, dir)
}

// Preview returns the dry-run report for dir and records it.
func (s *Service) Preview(ctx context.Context, dir string) (*curator.Report, error) {
	plan, err := s.curator.Plan(ctx, dir)
	if err != nil {
		return nil, err
	}
	rep := plan.Report()
	s.Record(ctx, rep)
	return rep, nil
}

// Apply executes a previously computed plan.
func (s *Service) Apply(ctx context.Context, plan *curator.Plan) *curator.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	rep := s.curator.Apply(ctx, plan)
	s.Record(ctx, rep)
	return rep
}

// History lists recorded runs.
func (s *Service) History(ctx context.Context, dir string, limit int) ([]models.CureRun, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.List(ctx, dir, limit)
}

// Record stores and publishes rep. Failures are logged and never affect the pass.
func (s *Service) Record(ctx context.Context, rep *curator.Report) {
	log := s.logger.With(zap.String("run_id", rep.RunID), zap.String("dir", rep.Dir))

	if s.history != nil {
		if err := s.history.Record(ctx, rep); err != nil {
			log.Warn("Failed to record cure run", zap.Error(err))
		}
	}
	if s.publisher != nil {
		key, err := s.publisher.Publish(ctx, rep)
		if err != nil {
			log.Warn("Failed to publish cure report", zap.Error(err))
			return
		}
		log.Debug("Published cure report", zap.String("key", key))
	}
}
