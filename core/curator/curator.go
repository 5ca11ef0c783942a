package curator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Curator runs cure passes against target directories.
// It holds configuration only; all per-pass state lives in Plan and Report values.
type Curator struct {
	fs     afero.Fs
	logger *zap.Logger
	cfg    Config
}

// New creates a Curator operating on fs. Empty configuration fields fall back to DefaultConfig.
func New(fs afero.Fs, logger *zap.Logger, cfg Config) *Curator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Curator{
		fs:     fs,
		logger: logger,
		cfg:    cfg.withDefaults(),
	}
}

// Config returns the effective configuration.
func (c *Curator) Config() Config {
	return c.cfg
}

// Fs returns the filesystem the curator operates on.
func (c *Curator) Fs() afero.Fs {
	return c.fs
}

// Cure runs one full pass over dir: trash, references, present files, reconcile.
// Filesystem faults never abort the pass; they are collected into the report.
func (c *Curator) Cure(ctx context.Context, dir string) *Report {
	rep := &Report{RunID: uuid.NewString(), Dir: dir, StartedAt: time.Now()}
	log := c.logger.With(zap.String("dir", dir), zap.String("run_id", rep.RunID))

	abs, err := c.resolve(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("Target directory does not exist, nothing to cure")
		} else {
			c.fail(log, rep, "stat", dir, err)
		}
		return c.finish(log, rep)
	}
	rep.Dir = abs

	if c.cancelled(ctx, log, rep) {
		return c.finish(log, rep)
	}
	c.cleanTrash(log, abs, rep)

	if c.cancelled(ctx, log, rep) {
		return c.finish(log, rep)
	}
	plan := c.scan(log, abs)
	plan.RunID = rep.RunID
	plan.StartedAt = rep.StartedAt

	c.reconcile(ctx, log, plan, rep)
	return c.finish(log, rep)
}

// CureAll cures every directory in order. Passes are independent of each other.
func (c *Curator) CureAll(ctx context.Context, dirs []string) []*Report {
	reports := make([]*Report, 0, len(dirs))
	for _, dir := range dirs {
		reports = append(reports, c.Cure(ctx, dir))
	}
	return reports
}

// Plan scans dir without modifying anything and returns what a pass would do.
// Trash candidates are left out of the scan, so Apply on the plan matches Cure.
func (c *Curator) Plan(ctx context.Context, dir string) (*Plan, error) {
	abs, err := c.resolve(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target %s: %w", dir, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := c.logger.With(zap.String("dir", abs), zap.String("run_id", runID))
	started := time.Now()

	trash := c.listTrash(log, abs)
	plan := c.scan(log, abs)
	plan.RunID = runID
	plan.StartedAt = started
	plan.Trash = trash
	return plan, nil
}

// Apply executes a plan produced by Plan: trash first, then every orphan that exists on disk.
func (c *Curator) Apply(ctx context.Context, plan *Plan) *Report {
	rep := &Report{RunID: plan.RunID, Dir: plan.Dir, StartedAt: time.Now()}
	if rep.RunID == "" {
		rep.RunID = uuid.NewString()
	}
	log := c.logger.With(zap.String("dir", plan.Dir), zap.String("run_id", rep.RunID))

	if c.cancelled(ctx, log, rep) {
		return c.finish(log, rep)
	}
	for _, path := range plan.Trash {
		if c.removeAll(log, path, rep) {
			rep.Trash = append(rep.Trash, path)
		}
	}

	c.reconcile(ctx, log, plan, rep)
	return c.finish(log, rep)
}

// Targets lists the immediate subdirectories of a document library, sorted by name.
func Targets(fs afero.Fs, library string) ([]string, error) {
	entries, err := afero.ReadDir(fs, library)
	if err != nil {
		return nil, fmt.Errorf("failed to list library %s: %w", library, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(library, e.Name()))
		}
	}
	return dirs, nil
}

// resolve makes dir absolute and checks that it is an existing directory.
func (c *Curator) resolve(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := c.fs.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

// cancelled marks the report and returns true once ctx is done.
func (c *Curator) cancelled(ctx context.Context, log *zap.Logger, rep *Report) bool {
	if ctx.Err() == nil {
		return false
	}
	rep.Cancelled = true
	log.Warn("Cure pass cancelled", zap.Error(ctx.Err()))
	return true
}

// fail records and logs a failed operation.
func (c *Curator) fail(log *zap.Logger, rep *Report, op, path string, err error) {
	rep.Failures = append(rep.Failures, Failure{Path: path, Op: op, Error: err.Error()})
	log.Warn("Curator operation failed", zap.String("op", op), zap.String("path", path), zap.Error(err))
}

func (c *Curator) finish(log *zap.Logger, rep *Report) *Report {
	rep.DurationMS = time.Since(rep.StartedAt).Milliseconds()
	log.Info("Cure pass finished",
		zap.String("status", rep.Status()),
		zap.Int("documents", rep.Documents),
		zap.Int("references", rep.References),
		zap.Int("present", rep.Present),
		zap.Int("deleted", len(rep.Deleted)),
		zap.Int("missing", len(rep.Missing)),
		zap.Int("failures", len(rep.Failures)),
		zap.Int64("duration_ms", rep.DurationMS),
	)
	return rep
}
