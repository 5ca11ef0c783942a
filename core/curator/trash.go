package curator

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// matchAny reports whether name matches one of the glob patterns, ignoring case.
func matchAny(patterns []string, name string) bool {
	lower := strings.ToLower(name)
	for _, p := range patterns {
		ok, err := doublestar.Match(strings.ToLower(p), lower)
		if err == nil && ok {
			return true
		}
	}
	return false
}

// listTrash returns the direct children of dir matching the trash patterns.
func (c *Curator) listTrash(log *zap.Logger, dir string) []string {
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		log.Warn("Failed to list target directory for trash", zap.Error(err))
		return nil
	}

	var trash []string
	for _, e := range entries {
		if matchAny(c.cfg.TrashPatterns, e.Name()) {
			trash = append(trash, filepath.Join(dir, e.Name()))
		}
	}
	return trash
}

// cleanTrash removes every trash candidate of dir before any scanning happens.
func (c *Curator) cleanTrash(log *zap.Logger, dir string, rep *Report) {
	for _, path := range c.listTrash(log, dir) {
		if c.removeAll(log, path, rep) {
			rep.Trash = append(rep.Trash, path)
			log.Debug("Removed legacy artifact", zap.String("path", path))
		}
	}
}
