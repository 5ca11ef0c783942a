package curator

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// scanPresent lists the asset subdirectories of dir and maps every entry carrying an
// identifier to its absolute path. Missing subdirectories, paths that are not
// directories and subdirectories matching a trash pattern are skipped.
func (c *Curator) scanPresent(log *zap.Logger, dir string) PresentMap {
	present := make(PresentMap)
	for _, name := range c.cfg.ScanDirs {
		if matchAny(c.cfg.TrashPatterns, name) {
			continue
		}
		sub := filepath.Join(dir, name)
		info, err := c.fs.Stat(sub)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Warn("Failed to stat asset directory", zap.String("path", sub), zap.Error(err))
			}
			continue
		}
		if !info.IsDir() {
			log.Debug("Asset path is not a directory, skipping", zap.String("path", sub))
			continue
		}

		entries, err := afero.ReadDir(c.fs, sub)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Warn("Failed to list asset directory", zap.String("path", sub), zap.Error(err))
			}
			continue
		}

		for _, e := range entries {
			id, ok := ExtractIdentifier(e.Name())
			if !ok {
				continue
			}
			present[id] = filepath.Join(sub, e.Name())
		}
	}
	return present
}
