package curator

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// lstat stats path without following a trailing symlink when the filesystem allows it.
func (c *Curator) lstat(path string) (os.FileInfo, error) {
	if l, ok := c.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return c.fs.Stat(path)
}

// removeAll deletes path depth-first. Symlinks are removed, never followed.
// A missing path is skipped silently; every other failure is recorded and the
// walk continues with the remaining entries.
func (c *Curator) removeAll(log *zap.Logger, path string, rep *Report) bool {
	info, err := c.lstat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("Path already gone", zap.String("path", path))
		} else {
			c.fail(log, rep, "stat", path, err)
		}
		return false
	}

	if info.IsDir() {
		entries, err := afero.ReadDir(c.fs, path)
		if err != nil {
			c.fail(log, rep, "readdir", path, err)
			return false
		}
		for _, e := range entries {
			c.removeAll(log, filepath.Join(path, e.Name()), rep)
		}
	}

	if err := c.fs.Remove(path); err != nil {
		c.fail(log, rep, "remove", path, err)
		return false
	}
	return true
}

// pruneParent removes the immediate parent of path if it is now empty.
// Only one level is pruned, and the target directory itself is never removed.
func (c *Curator) pruneParent(log *zap.Logger, target, path string, rep *Report) {
	parent := filepath.Dir(path)
	if parent == target || parent == path {
		return
	}

	entries, err := afero.ReadDir(c.fs, parent)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.fail(log, rep, "readdir", parent, err)
		}
		return
	}
	if len(entries) > 0 {
		return
	}

	if err := c.fs.Remove(parent); err != nil {
		c.fail(log, rep, "rmdir", parent, err)
		return
	}
	rep.Pruned = append(rep.Pruned, parent)
	log.Debug("Pruned empty directory", zap.String("path", parent))
}
