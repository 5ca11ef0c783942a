package curator

import (
	"context"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// OrphanSet returns the identifiers present in exactly one of refs and present, sorted.
// Identifiers found in both are never orphans, whatever their paths.
func OrphanSet(refs ReferenceMap, present PresentMap) []string {
	var out []string
	for _, id := range sortedKeys(refs) {
		if _, ok := present[id]; !ok {
			out = append(out, id)
		}
	}
	for _, id := range sortedKeys(present) {
		if _, ok := refs[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// scan builds the reference and present maps of dir and derives the orphans.
func (c *Curator) scan(log *zap.Logger, dir string) *Plan {
	refs, documents, failures := c.scanReferences(log, dir)
	present := c.scanPresent(log, dir)

	plan := &Plan{
		Dir:           dir,
		References:    refs,
		Present:       present,
		Documents:     documents,
		ParseFailures: failures,
	}

	for _, id := range OrphanSet(refs, present) {
		path, onDisk := present[id]
		if !onDisk {
			plan.Orphans = append(plan.Orphans, Orphan{ID: id, Referenced: true})
			continue
		}
		o := Orphan{ID: id, Path: path}
		if strings.HasSuffix(path, c.cfg.WidgetSuffix) {
			thumb := ThumbnailPath(path, c.cfg.WidgetSuffix, c.cfg.ThumbnailSuffix)
			if ok, _ := afero.Exists(c.fs, thumb); ok {
				o.Thumbnail = thumb
			}
		}
		plan.Orphans = append(plan.Orphans, o)
	}

	log.Debug("Scan complete",
		zap.Int("documents", documents),
		zap.Int("references", len(refs)),
		zap.Int("present", len(present)),
		zap.Int("orphans", len(plan.Orphans)),
	)
	return plan
}

// reconcile deletes every orphan of plan that exists on disk, together with its
// widget thumbnail, then prunes the parent directory when it is left empty.
// Identifiers that are only referenced are reported as missing and skipped.
func (c *Curator) reconcile(ctx context.Context, log *zap.Logger, plan *Plan, rep *Report) {
	plan.fill(rep)

	for _, o := range plan.Orphans {
		if o.Referenced {
			log.Debug("Referenced asset missing on disk", zap.String("id", o.ID))
			continue
		}
		if c.cancelled(ctx, log, rep) {
			return
		}

		if o.Thumbnail != "" && c.removeAll(log, o.Thumbnail, rep) {
			rep.Thumbnails = append(rep.Thumbnails, o.Thumbnail)
		}
		if c.removeAll(log, o.Path, rep) {
			rep.Deleted = append(rep.Deleted, o.Path)
			log.Info("Removed unreferenced asset", zap.String("id", o.ID), zap.String("path", o.Path))
		}
		c.pruneParent(log, plan.Dir, o.Path, rep)
	}
}
