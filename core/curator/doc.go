// Package curator removes asset files that no page document references anymore.
//
// A target directory holds a set of page documents (*.svg) next to a fixed list of
// asset subdirectories (audios, images, videos, teacherGuideObjects, widgets). Every
// asset carries a brace-delimited identifier in its name, e.g. "images/{0a1b}.jpg".
// Documents point at assets through a handful of element attributes that embed the
// same identifier.
//
// # Pipeline
//
// One cure pass over a target directory runs four stages in a fixed order:
//
//  1. Trash: direct children matching the legacy trash patterns (*.swf) are removed.
//  2. References: every document directly under the directory is parsed and the
//     identifiers it points at are collected into a ReferenceMap.
//  3. Present: the asset subdirectories are listed and every entry carrying an
//     identifier lands in a PresentMap.
//  4. Reconcile: the symmetric difference of both key sets is computed. Identifiers
//     that exist only on disk are deleted (with the widget thumbnail, if any) and
//     the parent directory is removed when it ends up empty.
//
// Identifiers that exist only in documents are reported as missing and never cause
// a deletion.
//
// # Failures
//
// A pass never aborts on filesystem or parse faults. Malformed documents contribute
// nothing; failed deletions are logged and collected into Report.Failures and the
// pass continues with the next orphan.
//
// # Usage
//
//	c := curator.New(afero.NewOsFs(), logger, cfg)
//	report := c.Cure(ctx, "/srv/library/doc-1")
//
//	// Preview without touching the disk
//	plan, err := c.Plan(ctx, "/srv/library/doc-1")
//	fmt.Println(plan.Report().Orphans)
package curator
