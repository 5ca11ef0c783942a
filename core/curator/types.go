package curator

import (
	"sort"
	"time"
)

// ReferenceMap maps an identifier to the path declared for it in a document.
type ReferenceMap map[string]string

// PresentMap maps an identifier to the absolute path of the entry found on disk.
type PresentMap map[string]string

// Orphan is an identifier present in exactly one of the reference and present maps.
type Orphan struct {
	// ID is the brace-delimited identifier.
	ID string `json:"id"`
	// Path is the absolute path on disk. Empty when the identifier is only referenced.
	Path string `json:"path,omitempty"`
	// Thumbnail is the companion thumbnail removed alongside a packaged widget.
	Thumbnail string `json:"thumbnail,omitempty"`
	// Referenced is true when a document points at the identifier but nothing is on disk.
	Referenced bool `json:"referenced"`
}

// Plan is the outcome of scanning one target directory, before anything is deleted.
type Plan struct {
	// RunID identifies the pass this plan belongs to.
	RunID string `json:"run_id"`
	// Dir is the absolute target directory.
	Dir string `json:"dir"`
	// Trash lists the legacy artifacts that would be removed first.
	Trash []string `json:"trash"`
	// References holds every identifier found in the documents.
	References ReferenceMap `json:"references"`
	// Present holds every identifier found in the asset subdirectories.
	Present PresentMap `json:"present"`
	// Orphans is the symmetric difference of References and Present, sorted by ID.
	Orphans []Orphan `json:"orphans"`
	// Documents counts the documents that were read.
	Documents int `json:"documents"`
	// ParseFailures counts the documents that could not be read or parsed.
	ParseFailures int `json:"parse_failures"`
	// StartedAt is when the scan began.
	StartedAt time.Time `json:"started_at"`
}

// Failure describes a single filesystem operation that did not succeed.
type Failure struct {
	Path  string `json:"path"`
	Op    string `json:"op"`
	Error string `json:"error"`
}

// Report summarises one cure pass over a target directory.
type Report struct {
	RunID         string    `json:"run_id"`
	Dir           string    `json:"dir"`
	DryRun        bool      `json:"dry_run"`
	StartedAt     time.Time `json:"started_at"`
	DurationMS    int64     `json:"duration_ms"`
	Documents     int       `json:"documents"`
	ParseFailures int       `json:"parse_failures"`
	References    int       `json:"references"`
	Present       int       `json:"present"`

	// Orphans lists identifiers found on disk without any reference.
	Orphans []string `json:"orphans"`
	// Missing lists identifiers referenced by a document without any file on disk.
	Missing []string `json:"missing"`

	Trash      []string  `json:"trash"`
	Deleted    []string  `json:"deleted"`
	Thumbnails []string  `json:"thumbnails"`
	Pruned     []string  `json:"pruned"`
	Failures   []Failure `json:"failures"`
	Cancelled  bool      `json:"cancelled"`
}

// Report status values.
const (
	StatusOK        = "ok"
	StatusPartial   = "partial"
	StatusCancelled = "cancelled"
)

// Status condenses the report into ok, partial (some operations failed) or cancelled.
func (r *Report) Status() string {
	switch {
	case r.Cancelled:
		return StatusCancelled
	case len(r.Failures) > 0:
		return StatusPartial
	default:
		return StatusOK
	}
}

// Report converts a plan into a dry-run report: nothing is deleted, orphans and
// trash candidates are listed as they would be processed.
func (p *Plan) Report() *Report {
	rep := &Report{
		RunID:     p.RunID,
		Dir:       p.Dir,
		DryRun:    true,
		StartedAt: p.StartedAt,
	}
	p.fill(rep)
	rep.Trash = append(rep.Trash, p.Trash...)
	rep.DurationMS = time.Since(p.StartedAt).Milliseconds()
	return rep
}

// fill copies the scan counts and orphan lists of the plan into rep.
func (p *Plan) fill(rep *Report) {
	rep.Documents = p.Documents
	rep.ParseFailures = p.ParseFailures
	rep.References = len(p.References)
	rep.Present = len(p.Present)
	for _, o := range p.Orphans {
		if o.Referenced {
			rep.Missing = append(rep.Missing, o.ID)
		} else {
			rep.Orphans = append(rep.Orphans, o.ID)
		}
	}
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
