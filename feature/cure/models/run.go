package models

import (
	"time"

	"asset-curator/core/curator"
)

// CureRun is one recorded cure pass.
type CureRun struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RunID         string    `gorm:"column:run_id;size:36;uniqueIndex" json:"run_id"`
	Directory     string    `gorm:"column:directory;size:512;index" json:"directory"`
	DryRun        bool      `gorm:"column:dry_run" json:"dry_run"`
	Status        string    `gorm:"column:status;size:16" json:"status"`
	StartedAt     time.Time `gorm:"column:started_at;index" json:"started_at"`
	DurationMS    int64     `gorm:"column:duration_ms" json:"duration_ms"`
	Documents     int       `gorm:"column:documents" json:"documents"`
	ParseFailures int       `gorm:"column:parse_failures" json:"parse_failures"`
	References    int       `gorm:"column:references_count" json:"references"`
	Present       int       `gorm:"column:present" json:"present"`
	Orphans       int       `gorm:"column:orphans" json:"orphans"`
	Missing       int       `gorm:"column:missing" json:"missing"`
	Trash         int       `gorm:"column:trash" json:"trash"`
	Deleted       int       `gorm:"column:deleted" json:"deleted"`
	Thumbnails    int       `gorm:"column:thumbnails" json:"thumbnails"`
	Pruned        int       `gorm:"column:pruned" json:"pruned"`
	Failures      int       `gorm:"column:failures" json:"failures"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName overrides the table name used by CureRun.
func (CureRun) TableName() string {
	return "cure_runs"
}

// FromReport flattens a cure report into a history row.
func FromReport(rep *curator.Report) CureRun {
	return CureRun{
		RunID:         rep.RunID,
		Directory:     rep.Dir,
		DryRun:        rep.DryRun,
		Status:        rep.Status(),
		StartedAt:     rep.StartedAt,
		DurationMS:    rep.DurationMS,
		Documents:     rep.Documents,
		ParseFailures: rep.ParseFailures,
		References:    rep.References,
		Present:       rep.Present,
		Orphans:       len(rep.Orphans),
		Missing:       len(rep.Missing),
		Trash:         len(rep.Trash),
		Deleted:       len(rep.Deleted),
		Thumbnails:    len(rep.Thumbnails),
		Pruned:        len(rep.Pruned),
		Failures:      len(rep.Failures),
	}
}
