package cure

import (
	"context"
	"fmt"

	"asset-curator/core/curator"
	"asset-curator/feature/cure/models"

	"gorm.io/gorm"
)

// HistoryStore persists one row per cure pass.
type HistoryStore struct {
	db *gorm.DB
}

// NewHistoryStore creates a history store on top of db.
func NewHistoryStore(db *gorm.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Migrate creates or updates the cure_runs table.
func (s *HistoryStore) Migrate() error {
	if err := s.db.AutoMigrate(&models.CureRun{}); err != nil {
		return fmt.Errorf("failed to migrate cure_runs: %w", err)
	}
	return nil
}

// Record stores the summary of rep.
func (s *HistoryStore) Record(ctx context.Context, rep *curator.Report) error {
	run := models.FromReport(rep)
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", rep.RunID, err)
	}
	return nil
}

// List returns the most recent runs, newest first, optionally for a single directory.
func (s *HistoryStore) List(ctx context.Context, directory string, limit int) ([]models.CureRun, error) {
	q := s.db.WithContext(ctx).Order("started_at desc")
	if directory != "" {
		q = q.Where("directory = ?", directory)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var runs []models.CureRun
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
