package cure

import (
	"context"
	"errors"
	"testing"
	"time"

	"asset-curator/core/curator"
	"asset-curator/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupMemoryDB(t *testing.T) *HistoryStore {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := NewHistoryStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func sampleReport(runID, dir string, started time.Time) *curator.Report {
	return &curator.Report{
		RunID:      runID,
		Dir:        dir,
		StartedAt:  started,
		DurationMS: 3,
		Documents:  1,
		References: 1,
		Present:    2,
		Orphans:    []string{"{xyz}"},
		Deleted:    []string{dir + "/images/{xyz}.jpg"},
	}
}

func TestHistoryStore_Record(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `cure_runs`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := NewHistoryStore(db).Record(context.Background(), sampleReport("run-1", "/lib/a", time.Now()))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryStore_RecordError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `cure_runs`").WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	err := NewHistoryStore(db).Record(context.Background(), sampleReport("run-1", "/lib/a", time.Now()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record run run-1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryStore_ListFiltersByDirectory(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "run_id", "directory", "status", "started_at"}).
		AddRow(7, "run-7", "/lib/a", "ok", time.Now())
	mock.ExpectQuery("SELECT \\* FROM `cure_runs` WHERE directory = \\? ORDER BY started_at desc").
		WillReturnRows(rows)

	runs, err := NewHistoryStore(db).List(context.Background(), "/lib/a", 5)

	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-7", runs[0].RunID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryStore_SQLiteRoundTrip(t *testing.T) {
	store := setupMemoryDB(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(ctx, sampleReport("run-1", "/lib/a", base)))
	require.NoError(t, store.Record(ctx, sampleReport("run-2", "/lib/b", base.Add(time.Minute))))
	require.NoError(t, store.Record(ctx, sampleReport("run-3", "/lib/a", base.Add(2*time.Minute))))

	all, err := store.List(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "run-3", all[0].RunID)
	assert.Equal(t, "run-1", all[2].RunID)

	onlyA, err := store.List(ctx, "/lib/a", 10)
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	assert.Equal(t, 1, onlyA[0].Deleted)
	assert.Equal(t, curator.StatusOK, onlyA[0].Status)

	limited, err := store.List(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
