package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "jobs.db"))
	if err != nil {
		t.Fatalf("failed to create test DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestCreateAndGetJob создание и чтение задачи
func TestCreateAndGetJob(t *testing.T) {
	db := newTestDB(t)

	job := &Job{
		ID:          uuid.New().String(),
		Mode:        JobModeDedup,
		SourceFiles: "visitas.xlsx",
		Sheet:       "Visitas",
		KeyMode:     "store",
	}
	if err := db.CreateJob(job); err != nil {
		t.Fatalf("CreateJob() error: %v", err)
	}

	got, err := db.GetJob(job.ID)
	if err != nil {
		t.Fatalf("GetJob() error: %v", err)
	}
	if got.Status != JobStatusRunning {
		t.Errorf("new job status = %q, want running", got.Status)
	}
	if got.Mode != JobModeDedup || got.SourceFiles != "visitas.xlsx" {
		t.Errorf("GetJob() = %+v", got)
	}
	if got.CompletedAt != nil {
		t.Error("new job should not have completed_at")
	}
}

// TestGetJob_NotFound отсутствующая задача дает ErrJobNotFound
func TestGetJob_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetJob("missing")
	if !errors.Is(err, ErrJobNotFound) {
		t.Errorf("GetJob(missing) error = %v, want ErrJobNotFound", err)
	}
}

// TestCompleteJob завершение задачи со счетчиками
func TestCompleteJob(t *testing.T) {
	db := newTestDB(t)

	job := &Job{ID: uuid.New().String(), Mode: JobModeDedup, KeyMode: "store"}
	if err := db.CreateJob(job); err != nil {
		t.Fatalf("CreateJob() error: %v", err)
	}

	job.SourceRows = 100
	job.UniquePairs = 80
	job.Stores = 40
	job.DuplicatesDropped = 20
	job.ResultPath = "/tmp/result.xlsx"
	job.ResultFormat = "xlsx"
	if err := db.CompleteJob(job); err != nil {
		t.Fatalf("CompleteJob() error: %v", err)
	}

	got, err := db.GetJob(job.ID)
	if err != nil {
		t.Fatalf("GetJob() error: %v", err)
	}
	if got.Status != JobStatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.SourceRows != 100 || got.UniquePairs != 80 || got.DuplicatesDropped != 20 {
		t.Errorf("counters = %+v", got)
	}
	if got.ResultPath != "/tmp/result.xlsx" {
		t.Errorf("ResultPath = %q", got.ResultPath)
	}
	if got.CompletedAt == nil {
		t.Error("completed job should have completed_at")
	}
}

// TestFailJob провал задачи с текстом ошибки
func TestFailJob(t *testing.T) {
	db := newTestDB(t)

	job := &Job{ID: uuid.New().String(), Mode: JobModeCompare, KeyMode: "store"}
	if err := db.CreateJob(job); err != nil {
		t.Fatalf("CreateJob() error: %v", err)
	}
	if err := db.FailJob(job.ID, "store column not found"); err != nil {
		t.Fatalf("FailJob() error: %v", err)
	}

	got, err := db.GetJob(job.ID)
	if err != nil {
		t.Fatalf("GetJob() error: %v", err)
	}
	if got.Status != JobStatusFailed {
		t.Errorf("status = %q, want failed", got.Status)
	}
	if got.Error != "store column not found" {
		t.Errorf("error = %q", got.Error)
	}
}

// TestListJobs пагинация и подсчет
func TestListJobs(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 5; i++ {
		job := &Job{ID: uuid.New().String(), Mode: JobModeDedup, KeyMode: "store"}
		if err := db.CreateJob(job); err != nil {
			t.Fatalf("CreateJob() error: %v", err)
		}
	}

	jobs, err := db.ListJobs(3, 0)
	if err != nil {
		t.Fatalf("ListJobs() error: %v", err)
	}
	if len(jobs) != 3 {
		t.Errorf("ListJobs(3, 0) returned %d jobs, want 3", len(jobs))
	}

	jobs, err = db.ListJobs(3, 3)
	if err != nil {
		t.Fatalf("ListJobs() error: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("ListJobs(3, 3) returned %d jobs, want 2", len(jobs))
	}

	total, err := db.CountJobs()
	if err != nil {
		t.Fatalf("CountJobs() error: %v", err)
	}
	if total != 5 {
		t.Errorf("CountJobs() = %d, want 5", total)
	}
}

// TestInMemoryDB in-memory база работает через одно соединение
func TestInMemoryDB(t *testing.T) {
	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB(:memory:) error: %v", err)
	}
	defer db.Close()

	job := &Job{ID: uuid.New().String(), Mode: JobModeDedup, KeyMode: "store"}
	if err := db.CreateJob(job); err != nil {
		t.Fatalf("CreateJob() on in-memory DB error: %v", err)
	}
	if _, err := db.GetJob(job.ID); err != nil {
		t.Errorf("GetJob() on in-memory DB error: %v", err)
	}
}
