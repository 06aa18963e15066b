package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrJobNotFound задача с указанным идентификатором отсутствует
var ErrJobNotFound = errors.New("job not found")

// Статусы задач обработки
const (
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Режимы задач
const (
	JobModeDedup   = "dedup"
	JobModeCompare = "compare"
)

// Job одна обработка: очистка или сравнение
type Job struct {
	ID          string `json:"id"`
	Mode        string `json:"mode"`
	Status      string `json:"status"`
	SourceFiles string `json:"source_files"`
	Sheet       string `json:"sheet,omitempty"`
	StoreColumn string `json:"store_column,omitempty"`
	LinkColumn  string `json:"link_column,omitempty"`
	KeyMode     string `json:"key_mode"`

	SourceRows        int `json:"source_rows"`
	UniquePairs       int `json:"unique_pairs"`
	Stores            int `json:"stores"`
	DuplicatesDropped int `json:"duplicates_dropped"`
	OnlyInA           int `json:"only_in_a"`
	OnlyInB           int `json:"only_in_b"`
	InBoth            int `json:"in_both"`

	ResultPath   string     `json:"-"`
	ResultFormat string     `json:"result_format"`
	Error        string     `json:"error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// CreateJob регистрирует новую задачу в статусе running
func (db *DB) CreateJob(job *Job) error {
	_, err := db.conn.Exec(`
		INSERT INTO jobs (id, mode, status, source_files, sheet, store_column, link_column, key_mode, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.Mode, JobStatusRunning, job.SourceFiles,
		job.Sheet, job.StoreColumn, job.LinkColumn, job.KeyMode,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", job.ID, err)
	}
	return nil
}

// CompleteJob помечает задачу завершенной и сохраняет счетчики
func (db *DB) CompleteJob(job *Job) error {
	now := time.Now().UTC()
	_, err := db.conn.Exec(`
		UPDATE jobs SET
			status = ?, sheet = ?, store_column = ?, link_column = ?,
			source_rows = ?, unique_pairs = ?, stores = ?, duplicates_dropped = ?,
			only_in_a = ?, only_in_b = ?, in_both = ?,
			result_path = ?, result_format = ?, completed_at = ?
		WHERE id = ?`,
		JobStatusCompleted, job.Sheet, job.StoreColumn, job.LinkColumn,
		job.SourceRows, job.UniquePairs, job.Stores, job.DuplicatesDropped,
		job.OnlyInA, job.OnlyInB, job.InBoth,
		job.ResultPath, job.ResultFormat, now,
		job.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete job %s: %w", job.ID, err)
	}
	job.Status = JobStatusCompleted
	job.CompletedAt = &now
	return nil
}

// FailJob помечает задачу проваленной с текстом ошибки
func (db *DB) FailJob(jobID, message string) error {
	now := time.Now().UTC()
	_, err := db.conn.Exec(
		`UPDATE jobs SET status = ?, error = ?, completed_at = ? WHERE id = ?`,
		JobStatusFailed, message, now, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark job %s as failed: %w", jobID, err)
	}
	return nil
}

// GetJob возвращает задачу по идентификатору
func (db *DB) GetJob(jobID string) (*Job, error) {
	row := db.conn.QueryRow(`
		SELECT id, mode, status, source_files, sheet, store_column, link_column, key_mode,
			source_rows, unique_pairs, stores, duplicates_dropped,
			only_in_a, only_in_b, in_both,
			result_path, result_format, error, created_at, completed_at
		FROM jobs WHERE id = ?`, jobID)

	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}
	return job, nil
}

// ListJobs возвращает задачи от новых к старым
func (db *DB) ListJobs(limit, offset int) ([]*Job, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := db.conn.Query(`
		SELECT id, mode, status, source_files, sheet, store_column, link_column, key_mode,
			source_rows, unique_pairs, stores, duplicates_dropped,
			only_in_a, only_in_b, in_both,
			result_path, result_format, error, created_at, completed_at
		FROM jobs ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]*Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// CountJobs возвращает общее число задач
func (db *DB) CountJobs() (int, error) {
	var total int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return total, nil
}

// scanner общий интерфейс sql.Row и sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(s scanner) (*Job, error) {
	var job Job
	var completedAt sql.NullTime
	err := s.Scan(
		&job.ID, &job.Mode, &job.Status, &job.SourceFiles,
		&job.Sheet, &job.StoreColumn, &job.LinkColumn, &job.KeyMode,
		&job.SourceRows, &job.UniquePairs, &job.Stores, &job.DuplicatesDropped,
		&job.OnlyInA, &job.OnlyInB, &job.InBoth,
		&job.ResultPath, &job.ResultFormat, &job.Error,
		&job.CreatedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		job.CompletedAt = &t
	}
	return &job, nil
}
