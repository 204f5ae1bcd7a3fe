package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"poc-portal/core/utils"
	"poc-portal/feature/usecases/models"

	"gorm.io/gorm"
)

// Column widths of the string fields of SyncRun.
const (
	sourceSize = 512
	errorSize  = 1024
)

// SyncRun is one recorded bulk synchronization.
type SyncRun struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Source         string    `gorm:"size:512;not null" json:"source"`
	Trigger        string    `gorm:"size:32;not null" json:"trigger"`
	StartedAt      time.Time `gorm:"index;not null" json:"startedAt"`
	FinishedAt     time.Time `json:"finishedAt"`
	Total          int       `json:"total"`
	Downloaded     int       `json:"downloaded"`
	Failed         int       `json:"failed"`
	UseCasesFailed int       `json:"useCasesFailed"`
	ImagesFailed   int       `json:"imagesFailed"`
	Error          string    `gorm:"size:1024" json:"error,omitempty"`
}

// NewRun builds a record from the outcome of a synchronization.
func NewRun(location, trigger string, started time.Time, result *models.SyncResult, syncErr error) SyncRun {
	run := SyncRun{
		Source:     utils.Truncate(location, sourceSize),
		Trigger:    trigger,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if result != nil {
		run.Total = result.Total
		run.Downloaded = result.Downloaded
		run.Failed = result.Failed
		run.UseCasesFailed = result.UseCases.Failed
		run.ImagesFailed = result.Images.Failed
	}
	if syncErr != nil {
		run.Error = utils.Truncate(syncErr.Error(), errorSize)
	}
	return run
}

// Store persists sync runs.
type Store struct {
	db *gorm.DB
}

// NewStore creates the sync_runs table if needed.
func NewStore(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}
	if err := db.AutoMigrate(&SyncRun{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sync history: %w", err)
	}
	return &Store{db: db}, nil
}

// Record saves a run.
func (s *Store) Record(ctx context.Context, run *SyncRun) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record sync run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}

	runs := []SyncRun{}
	if err := s.db.WithContext(ctx).Order("started_at DESC").Order("id DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to load sync history: %w", err)
	}
	return runs, nil
}
