package model

import (
	"sync"
	"time"
)

// StageStats represents metrics for a specific pipeline stage
type StageStats struct {
	StageName        string        `json:"stage_name"`
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	Duration         time.Duration `json:"duration"`
	RecordsProcessed int           `json:"records_processed"`
	WorkerCount      int           `json:"worker_count"`
	ErrorCount       int           `json:"error_count"`
}

// RunTracker tracks per-stage progress for one pipeline run.
type RunTracker struct {
	RunID     string                 `json:"run_id"`
	StartTime time.Time              `json:"start_time"`
	EndTime   time.Time              `json:"end_time"`
	Status    string                 `json:"status"`
	Stages    map[string]*StageStats `json:"stages"`
	Mutex     sync.RWMutex           `json:"-"`
}

// NewRunTracker creates a tracker for the given run.
func NewRunTracker(runID string) *RunTracker {
	return &RunTracker{
		RunID:     runID,
		StartTime: time.Now(),
		Status:    "pending",
		Stages:    make(map[string]*StageStats),
	}
}

// StartStage records the beginning of a stage.
func (t *RunTracker) StartStage(name string, workers int) {
	t.Mutex.Lock()
	defer t.Mutex.Unlock()
	t.Stages[name] = &StageStats{
		StageName:   name,
		StartTime:   time.Now(),
		WorkerCount: workers,
	}
	t.Status = name
}

// EndStage records the completion of a stage.
func (t *RunTracker) EndStage(name string, records, errors int) {
	t.Mutex.Lock()
	defer t.Mutex.Unlock()
	stage, ok := t.Stages[name]
	if !ok {
		return
	}
	stage.EndTime = time.Now()
	stage.Duration = stage.EndTime.Sub(stage.StartTime)
	stage.RecordsProcessed = records
	stage.ErrorCount = errors
}

// Finish marks the run complete with the given terminal status.
func (t *RunTracker) Finish(status string) {
	t.Mutex.Lock()
	defer t.Mutex.Unlock()
	t.EndTime = time.Now()
	t.Status = status
}

// StageSnapshot returns a copy of the stats for one stage.
func (t *RunTracker) StageSnapshot(name string) (StageStats, bool) {
	t.Mutex.RLock()
	defer t.Mutex.RUnlock()
	stage, ok := t.Stages[name]
	if !ok {
		return StageStats{}, false
	}
	return *stage, true
}
