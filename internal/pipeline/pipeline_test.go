package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-maintenance-pipeline/internal/model"
)

const fleetCSV = `machine_id,runtime_hours,vibration_level,temperature,maintenance_threshold,max_operating_hours,scaling_factor
M501,50,2,80,30,200,5
M502,40,3,85,35,300,4
M503,30,2,65,25,100,3
M504,60,4,90,20,120,2
M505,70,3,75,15,150,3
M506,80,2,88,15,200,5
M507,45,3,82,25,150,3
M508,500,1,75,10,600,1
M509,300,2,85,5,400,1
M510,20,2,70,30,80,2`

func writeCSV(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machines.csv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestRunFullFleet(t *testing.T) {
	outDir := t.TempDir()
	job := model.JobSpec{
		Input:  writeCSV(t, fleetCSV),
		Export: &model.Export{Dir: outDir},
		Concurrency: model.ConcurrencyConfig{
			Workers: model.Workers{Validation: 4, Metrics: 3},
		},
	}

	result, err := Run(context.Background(), "test-run", job)
	require.NoError(t, err)
	require.Len(t, result.Machines, 10)

	// Input order is preserved end to end.
	wantIDs := []string{"M501", "M502", "M503", "M504", "M505", "M506", "M507", "M508", "M509", "M510"}
	for i, report := range result.Machines {
		assert.Equal(t, wantIDs[i], report.Record.MachineID)
	}

	assert.Equal(t, model.StatusRequiresMaintenance, result.Machines[7].Metrics.Status) // M508
	assert.Equal(t, model.StatusRequiresMaintenance, result.Machines[8].Metrics.Status) // M509
	assert.Equal(t, model.StatusOptimal, result.Machines[0].Metrics.Status)

	assert.Equal(t, 10, result.Summary.TotalMachines)
	assert.Equal(t, 8, result.Summary.OptimalCount)
	assert.Equal(t, 2, result.Summary.MaintenanceCount)
	assert.Equal(t, 76.98, result.Summary.AverageCompositeScore)
	assert.Equal(t, "M502", result.Summary.HighestUrgencyMachine)

	validation, ok := result.Tracker.StageSnapshot("validation")
	require.True(t, ok)
	assert.Equal(t, 10, validation.RecordsProcessed)
	assert.Equal(t, 4, validation.WorkerCount)
	assert.Equal(t, "completed", result.Tracker.Status)

	assert.Contains(t, result.Report, "# Data Validation Report")
	assert.Contains(t, result.Report, "# Predictive Maintenance Analysis Summary:")
	assert.Contains(t, result.Report, "**Machine M510**")

	// Exported artifacts land in the per-run directory.
	reportPath := filepath.Join(outDir, "test-run", "report.md")
	written, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Equal(t, result.Report, string(written))

	jsonPath := filepath.Join(outDir, "test-run", "results.json")
	raw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var doc struct {
		ExportInfo struct {
			RunID       string `json:"run_id"`
			RecordCount int    `json:"record_count"`
		} `json:"export_info"`
		Machines []model.MachineReport `json:"machines"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "test-run", doc.ExportInfo.RunID)
	assert.Equal(t, 10, doc.ExportInfo.RecordCount)
	require.Len(t, doc.Machines, 10)
	assert.Equal(t, result.Machines[0], doc.Machines[0])
}

func TestRunValidationFailure(t *testing.T) {
	data := strings.Join([]string{
		"machine_id,runtime_hours,vibration_level,temperature,maintenance_threshold,max_operating_hours,scaling_factor",
		"M501,abc,2,80,30,200,5",
		"M502,40,3,85,35,300,4",
		"M503,30,2,500,25,100,3",
	}, "\n")
	job := model.JobSpec{Input: writeCSV(t, data)}

	result, err := Run(context.Background(), "bad-run", job)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, model.RowValidationErrors, verr.Kind)
	require.Len(t, verr.Messages, 2)
	assert.True(t, strings.HasPrefix(verr.Messages[0], "Row 1:"))
	assert.True(t, strings.HasPrefix(verr.Messages[1], "Row 3:"))

	assert.Empty(t, result.Machines)
	assert.Contains(t, result.Report, "Validation failed with the following errors:")
	assert.Contains(t, result.Report, "Row 1: Invalid value for runtime_hours: must be a positive integer")
}

func TestRunMissingHeaderField(t *testing.T) {
	data := "machine_id,runtime_hours,vibration_level,temperature,maintenance_threshold,max_operating_hours\nM501,50,2,80,30,200"
	job := model.JobSpec{Input: writeCSV(t, data)}

	_, err := Run(context.Background(), "hdr-run", job)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, model.MissingHeaderFields, verr.Kind)
	assert.Contains(t, verr.Messages[0], "scaling_factor")
}

func TestRunEmptyInput(t *testing.T) {
	job := model.JobSpec{Input: writeCSV(t, "   \n")}

	result, err := Run(context.Background(), "empty-run", job)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, model.EmptyInput, verr.Kind)
	assert.Contains(t, result.Report, "No data found")
}

func TestRunMissingInputFile(t *testing.T) {
	job := model.JobSpec{Input: filepath.Join(t.TempDir(), "nope.csv")}

	_, err := Run(context.Background(), "missing-run", job)
	require.Error(t, err)
	var verr *model.ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestRunIdempotent(t *testing.T) {
	job := model.JobSpec{Input: writeCSV(t, fleetCSV)}

	first, err := Run(context.Background(), "run-a", job)
	require.NoError(t, err)
	second, err := Run(context.Background(), "run-b", job)
	require.NoError(t, err)

	assert.Equal(t, first.Report, second.Report)
	assert.Equal(t, first.Machines, second.Machines)
	assert.Equal(t, first.Summary, second.Summary)
}
