package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"

	"go-maintenance-pipeline/internal/model"
	"go-maintenance-pipeline/pkg/utils"
)

// ------------------- Pipeline Runner -------------------

// RunResult is the outcome of one pipeline run: the rendered markdown
// report, the accepted machines with their metrics (empty when validation
// failed) and the fleet summary.
type RunResult struct {
	Report   string                `json:"report"`
	Machines []model.MachineReport `json:"machines,omitempty"`
	Summary  model.FleetSummary    `json:"summary"`
	Tracker  *model.RunTracker     `json:"tracker,omitempty"`
}

// Run executes the full pipeline for one run: read → validate → metrics →
// summarize → report → export. Validation is all-or-nothing: on failure the
// returned error is the *model.ValidationError and the result carries the
// validation report only.
func Run(ctx context.Context, runID string, job model.JobSpec) (RunResult, error) {
	start := time.Now()
	tracker := model.NewRunTracker(runID)
	result := RunResult{Tracker: tracker}

	if job.Logging {
		fmt.Printf("🚀 Starting pipeline for run: %s\n", runID)
	}

	timeout := utils.ParseDuration(job.Concurrency.JobTimeout)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// --- ERROR LOGGER ---
	// Non-fatal stage errors (export failures) are drained here and folded
	// into the returned error.
	errorCh := make(chan error, 16)
	drained := make(chan struct{})
	var merr *multierror.Error
	go func() {
		defer close(drained)
		for err := range errorCh {
			log.Printf("❌ Error in run %s: %v\n", runID, err)
			merr = multierror.Append(merr, err)
		}
	}()
	finish := func(status string, err error) (RunResult, error) {
		close(errorCh)
		<-drained
		tracker.Finish(status)
		if err != nil {
			return result, err
		}
		return result, merr.ErrorOrNil()
	}

	// --- INGESTION STAGE ---
	if job.Logging {
		fmt.Println("📄 Starting ingestion stage...")
	}
	tracker.StartStage("ingestion", 1)
	records, err := readInput(job.Input)
	if err != nil {
		tracker.EndStage("ingestion", 0, 1)
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			result.Report = ValidationReport(nil, verr)
			return finish("failed", verr)
		}
		return finish("failed", fmt.Errorf("ingestion failed: %w", err))
	}
	tracker.EndStage("ingestion", len(records), 0)

	// --- VALIDATION STAGE ---
	if job.Logging {
		fmt.Println("🔍 Starting validation stage...")
	}
	numWorkers := job.Concurrency.Workers.Validation
	if numWorkers == 0 {
		numWorkers = 3 // default
	}
	tracker.StartStage("validation", numWorkers)
	valid, err := ValidateRecords(records, numWorkers)
	if err != nil {
		tracker.EndStage("validation", 0, len(records))
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			result.Report = ValidationReport(nil, verr)
			exportReports(ctx, runID, job, result, errorCh)
			return finish("failed", verr)
		}
		return finish("failed", fmt.Errorf("validation failed: %w", err))
	}
	tracker.EndStage("validation", len(valid), 0)
	if job.Logging {
		fmt.Printf("🔍 Validation Summary: %d valid records, 0 invalid records\n", len(valid))
	}

	// --- METRICS STAGE ---
	if job.Logging {
		fmt.Println("🔄 Starting metrics stage...")
	}
	numWorkers = job.Concurrency.Workers.Metrics
	if numWorkers == 0 {
		numWorkers = 2 // default
	}
	tracker.StartStage("metrics", numWorkers)
	result.Machines = CalculateFleetMetrics(valid, numWorkers)
	tracker.EndStage("metrics", len(result.Machines), 0)

	// --- SUMMARY STAGE ---
	if job.Logging {
		fmt.Println("📊 Starting summary stage...")
	}
	tracker.StartStage("summary", 1)
	result.Summary = SummarizeFleet(result.Machines)
	tracker.EndStage("summary", len(result.Machines), 0)

	// --- REPORT + EXPORT STAGE ---
	result.Report = ValidationReport(valid, nil) + "\n\n" + AnalysisReport(result.Machines, result.Summary)
	exportReports(ctx, runID, job, result, errorCh)

	if job.Logging {
		fmt.Printf("🏁 Pipeline completed successfully for run: %s in %v\n", runID, time.Since(start))
	}
	return finish("completed", nil)
}

// readInput loads raw records from the configured input: a CSV file path or
// "-" for stdin.
func readInput(input string) ([]model.RawRecord, error) {
	if input == "-" {
		return ReadTableFrom(os.Stdin)
	}
	return ReadTableFile(input)
}

// exportReports runs the export stage when configured, forwarding failures
// to the error channel.
func exportReports(ctx context.Context, runID string, job model.JobSpec, result RunResult, errorCh chan<- error) {
	if job.Export == nil {
		return
	}
	if job.Logging {
		fmt.Println("💾 Starting export stage...")
	}
	em := NewExportManager(runID, job.Export)
	for _, exp := range em.ExportReports(ctx, result.Report, result.Machines, result.Summary) {
		if !exp.Success {
			errorCh <- fmt.Errorf("export to %s failed: %s", exp.Type, exp.Error)
		}
	}
}
