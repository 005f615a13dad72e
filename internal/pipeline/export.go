package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go-maintenance-pipeline/internal/model"
	"go-maintenance-pipeline/pkg/utils"
)

// ------------------- Export -------------------

// ExportResult represents the result of an export operation
type ExportResult struct {
	Type        string    `json:"type"` // "markdown", "json"
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ExportedAt  time.Time `json:"exported_at"`
}

// ExportManager handles report export operations for one run
type ExportManager struct {
	RunID      string
	ExportSpec *model.Export
	Output     *utils.OutputManager
}

// NewExportManager creates an export manager rooted at the spec's dir.
func NewExportManager(runID string, spec *model.Export) *ExportManager {
	return &ExportManager{
		RunID:      runID,
		ExportSpec: spec,
		Output:     utils.NewOutputManager(spec.Dir),
	}
}

// ExportReports writes the markdown report and the JSON results document
// into the run's output directory.
func (em *ExportManager) ExportReports(ctx context.Context, report string, reports []model.MachineReport, summary model.FleetSummary) []ExportResult {
	var results []ExportResult

	reportFile := em.ExportSpec.ReportFile
	if reportFile == "" {
		reportFile = "report.md"
	}
	results = append(results, em.exportMarkdown(reportFile, report, len(reports)))

	select {
	case <-ctx.Done():
		return results
	default:
	}

	jsonFile := em.ExportSpec.JSONFile
	if jsonFile == "" {
		jsonFile = "results.json"
	}
	results = append(results, em.exportJSON(jsonFile, reports, summary))

	return results
}

func (em *ExportManager) exportMarkdown(fileName, report string, recordCount int) ExportResult {
	result := ExportResult{Type: "markdown", RecordCount: recordCount, ExportedAt: time.Now()}

	path, err := em.Output.GetOutputFilePath(em.RunID, fileName)
	if err == nil {
		err = os.WriteFile(path, []byte(report), 0644)
	}
	result.Path = path
	result.Success = err == nil
	if err != nil {
		result.Error = err.Error()
		fmt.Printf("❌ Export to markdown failed: %v\n", err)
	} else {
		fmt.Printf("✅ Export to markdown successful: %s\n", path)
	}
	return result
}

func (em *ExportManager) exportJSON(fileName string, reports []model.MachineReport, summary model.FleetSummary) ExportResult {
	result := ExportResult{Type: "json", RecordCount: len(reports), ExportedAt: time.Now()}

	path, err := em.Output.GetOutputFilePath(em.RunID, fileName)
	result.Path = path
	if err != nil {
		result.Error = err.Error()
		fmt.Printf("❌ Export to JSON failed: %v\n", err)
		return result
	}

	file, err := os.Create(path)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create file: %v", err)
		fmt.Printf("❌ Export to JSON failed: %v\n", err)
		return result
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	exportData := map[string]interface{}{
		"export_info": map[string]interface{}{
			"run_id":       em.RunID,
			"exported_at":  time.Now().UTC(),
			"record_count": len(reports),
			"export_type":  "machine_reports",
		},
		"summary":  summary,
		"machines": reports,
	}

	if err := encoder.Encode(exportData); err != nil {
		result.Error = fmt.Sprintf("failed to encode JSON: %v", err)
		fmt.Printf("❌ Export to JSON failed: %v\n", err)
		return result
	}

	result.Success = true
	fmt.Printf("✅ Export to JSON successful: %d machines exported to %s\n", len(reports), path)
	return result
}
