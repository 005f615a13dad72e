package pipeline

import (
	"go-maintenance-pipeline/internal/model"
	"go-maintenance-pipeline/pkg/utils"
)

// ------------------- Fleet Summary -------------------

// SummarizeFleet aggregates the per-machine metrics into fleet-level
// statistics for the analysis report header.
func SummarizeFleet(reports []model.MachineReport) model.FleetSummary {
	summary := model.FleetSummary{TotalMachines: len(reports)}
	if len(reports) == 0 {
		return summary
	}

	var compositeTotal float64
	highestUrgency := -1.0
	for _, report := range reports {
		switch report.Metrics.Status {
		case model.StatusOptimal:
			summary.OptimalCount++
		case model.StatusRequiresMaintenance:
			summary.MaintenanceCount++
		}
		compositeTotal += report.Metrics.CompositeScore
		if report.Metrics.MaintenanceUrgencyRatio > highestUrgency {
			highestUrgency = report.Metrics.MaintenanceUrgencyRatio
			summary.HighestUrgencyMachine = report.Record.MachineID
			summary.HighestUrgencyRatio = report.Metrics.MaintenanceUrgencyRatio
		}
	}
	summary.AverageCompositeScore = utils.Round2(compositeTotal / float64(len(reports)))

	return summary
}
