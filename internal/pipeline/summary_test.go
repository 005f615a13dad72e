package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-maintenance-pipeline/internal/model"
)

func TestSummarizeFleetEmpty(t *testing.T) {
	summary := SummarizeFleet(nil)
	assert.Equal(t, model.FleetSummary{}, summary)
}

func TestSummarizeFleet(t *testing.T) {
	records := []model.MachineRecord{
		machine("M501", 50, 2, 200, 30, 5),  // composite 78.5, urgency 20
		machine("M502", 40, 3, 300, 35, 4),  // composite 75.0, urgency 30
		machine("M508", 500, 1, 600, 10, 1), // composite 74.86, urgency 0.2
	}
	reports := CalculateFleetMetrics(records, 2)

	summary := SummarizeFleet(reports)
	assert.Equal(t, 3, summary.TotalMachines)
	assert.Equal(t, 2, summary.OptimalCount)
	assert.Equal(t, 1, summary.MaintenanceCount)
	assert.Equal(t, 76.12, summary.AverageCompositeScore)
	assert.Equal(t, "M502", summary.HighestUrgencyMachine)
	assert.Equal(t, 30.0, summary.HighestUrgencyRatio)
}
