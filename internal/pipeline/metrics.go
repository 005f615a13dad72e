package pipeline

import (
	"sync"

	"go-maintenance-pipeline/internal/model"
	"go-maintenance-pipeline/pkg/utils"
)

// ------------------- Metrics -------------------

// Classification thresholds. Comparisons run on the rounded metric values.
const (
	compositeScoreThreshold = 75.0
	efficiencyRatioMin      = 0.90
	efficiencyRatioMax      = 9.90
)

// CalculateMetrics computes the five derived maintenance metrics for one
// validated record and classifies the machine. Each intermediate is rounded
// to 2 decimal places before feeding the next formula; rounding is never
// deferred to the end.
func CalculateMetrics(rec model.MachineRecord) model.MetricsResult {
	predictedFailureRisk := utils.Round2(rec.VibrationLevel * rec.ScalingFactor)

	maintenanceUrgencyRatio := utils.Round2((predictedFailureRisk / float64(rec.RuntimeHours)) * 100)

	operatingMargin := utils.Round2((float64(rec.MaxOperatingHours-rec.RuntimeHours) / float64(rec.MaxOperatingHours)) * 100)

	compositeScore := utils.Round2(operatingMargin*0.3 + (100-maintenanceUrgencyRatio)*0.7)

	efficiencyRatio := utils.Round2(float64(rec.RuntimeHours) / predictedFailureRisk)

	isEfficient := efficiencyRatio >= efficiencyRatioMin && efficiencyRatio <= efficiencyRatioMax
	isUrgent := maintenanceUrgencyRatio > rec.MaintenanceThreshold

	status := model.StatusRequiresMaintenance
	recommendation := model.RecommendationSchedule
	if compositeScore >= compositeScoreThreshold && isEfficient && !isUrgent {
		status = model.StatusOptimal
		recommendation = model.RecommendationNone
	}

	return model.MetricsResult{
		PredictedFailureRisk:    predictedFailureRisk,
		MaintenanceUrgencyRatio: maintenanceUrgencyRatio,
		OperatingMargin:         operatingMargin,
		CompositeScore:          compositeScore,
		EfficiencyRatio:         efficiencyRatio,
		Status:                  status,
		Recommendation:          recommendation,
	}
}

// CalculateFleetMetrics computes metrics for every record using workerCount
// workers. Results keep the input order regardless of which worker produced
// them.
func CalculateFleetMetrics(records []model.MachineRecord, workerCount int) []model.MachineReport {
	if len(records) == 0 {
		return nil
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(records) {
		workerCount = len(records)
	}

	reports := make([]model.MachineReport, len(records))
	jobs := make(chan int, len(records))

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				reports[i] = model.MachineReport{
					Record:  records[i],
					Metrics: CalculateMetrics(records[i]),
				}
			}
		}()
	}
	for i := range records {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return reports
}
