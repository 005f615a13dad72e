package model

// Status values assigned by the metrics classification.
const (
	StatusOptimal             = "Optimal"
	StatusRequiresMaintenance = "Requires Maintenance"

	RecommendationNone     = "No immediate maintenance required"
	RecommendationSchedule = "Schedule maintenance promptly"
)

// MetricsResult holds the five derived maintenance metrics for one machine,
// each rounded to 2 decimal places, plus the status/recommendation
// classification. Computed once per validated record, immutable thereafter.
type MetricsResult struct {
	PredictedFailureRisk    float64 `json:"predicted_failure_risk"`
	MaintenanceUrgencyRatio float64 `json:"maintenance_urgency_ratio"`
	OperatingMargin         float64 `json:"operating_margin"`
	CompositeScore          float64 `json:"composite_score"`
	EfficiencyRatio         float64 `json:"efficiency_ratio"`
	Status                  string  `json:"status"`
	Recommendation          string  `json:"recommendation"`
}

// MachineReport pairs a validated record with its computed metrics, in
// original input order.
type MachineReport struct {
	Record  MachineRecord `json:"record"`
	Metrics MetricsResult `json:"metrics"`
}

// FleetSummary aggregates metrics results across all evaluated machines.
type FleetSummary struct {
	TotalMachines         int     `json:"total_machines"`
	OptimalCount          int     `json:"optimal_count"`
	MaintenanceCount      int     `json:"maintenance_count"`
	AverageCompositeScore float64 `json:"average_composite_score"`
	HighestUrgencyMachine string  `json:"highest_urgency_machine,omitempty"`
	HighestUrgencyRatio   float64 `json:"highest_urgency_ratio"`
}
