package pipeline

import (
	"fmt"
	"strings"

	"go-maintenance-pipeline/internal/model"
	"go-maintenance-pipeline/pkg/utils"
)

// ------------------- Report Rendering -------------------

// Report rendering is a pure formatting consumer of the structured pipeline
// output; no decision logic lives here.

// ValidationReport renders the outcome of batch validation as markdown.
// records holds the accepted machines; on failure it is empty and verr
// carries the collected messages.
func ValidationReport(records []model.MachineRecord, verr *model.ValidationError) string {
	var b strings.Builder
	b.WriteString("# Data Validation Report\n")

	if len(records) > 0 {
		b.WriteString("## Data Structure Check:\n")
		fmt.Fprintf(&b, "- Number of machines: %d\n", len(records))
		fmt.Fprintf(&b, "- Number of fields per record: %d\n\n", len(model.MachineSchema))

		b.WriteString("## Required Fields Check:\n")
		for _, name := range model.RequiredFields() {
			fmt.Fprintf(&b, "- %s: present\n", name)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Validation Summary:\n")
	if verr == nil {
		b.WriteString("Data validation is successful! Proceeding with analysis.\n")
	} else {
		fmt.Fprintf(&b, "Validation failed with the following errors:\n```\n%s\n```\n", verr.Error())
	}

	return b.String()
}

// AnalysisReport renders the per-machine metrics and fleet summary as
// markdown, one section per machine in input order.
func AnalysisReport(reports []model.MachineReport, summary model.FleetSummary) string {
	var b strings.Builder
	b.WriteString("# Predictive Maintenance Analysis Summary:\n")
	fmt.Fprintf(&b, "- **Total Machines Evaluated:** %d\n", summary.TotalMachines)
	fmt.Fprintf(&b, "- **Optimal:** %d\n", summary.OptimalCount)
	fmt.Fprintf(&b, "- **Requires Maintenance:** %d\n", summary.MaintenanceCount)
	fmt.Fprintf(&b, "- **Average Composite Score:** %s\n", utils.FormatNumber(summary.AverageCompositeScore))
	if summary.HighestUrgencyMachine != "" {
		fmt.Fprintf(&b, "- **Highest Urgency:** %s (%s%%)\n",
			summary.HighestUrgencyMachine, utils.FormatNumber(summary.HighestUrgencyRatio))
	}
	b.WriteString("\n## Detailed Analysis per Machine:\n")

	for i, report := range reports {
		writeMachineSection(&b, report)
		if i < len(reports)-1 {
			b.WriteString("---\n\n")
		}
	}

	return b.String()
}

func writeMachineSection(b *strings.Builder, report model.MachineReport) {
	rec := report.Record
	calc := report.Metrics

	fmt.Fprintf(b, "**Machine %s**\n\n", rec.MachineID)

	b.WriteString("### Input Data:\n")
	fmt.Fprintf(b, "- **Runtime Hours:** %d\n", rec.RuntimeHours)
	fmt.Fprintf(b, "- **Vibration Level:** %s\n", utils.FormatNumber(rec.VibrationLevel))
	fmt.Fprintf(b, "- **Temperature:** %s\n", utils.FormatNumber(rec.Temperature))
	fmt.Fprintf(b, "- **Maintenance Threshold (%%):** %s\n", utils.FormatNumber(rec.MaintenanceThreshold))
	fmt.Fprintf(b, "- **Max Operating Hours:** %d\n", rec.MaxOperatingHours)
	fmt.Fprintf(b, "- **Scaling Factor:** %s\n\n", utils.FormatNumber(rec.ScalingFactor))

	b.WriteString("### Detailed Calculations:\n")

	fmt.Fprintf(b, "1. **Predicted Failure Risk** = vibration_level x scaling_factor = %s x %s = %s\n",
		utils.FormatNumber(rec.VibrationLevel), utils.FormatNumber(rec.ScalingFactor),
		utils.FormatNumber(calc.PredictedFailureRisk))

	fmt.Fprintf(b, "2. **Maintenance Urgency Ratio** = (Predicted Failure Risk / runtime_hours) x 100 = (%s / %d) x 100 = %s%%\n",
		utils.FormatNumber(calc.PredictedFailureRisk), rec.RuntimeHours,
		utils.FormatNumber(calc.MaintenanceUrgencyRatio))

	fmt.Fprintf(b, "3. **Operating Margin** = ((max_operating_hours - runtime_hours) / max_operating_hours) x 100 = ((%d - %d) / %d) x 100 = %s%%\n",
		rec.MaxOperatingHours, rec.RuntimeHours, rec.MaxOperatingHours,
		utils.FormatNumber(calc.OperatingMargin))

	marginTerm := utils.Round2(calc.OperatingMargin * 0.3)
	urgencyTerm := utils.Round2((100 - calc.MaintenanceUrgencyRatio) * 0.7)
	fmt.Fprintf(b, "4. **Composite Score** = (Operating Margin x 0.3) + ((100 - Maintenance Urgency Ratio) x 0.7) = %s + %s = %s\n",
		utils.FormatNumber(marginTerm), utils.FormatNumber(urgencyTerm),
		utils.FormatNumber(calc.CompositeScore))

	fmt.Fprintf(b, "5. **Efficiency Ratio** = runtime_hours / Predicted Failure Risk = %d / %s = %s\n\n",
		rec.RuntimeHours, utils.FormatNumber(calc.PredictedFailureRisk),
		utils.FormatNumber(calc.EfficiencyRatio))

	b.WriteString("### Final Recommendation:\n")
	fmt.Fprintf(b, "- **Composite Score:** %s\n", utils.FormatNumber(calc.CompositeScore))
	fmt.Fprintf(b, "- **Maintenance Urgency Ratio:** %s%%\n", utils.FormatNumber(calc.MaintenanceUrgencyRatio))
	fmt.Fprintf(b, "- **Efficiency Ratio:** %s\n", utils.FormatNumber(calc.EfficiencyRatio))
	fmt.Fprintf(b, "- **Status:** %s\n", calc.Status)
	fmt.Fprintf(b, "- **Recommended Action:** %s\n\n", calc.Recommendation)
}
