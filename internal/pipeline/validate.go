package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go-maintenance-pipeline/internal/model"
	"go-maintenance-pipeline/pkg/utils"
)

// ------------------- Validation -------------------

// rowOutcome carries one row's result with its original position so that
// concurrent validation can be re-assembled in input order.
type rowOutcome struct {
	index  int // 1-based row index
	record model.MachineRecord
	errs   []string
}

// ValidateRecords checks every raw record against the machine schema.
// On success it returns the typed records in input order; on failure it
// returns a *model.ValidationError carrying either the header failure or
// every row's collected messages, ordered by ascending row index. Rows are
// all-or-nothing: a partially valid batch yields no typed records.
//
// Rows are validated concurrently by workerCount workers; only the order of
// the reported results is guaranteed, matching the input.
func ValidateRecords(records []model.RawRecord, workerCount int) ([]model.MachineRecord, error) {
	if len(records) == 0 {
		return nil, model.NewEmptyInputError()
	}

	// Header check: every required field must appear in the first record.
	// This short-circuits before any row is processed.
	var missing []string
	for _, name := range model.RequiredFields() {
		if _, ok := records[0][name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, model.NewMissingHeaderError(missing)
	}

	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(records) {
		workerCount = len(records)
	}

	outcomes := make([]rowOutcome, len(records))
	jobs := make(chan int, len(records))

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				record, errs := validateRecord(records[i])
				outcomes[i] = rowOutcome{index: i + 1, record: record, errs: errs}
			}
		}()
	}
	for i := range records {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var rowErrors []model.RowError
	valid := make([]model.MachineRecord, 0, len(records))
	for _, outcome := range outcomes {
		if len(outcome.errs) > 0 {
			rowErrors = append(rowErrors, model.RowError{Row: outcome.index, Messages: outcome.errs})
		} else {
			valid = append(valid, outcome.record)
		}
	}

	if len(rowErrors) > 0 {
		return nil, model.NewRowValidationError(rowErrors)
	}
	return valid, nil
}

// validateRecord applies every FieldSpec to one raw record, accumulating
// field-level messages in schema order. A missing or blank value skips the
// type check for that field.
func validateRecord(rec model.RawRecord) (model.MachineRecord, []string) {
	var out model.MachineRecord
	var errs []string

	for _, spec := range model.MachineSchema {
		raw, ok := rec[spec.Name]
		value := strings.TrimSpace(raw)
		if !ok || value == "" {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", spec.Name))
			continue
		}
		if msg := validateField(&out, spec, value); msg != "" {
			errs = append(errs, msg)
		}
	}

	return out, errs
}

// validateField converts one trimmed value according to its spec, storing
// the result on out. It returns an error message when the value does not
// conform.
func validateField(out *model.MachineRecord, spec model.FieldSpec, value string) string {
	switch spec.Kind {
	case model.KindString:
		storeString(out, spec.Name, value)

	case model.KindPositiveInteger:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Sprintf("Invalid value for %s: must be a positive integer", spec.Name)
		}
		storeInt(out, spec.Name, n)

	case model.KindPositiveNumber:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Sprintf("Invalid value for %s: must be a positive number", spec.Name)
		}
		storeFloat(out, spec.Name, f)

	case model.KindRange:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Sprintf("Invalid value for %s: must be a number", spec.Name)
		}
		if f < spec.Min || f > spec.Max {
			return fmt.Sprintf("Invalid value for %s: must be between %s and %s",
				spec.Name, utils.FormatNumber(spec.Min), utils.FormatNumber(spec.Max))
		}
		storeFloat(out, spec.Name, f)
	}
	return ""
}

func storeString(out *model.MachineRecord, name, value string) {
	if name == "machine_id" {
		out.MachineID = value
	}
}

func storeInt(out *model.MachineRecord, name string, n int) {
	switch name {
	case "runtime_hours":
		out.RuntimeHours = n
	case "max_operating_hours":
		out.MaxOperatingHours = n
	}
}

func storeFloat(out *model.MachineRecord, name string, f float64) {
	switch name {
	case "vibration_level":
		out.VibrationLevel = f
	case "temperature":
		out.Temperature = f
	case "maintenance_threshold":
		out.MaintenanceThreshold = f
	case "scaling_factor":
		out.ScalingFactor = f
	}
}
