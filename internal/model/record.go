package model

// RawRecord is an untyped record as read from the table reader: field name
// to raw string value. Row order is preserved by the surrounding slice.
type RawRecord map[string]string

// MachineRecord is a schema-validated machine maintenance record. One is
// materialized only when every field satisfied its FieldSpec; partially
// valid rows never become MachineRecords.
type MachineRecord struct {
	MachineID            string  `json:"machine_id"`
	RuntimeHours         int     `json:"runtime_hours"`
	VibrationLevel       float64 `json:"vibration_level"`
	Temperature          float64 `json:"temperature"`
	MaintenanceThreshold float64 `json:"maintenance_threshold"`
	MaxOperatingHours    int     `json:"max_operating_hours"`
	ScalingFactor        float64 `json:"scaling_factor"`
}
