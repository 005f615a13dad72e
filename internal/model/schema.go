package model

// FieldKind identifies the validation rule applied to a schema field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindPositiveInteger
	KindPositiveNumber
	KindRange
)

// FieldSpec describes one required field: its name, its kind and, for
// KindRange fields, the inclusive bounds.
type FieldSpec struct {
	Name string    `json:"name"`
	Kind FieldKind `json:"kind"`
	Min  float64   `json:"min,omitempty"`
	Max  float64   `json:"max,omitempty"`
}

// MachineSchema is the fixed, ordered schema for machine maintenance
// records. It is immutable for the lifetime of the process.
var MachineSchema = []FieldSpec{
	{Name: "machine_id", Kind: KindString},
	{Name: "runtime_hours", Kind: KindPositiveInteger},
	{Name: "vibration_level", Kind: KindPositiveNumber},
	{Name: "temperature", Kind: KindRange, Min: 0, Max: 200},
	{Name: "maintenance_threshold", Kind: KindRange, Min: 0, Max: 100},
	{Name: "max_operating_hours", Kind: KindPositiveInteger},
	{Name: "scaling_factor", Kind: KindPositiveNumber},
}

// RequiredFields returns the schema field names in schema order.
func RequiredFields() []string {
	names := make([]string, len(MachineSchema))
	for i, spec := range MachineSchema {
		names[i] = spec.Name
	}
	return names
}
