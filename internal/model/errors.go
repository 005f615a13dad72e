package model

import (
	"fmt"
	"strings"
)

// FailureKind classifies why a batch was rejected.
type FailureKind string

const (
	EmptyInput          FailureKind = "empty_input"
	MissingHeaderFields FailureKind = "missing_header_fields"
	RowValidationErrors FailureKind = "row_validation_errors"
)

// RowError holds every field-level message for one failing row. Row is
// 1-based, matching the input order.
type RowError struct {
	Row      int      `json:"row"`
	Messages []string `json:"messages"`
}

// Line renders the row error as a single report line.
func (re RowError) Line() string {
	return fmt.Sprintf("Row %d: %s", re.Row, strings.Join(re.Messages, ", "))
}

// ValidationError is the all-or-nothing failure result of batch validation.
// Messages holds one human-readable line per failing row (or the single
// header/empty-input message), in original row order.
type ValidationError struct {
	Kind     FailureKind `json:"kind"`
	Messages []string    `json:"messages"`
	Rows     []RowError  `json:"rows,omitempty"`
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// NewEmptyInputError reports a batch with no records at all.
func NewEmptyInputError() *ValidationError {
	return &ValidationError{
		Kind:     EmptyInput,
		Messages: []string{"No data found in the input"},
	}
}

// NewMissingHeaderError reports required fields absent from the header.
// The per-row checks never ran.
func NewMissingHeaderError(missing []string) *ValidationError {
	return &ValidationError{
		Kind:     MissingHeaderFields,
		Messages: []string{fmt.Sprintf("Missing required field(s): %s in header", strings.Join(missing, ", "))},
	}
}

// NewRowValidationError reports the collected per-row failures. rows must
// already be sorted by ascending row index.
func NewRowValidationError(rows []RowError) *ValidationError {
	messages := make([]string, len(rows))
	for i, re := range rows {
		messages[i] = re.Line()
	}
	return &ValidationError{
		Kind:     RowValidationErrors,
		Messages: messages,
		Rows:     rows,
	}
}
