// Package errors provides structured violation reporting for the definition
// compiler. Every check in the compiler produces a Violation naming the
// offending entry key, the field, and the rule broken; the full list is
// surfaced in one pass so a single correction cycle can fix every problem.
package errors

import (
	"encoding/json"
	"fmt"
)

// Code is a unique violation code (e.g. "REF101", "CYC300").
type Code string

// Category groups violations by the kind of rule broken.
type Category string

const (
	// CategoryReference covers cross-references to nonexistent entries (REF100-199)
	CategoryReference Category = "reference"
	// CategoryShape covers fields failing a format constraint (SHP200-299)
	CategoryShape Category = "shape"
	// CategoryCycle covers parent chains that loop back on themselves (CYC300-399)
	CategoryCycle Category = "cycle"
	// CategoryConflict covers resolution conflicts between entries (CON400-499)
	CategoryConflict Category = "conflict"
)

// Violation is one validation failure, with enough structure for both
// human-readable terminal output and machine consumption.
type Violation struct {
	// Code is the unique violation code
	Code Code `json:"code"`
	// Type is a machine-readable violation type identifier
	Type string `json:"type"`
	// Category is the violation category
	Category Category `json:"category"`
	// EntryKey is the logical key of the offending entry
	EntryKey string `json:"entry_key"`
	// Field is the entry field that broke the rule
	Field string `json:"field,omitempty"`
	// Message is the primary violation message
	Message string `json:"message"`
	// Suggestion provides a hint for fixing the violation (optional)
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return FormatCompact(v)
}

// WithSuggestion sets a fix hint on the violation.
func (v *Violation) WithSuggestion(suggestion string) *Violation {
	v.Suggestion = suggestion
	return v
}

// ToJSON returns the violation as a JSON string.
func (v *Violation) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// ViolationList is the full set of violations found in one compilation pass.
type ViolationList []*Violation

// Error implements the error interface.
func (vl ViolationList) Error() string {
	if len(vl) == 0 {
		return "no violations"
	}
	return FormatList(vl)
}

// HasViolations reports whether the pass found anything at all.
func (vl ViolationList) HasViolations() bool {
	return len(vl) > 0
}

// CountByCategory returns how many violations fall in each category.
func (vl ViolationList) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for _, v := range vl {
		counts[v.Category]++
	}
	return counts
}

// ToJSON returns all violations as a JSON array.
func (vl ViolationList) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(vl, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// newViolation creates a Violation with the given parameters.
func newViolation(code Code, typ string, category Category, entryKey, field, format string, args ...interface{}) *Violation {
	return &Violation{
		Code:     code,
		Type:     typ,
		Category: category,
		EntryKey: entryKey,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}
