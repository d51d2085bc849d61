package errors

import "strings"

// Cycle violation codes (CYC300-399)
const (
	// ErrParentCycle indicates a resource parent chain that loops back on itself
	ErrParentCycle Code = "CYC300"
)

// NewParentCycle creates a CYC300 violation. The cycle path starts and ends
// at the same key; the first key on the path is used as the offending entry.
func NewParentCycle(cycle []string) *Violation {
	entryKey := ""
	if len(cycle) > 0 {
		entryKey = cycle[0]
	}
	return newViolation(
		ErrParentCycle,
		"parent_cycle",
		CategoryCycle,
		entryKey,
		"parent_key",
		"resource parent chain is cyclic: %s",
		strings.Join(cycle, " -> "),
	).WithSuggestion("Break the cycle so every parent chain terminates at the root")
}
