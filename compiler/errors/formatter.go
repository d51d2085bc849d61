package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor   = color.New(color.FgRed, color.Bold)
	codeColor     = color.New(color.FgHiBlack)
	fieldColor    = color.New(color.FgCyan)
	suggestColor  = color.New(color.FgYellow)
	categoryNames = map[Category]string{
		CategoryReference: "Reference Error",
		CategoryShape:     "Shape Error",
		CategoryCycle:     "Cycle Error",
		CategoryConflict:  "Resolution Conflict",
	}
)

// Format returns a human-readable, colored rendering of one violation.
func Format(v *Violation) string {
	var b strings.Builder

	name, ok := categoryNames[v.Category]
	if !ok {
		name = "Violation"
	}
	fmt.Fprintf(&b, "%s %s\n", headerColor.Sprint(name), codeColor.Sprintf("[%s]", v.Code))
	if v.Field != "" {
		fmt.Fprintf(&b, "  entry %q, field %s:\n", v.EntryKey, fieldColor.Sprint(v.Field))
	} else {
		fmt.Fprintf(&b, "  entry %q:\n", v.EntryKey)
	}
	fmt.Fprintf(&b, "  %s\n", v.Message)
	if v.Suggestion != "" {
		fmt.Fprintf(&b, "  %s\n", suggestColor.Sprint(v.Suggestion))
	}
	return b.String()
}

// FormatList returns a formatted rendering of every violation with a
// summary header.
func FormatList(violations ViolationList) string {
	if len(violations) == 0 {
		return "no violations"
	}

	var b strings.Builder

	counts := violations.CountByCategory()
	fmt.Fprintf(&b, "Compilation failed with %d violation(s)", len(violations))
	var parts []string
	for _, cat := range []Category{CategoryReference, CategoryShape, CategoryCycle, CategoryConflict} {
		if n := counts[cat]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, cat))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	b.WriteString("\n\n")

	for i, v := range violations {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Format(v))
	}
	return b.String()
}

// FormatCompact returns a compact one-line violation format suitable for
// logs and error wrapping.
func FormatCompact(v *Violation) string {
	if v.Field != "" {
		return fmt.Sprintf("%s: %s.%s: %s [%s]", v.Category, v.EntryKey, v.Field, v.Message, v.Code)
	}
	return fmt.Sprintf("%s: %s: %s [%s]", v.Category, v.EntryKey, v.Message, v.Code)
}
