package biopax

import (
	"fmt"
	"strings"
)

// Severity grades a diagnostic.
type Severity string

// Diagnostic severities. Warnings indicate the document deviated from the
// profile but a best-effort interpretation was applied; info entries record
// permissive-policy decisions that altered nothing observable.
const (
	SeverityWarn Severity = "warn"
	SeverityInfo Severity = "info"
)

// Diagnostic codes emitted by the reader and resolver.
const (
	DiagUnknownType     = "unknown_type"
	DiagDuplicateID     = "duplicate_definition"
	DiagSingleOverwrite = "single_valued_overwrite"
	DiagEnumLiteral     = "unknown_enum_literal"
	DiagSchemaViolation = "schema_violation"
)

// Diagnostic records one recoverable condition encountered while producing a
// best-effort model.
type Diagnostic struct {
	Severity  Severity
	Code      string
	Message   string
	ID        string // offending object identifier, when known
	Attribute string // offending attribute, when known
	Line      int    // source line, when known
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", d.Severity, d.Code)
	if d.ID != "" {
		fmt.Fprintf(&b, " id=%s", d.ID)
	}
	if d.Attribute != "" {
		fmt.Fprintf(&b, " attr=%s", d.Attribute)
	}
	if d.Line > 0 {
		fmt.Fprintf(&b, " line=%d", d.Line)
	}
	if d.Message != "" {
		fmt.Fprintf(&b, ": %s", d.Message)
	}
	return b.String()
}

// Diagnostics accumulates recoverable conditions alongside a best-effort
// model so that a document with a few malformed elements still yields a
// usable graph plus a visible report.
type Diagnostics []Diagnostic

// Merge appends diagnostics from another report.
func (ds *Diagnostics) Merge(other Diagnostics) {
	if len(other) == 0 {
		return
	}
	*ds = append(*ds, other...)
}

// Warnings counts warn-severity entries.
func (ds Diagnostics) Warnings() int {
	n := 0
	for _, d := range ds {
		if d.Severity == SeverityWarn {
			n++
		}
	}
	return n
}

// String renders the report one diagnostic per line.
func (ds Diagnostics) String() string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}
