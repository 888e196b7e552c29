package biopax

import "fmt"

// ParseError reports malformed input XML. It is fatal: the parse aborts and
// no model is produced.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownTypeError reports an element tag that matches no registered class.
// During parsing it is recoverable: the element is skipped and the error is
// accumulated as a diagnostic, so documents using ontology extensions still
// yield a model.
type UnknownTypeError struct {
	Tag  string
	Line int
}

func (e *UnknownTypeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("unknown type %q at line %d", e.Tag, e.Line)
	}
	return fmt.Sprintf("unknown type %q", e.Tag)
}

// ResolutionError reports a reference token that never resolved to an object
// by the end of two-pass resolution, or a dangling reference discovered at
// serialization. It names the missing target and the owning object and
// attribute that referenced it.
type ResolutionError struct {
	Target    string
	Owner     string
	Attribute string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unresolved reference %q from %s.%s", e.Target, e.Owner, e.Attribute)
}

// SchemaViolationError reports a value incompatible with the declared
// attribute schema: a reference where a literal is declared, a literal where
// a reference is declared, or a value on an undeclared attribute.
// Multiplicity excess is not a SchemaViolationError; it is coerced by policy
// with a diagnostic.
type SchemaViolationError struct {
	Class     string
	Attribute string
	Reason    string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation on %s.%s: %s", e.Class, e.Attribute, e.Reason)
}
