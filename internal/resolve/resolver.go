// Package resolve converts the reader's flat element records into a fully
// linked object graph. Resolution is two-pass because BioPAX documents
// freely forward-reference entities not yet defined in document order and
// because relationships are cyclic: the allocation pass creates an empty
// typed shell per identifier, the population pass fills attributes, and a
// finalization check rejects dangling references only once every definition
// has had its chance to appear.
package resolve

import (
	"fmt"

	"biopaxcore/internal/rdfxml"
	"biopaxcore/pkg/biopax"
	"biopaxcore/pkg/biopax/schema"
)

type resolver struct {
	model   *biopax.Model
	diags   biopax.Diagnostics
	defined map[string]bool
}

// Build runs two-pass resolution over records and returns the linked model.
// Recoverable conditions (duplicate definitions, schema violations,
// single-valued overwrites, unknown enum literals) are accumulated as
// diagnostics; a dangling reference at finalization is fatal.
func Build(records []rdfxml.Record) (*biopax.Model, biopax.Diagnostics, error) {
	r := &resolver{model: biopax.NewModel(), defined: make(map[string]bool)}
	if err := r.allocate(records); err != nil {
		return nil, r.diags, err
	}
	for i := range records {
		r.populate(&records[i])
	}
	if err := r.finalize(); err != nil {
		return nil, r.diags, err
	}
	r.backfill()
	return r.model, r.diags, nil
}

// allocate creates one shell object per distinct identifier, walking nested
// records too. A repeated identifier keeps its shell but is flagged; its
// earlier population is discarded when the later definition is processed.
func (r *resolver) allocate(records []rdfxml.Record) error {
	for i := range records {
		if err := r.allocateOne(&records[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) allocateOne(rec *rdfxml.Record) error {
	if r.defined[rec.ID] {
		r.diags = append(r.diags, biopax.Diagnostic{
			Severity: biopax.SeverityWarn,
			Code:     biopax.DiagDuplicateID,
			Message:  "identifier defined more than once; last definition wins",
			ID:       rec.ID,
			Line:     rec.Line,
		})
	} else {
		obj, err := biopax.NewObject(rec.Class, rec.ID)
		if err != nil {
			return fmt.Errorf("allocate %s: %w", rec.ID, err)
		}
		if err := r.model.Add(obj); err != nil {
			return err
		}
		r.defined[rec.ID] = true
	}
	for i := range rec.Props {
		if nested := rec.Props[i].Nested; nested != nil {
			if err := r.allocateOne(nested); err != nil {
				return err
			}
		}
	}
	return nil
}

// populate fills a shell's attributes per the schema registry. Population
// order is independent of reference validity: a referenced shell may itself
// still be empty, which is valid and expected.
func (r *resolver) populate(rec *rdfxml.Record) {
	obj, ok := r.model.Get(rec.ID)
	if !ok {
		return
	}
	if obj.Class() != rec.Class {
		// the shell keeps its first class; a redefinition under another
		// class cannot be merged and is dropped whole
		r.diags = append(r.diags, biopax.Diagnostic{
			Severity: biopax.SeverityWarn,
			Code:     biopax.DiagDuplicateID,
			Message:  fmt.Sprintf("redefinition as %s ignored, object stays %s", rec.Class, obj.Class()),
			ID:       rec.ID,
			Line:     rec.Line,
		})
		return
	}
	if wasPopulated(obj) {
		obj.Reset()
	}
	for i := range rec.Props {
		r.populateProp(obj, &rec.Props[i])
		if nested := rec.Props[i].Nested; nested != nil {
			r.populate(nested)
		}
	}
}

// wasPopulated reports whether any non-derived attribute holds a value.
func wasPopulated(obj *biopax.Object) bool {
	for _, spec := range schema.Attributes(obj.Class()) {
		if spec.Derived {
			continue
		}
		if len(obj.Values(spec.Name)) > 0 {
			return true
		}
	}
	return false
}

func (r *resolver) populateProp(obj *biopax.Object, prop *rdfxml.Prop) {
	spec, declared := schema.AttributeOf(obj.Class(), prop.Name)
	if !declared {
		r.diags = append(r.diags, biopax.Diagnostic{
			Severity:  biopax.SeverityWarn,
			Code:      biopax.DiagSchemaViolation,
			Message:   fmt.Sprintf("attribute not declared on %s", obj.Class()),
			ID:        obj.ID(),
			Attribute: prop.Name,
			Line:      prop.Line,
		})
		return
	}
	var value biopax.Value
	switch prop.Kind {
	case rdfxml.PropRef:
		value = biopax.Ref(prop.Ref)
	case rdfxml.PropNested:
		value = biopax.Ref(prop.Nested.ID)
	default:
		value = biopax.Literal(prop.Literal)
		if spec.Kind == schema.KindEnum && !schema.IsEnumValue(spec.Enum, prop.Literal) {
			r.diags = append(r.diags, biopax.Diagnostic{
				Severity:  biopax.SeverityWarn,
				Code:      biopax.DiagEnumLiteral,
				Message:   fmt.Sprintf("%q is not a %s literal", prop.Literal, spec.Enum),
				ID:        obj.ID(),
				Attribute: prop.Name,
				Line:      prop.Line,
			})
		}
	}
	overwrote, err := obj.Add(prop.Name, value)
	if err != nil {
		r.diags = append(r.diags, biopax.Diagnostic{
			Severity:  biopax.SeverityWarn,
			Code:      biopax.DiagSchemaViolation,
			Message:   err.Error(),
			ID:        obj.ID(),
			Attribute: prop.Name,
			Line:      prop.Line,
		})
		return
	}
	if overwrote {
		r.diags = append(r.diags, biopax.Diagnostic{
			Severity:  biopax.SeverityWarn,
			Code:      biopax.DiagSingleOverwrite,
			Message:   "single-valued attribute repeated; later value wins",
			ID:        obj.ID(),
			Attribute: prop.Name,
			Line:      prop.Line,
		})
	}
}

// finalize asserts every reference value held by the graph resolved to an
// allocated shell. This is the only point at which the two-pass design
// surfaces a structural fault, deferred so forward and circular references
// never spuriously fail. Walking the stored values rather than the raw
// tokens means references from an overwritten duplicate definition cannot
// fail the document.
func (r *resolver) finalize() error {
	for o := range r.model.Objects() {
		for _, spec := range schema.Attributes(o.Class()) {
			if spec.Kind != schema.KindReference || spec.Derived {
				continue
			}
			for _, v := range o.Values(spec.Name) {
				if _, ok := r.model.Get(v.Target()); !ok {
					return &biopax.ResolutionError{Target: v.Target(), Owner: o.ID(), Attribute: spec.Name}
				}
			}
		}
	}
	return nil
}

// forward relation -> derived back-reference mirrored on the target.
var backRelations = []struct {
	class   string // owner class (subtree)
	forward string
	derived string
}{
	{"Control", "controller", "controllerOf"},
	{"Complex", "component", "componentOf"},
	{"PhysicalEntity", "memberPhysicalEntity", "memberPhysicalEntityOf"},
}

// backfill rebuilds derived back-references from their forward relations:
// whenever A controls B, B's controllerOf set contains A, and likewise for
// complex components and generic members.
func (r *resolver) backfill() {
	for o := range r.model.Objects() {
		o.ClearDerived()
	}
	for o := range r.model.Objects() {
		for _, rel := range backRelations {
			if !schema.IsAssignable(o.Class(), rel.class) {
				continue
			}
			for _, v := range o.Values(rel.forward) {
				target, ok := r.model.Deref(v)
				if !ok {
					continue
				}
				if _, has := schema.AttributeOf(target.Class(), rel.derived); !has {
					continue
				}
				if _, err := target.Add(rel.derived, biopax.Ref(o.ID())); err != nil {
					// derived attrs are reference multi by construction
					continue
				}
			}
		}
	}
}
