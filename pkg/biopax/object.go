// Package biopax defines the core domain of the module: the uniform typed
// object representation for every BioPAX class, the model container that owns
// a resolved object graph, the error taxonomy, and the diagnostics collected
// by permissive parse policies.
//
// Every inter-object relationship is an identifier lookup through the owning
// model, never a direct pointer. That is what makes cyclic graphs and forward
// references safe: an object can hold a reference value before its target is
// populated, and dereferencing is always mediated by the model's index.
package biopax

import (
	"fmt"

	"biopaxcore/pkg/biopax/schema"
)

// Value is one attribute value: either a literal (primitive or enumerated
// text) or a reference token naming another object in the same model.
type Value struct {
	text  string
	ref   string
	isRef bool
}

// Literal wraps primitive or enumerated text as a Value.
func Literal(text string) Value { return Value{text: text} }

// Ref wraps a target identifier as a reference Value.
func Ref(id string) Value { return Value{ref: id, isRef: true} }

// IsRef reports whether the value is a reference token.
func (v Value) IsRef() bool { return v.isRef }

// Text returns the literal text; empty for reference values.
func (v Value) Text() string { return v.text }

// Target returns the referenced identifier; empty for literal values.
func (v Value) Target() string { return v.ref }

// String renders the value for diagnostics.
func (v Value) String() string {
	if v.isRef {
		return "#" + v.ref
	}
	return v.text
}

// Object is the single concrete representation shared by all ~70 BioPAX
// classes: an identifier, a class tag, and attribute storage validated
// against the registry's flattened schema. Objects are allocated empty
// (shells) and populated during resolution.
type Object struct {
	id    string
	class string
	attrs map[string][]Value
}

// NewObject allocates an empty object of the given registered class.
func NewObject(class, id string) (*Object, error) {
	if _, ok := schema.Lookup(class); !ok {
		return nil, &UnknownTypeError{Tag: class}
	}
	if id == "" {
		return nil, fmt.Errorf("biopax: empty identifier for %s", class)
	}
	return &Object{id: id, class: class, attrs: make(map[string][]Value)}, nil
}

// ID returns the object's model-wide unique identifier.
func (o *Object) ID() string { return o.id }

// Class returns the object's runtime class name.
func (o *Object) Class() string { return o.class }

// Get returns the first value of attr. For single-valued attributes this is
// the value; for multi-valued attributes it is the first element.
func (o *Object) Get(attr string) (Value, bool) {
	vs := o.attrs[attr]
	if len(vs) == 0 {
		return Value{}, false
	}
	return vs[0], true
}

// Values returns all values of attr in stored order. The returned slice is
// shared and must not be mutated.
func (o *Object) Values(attr string) []Value { return o.attrs[attr] }

// Add stores v under attr, enforcing the attribute's declared kind and
// multiplicity. For single-valued attributes a second Add replaces the
// previous value and reports overwrote=true so callers can surface a
// diagnostic. For unordered multi-valued attributes duplicate values are
// dropped; ordered sequences keep every occurrence.
func (o *Object) Add(attr string, v Value) (overwrote bool, err error) {
	spec, ok := schema.AttributeOf(o.class, attr)
	if !ok {
		return false, &SchemaViolationError{Class: o.class, Attribute: attr, Reason: "attribute not declared"}
	}
	switch spec.Kind {
	case schema.KindReference:
		if !v.isRef {
			return false, &SchemaViolationError{Class: o.class, Attribute: attr, Reason: "literal supplied where reference declared"}
		}
	default:
		if v.isRef {
			return false, &SchemaViolationError{Class: o.class, Attribute: attr, Reason: "reference supplied where literal declared"}
		}
	}
	if !spec.Multi {
		prev := o.attrs[attr]
		o.attrs[attr] = []Value{v}
		return len(prev) > 0, nil
	}
	if !spec.Ordered {
		for _, have := range o.attrs[attr] {
			if have == v {
				return false, nil
			}
		}
	}
	o.attrs[attr] = append(o.attrs[attr], v)
	return false, nil
}

// Reset discards every stored attribute value, returning the object to its
// shell state. Used when a later definition of the same identifier overrides
// an earlier one.
func (o *Object) Reset() {
	o.attrs = make(map[string][]Value)
}

// ClearDerived drops derived back-reference values so they can be rebuilt
// from their forward relations.
func (o *Object) ClearDerived() {
	for _, spec := range schema.Attributes(o.class) {
		if spec.Derived {
			delete(o.attrs, spec.Name)
		}
	}
}
