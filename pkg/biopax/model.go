package biopax

import (
	"fmt"
	"iter"

	"biopaxcore/pkg/biopax/schema"
)

// Model owns a resolved object graph: the identity-keyed object store, the
// allocation-order list that anchors deterministic serialization, and a type
// index maintained incrementally as objects are added.
//
// A model is safe for concurrent read-only queries once built. Concurrent
// mutation is not supported; callers serialize Add and Remove themselves.
type Model struct {
	objects map[string]*Object
	order   []string
	byClass map[string][]string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{
		objects: make(map[string]*Object),
		byClass: make(map[string][]string),
	}
}

// Len returns the number of objects in the model.
func (m *Model) Len() int { return len(m.objects) }

// Get returns the object with the given identifier. It never allocates.
func (m *Model) Get(id string) (*Object, bool) {
	o, ok := m.objects[id]
	return o, ok
}

// Add takes ownership of o. Identifiers are unique within a model; adding a
// duplicate is an error.
func (m *Model) Add(o *Object) error {
	if o == nil || o.id == "" {
		return fmt.Errorf("biopax: object without identifier")
	}
	if _, exists := m.objects[o.id]; exists {
		return fmt.Errorf("biopax: identifier %q already present in model", o.id)
	}
	m.objects[o.id] = o
	m.order = append(m.order, o.id)
	m.byClass[o.class] = append(m.byClass[o.class], o.id)
	return nil
}

// Remove drops the object with the given identifier, reporting whether it was
// present. Removal performs no reference cleanup: values in other objects
// that point at the removed identifier are left dangling and surface as a
// ResolutionError if the model is later serialized.
func (m *Model) Remove(id string) bool {
	o, ok := m.objects[id]
	if !ok {
		return false
	}
	delete(m.objects, id)
	m.order = dropID(m.order, id)
	m.byClass[o.class] = dropID(m.byClass[o.class], id)
	return true
}

func dropID(ids []string, id string) []string {
	for i, have := range ids {
		if have == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Objects iterates every object in allocation order. The sequence is lazy
// and restartable.
func (m *Model) Objects() iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		for _, id := range m.order {
			if !yield(m.objects[id]) {
				return
			}
		}
	}
}

// ObjectsOfType iterates objects whose runtime class is class or, when
// includeSubtypes is set, a descendant of class. Order is allocation order;
// it is stable for a given model instance.
func (m *Model) ObjectsOfType(class string, includeSubtypes bool) iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		if !includeSubtypes {
			for _, id := range m.byClass[class] {
				if !yield(m.objects[id]) {
					return
				}
			}
			return
		}
		for _, id := range m.order {
			o := m.objects[id]
			if schema.IsAssignable(o.class, class) {
				if !yield(o) {
					return
				}
			}
		}
	}
}

// Deref resolves a reference value against the model's index.
func (m *Model) Deref(v Value) (*Object, bool) {
	if !v.IsRef() {
		return nil, false
	}
	return m.Get(v.Target())
}
