// Package schema describes the BioPAX Level-3 class hierarchy consumed by the
// reader, resolver and writer: every class, its ancestor chain, and for each
// declared attribute whether it holds a primitive literal, an enumerated
// literal or a reference to another object, and whether it is single- or
// multi-valued. The registry is built once from the declarative tables in
// classes.go and is immutable and safe for concurrent reads thereafter.
package schema

import (
	"fmt"
	"sort"
)

// Kind classifies the value space of an attribute.
type Kind int

// Attribute value kinds.
const (
	// KindPrimitive is a plain literal (string, number, boolean carried as text).
	KindPrimitive Kind = iota
	// KindReference points at another object in the same model by identifier.
	KindReference
	// KindEnum is a literal restricted to a named enumeration.
	KindEnum
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindReference:
		return "reference"
	case KindEnum:
		return "enum"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Attribute is a single declared attribute of a class.
type Attribute struct {
	Name string
	Kind Kind
	// Multi marks set/sequence attributes; single-valued attributes never
	// hold more than one value.
	Multi bool
	// Ordered marks the multi-valued attributes where ontology order is
	// meaningful (complex composition); all other multi attributes are
	// unordered sets.
	Ordered bool
	// Derived marks back-reference attributes maintained from their forward
	// relation by the resolver. Derived attributes are never serialized.
	Derived bool
	// Enum names the enumeration restricting the value when Kind is KindEnum.
	Enum string
}

// Class describes one entry of the type hierarchy. Attributes lists only the
// attributes declared directly on the class; use Attributes for the flattened
// ancestor-merged view.
type Class struct {
	Name       string
	Parent     string // empty for hierarchy roots
	Abstract   bool
	Attributes []Attribute
}

var (
	classIndex map[string]*Class
	flatIndex  map[string][]Attribute
	chainIndex map[string][]string
	classNames []string
)

func init() {
	if err := build(); err != nil {
		panic(err)
	}
}

// build indexes the declarative tables. The tables are compiled-in data, so
// inconsistencies are programmer errors surfaced at process start.
func build() error {
	classIndex = make(map[string]*Class, len(classTable))
	for i := range classTable {
		c := &classTable[i]
		if _, dup := classIndex[c.Name]; dup {
			return fmt.Errorf("schema: duplicate class %s", c.Name)
		}
		classIndex[c.Name] = c
	}
	chainIndex = make(map[string][]string, len(classTable))
	flatIndex = make(map[string][]Attribute, len(classTable))
	for name := range classIndex {
		chain, err := resolveChain(name)
		if err != nil {
			return err
		}
		chainIndex[name] = chain
		var flat []Attribute
		seen := make(map[string]struct{})
		// root-first so subclasses may not shadow inherited attributes
		for i := len(chain) - 1; i >= 0; i-- {
			for _, attr := range classIndex[chain[i]].Attributes {
				if _, dup := seen[attr.Name]; dup {
					return fmt.Errorf("schema: class %s redeclares attribute %s", name, attr.Name)
				}
				seen[attr.Name] = struct{}{}
				if attr.Kind == KindEnum {
					if _, ok := enumTable[attr.Enum]; !ok {
						return fmt.Errorf("schema: class %s attribute %s references unknown enumeration %s", name, attr.Name, attr.Enum)
					}
				}
				flat = append(flat, attr)
			}
		}
		flatIndex[name] = flat
	}
	classNames = make([]string, 0, len(classIndex))
	for name := range classIndex {
		classNames = append(classNames, name)
	}
	sort.Strings(classNames)
	return nil
}

// resolveChain returns the linear ancestor chain for name, self first.
func resolveChain(name string) ([]string, error) {
	var chain []string
	seen := make(map[string]struct{})
	for cur := name; cur != ""; {
		if _, cycle := seen[cur]; cycle {
			return nil, fmt.Errorf("schema: ancestor cycle through %s", cur)
		}
		seen[cur] = struct{}{}
		c, ok := classIndex[cur]
		if !ok {
			return nil, fmt.Errorf("schema: class %s names unknown parent %s", name, cur)
		}
		chain = append(chain, cur)
		cur = c.Parent
	}
	return chain, nil
}

// Lookup returns the declared class entry for name.
func Lookup(name string) (*Class, bool) {
	c, ok := classIndex[name]
	return c, ok
}

// Attributes returns the flattened attribute schema for the class: declared
// attributes of the class and all of its ancestors, root-declared first. The
// returned slice is shared and must not be mutated.
func Attributes(class string) []Attribute {
	return flatIndex[class]
}

// AttributeOf returns the flattened attribute named attr on class.
func AttributeOf(class, attr string) (Attribute, bool) {
	for _, a := range flatIndex[class] {
		if a.Name == attr {
			return a, true
		}
	}
	return Attribute{}, false
}

// Ancestors returns the linear ancestor chain for class, the class itself
// first and the hierarchy root last.
func Ancestors(class string) []string {
	return chainIndex[class]
}

// IsAssignable reports whether an object of runtime class is, or descends
// from, ancestor. A class is assignable to itself.
func IsAssignable(class, ancestor string) bool {
	for _, name := range chainIndex[class] {
		if name == ancestor {
			return true
		}
	}
	return false
}

// Classes returns every registered class name in sorted order.
func Classes() []string {
	return classNames
}

// EnumValues returns the literal set of a named enumeration, or nil when the
// enumeration is unknown.
func EnumValues(enum string) []string {
	return enumTable[enum]
}

// IsEnumValue reports whether literal belongs to the named enumeration.
func IsEnumValue(enum, literal string) bool {
	for _, v := range enumTable[enum] {
		if v == literal {
			return true
		}
	}
	return false
}
