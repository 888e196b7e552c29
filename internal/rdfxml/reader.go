// Package rdfxml reads and writes the RDF/XML serialization profile used by
// BioPAX Level-3 documents: typed resource elements under an rdf:RDF root,
// rdf:ID / rdf:about identity, rdf:resource reference tokens, and nested
// inline definitions. It is deliberately ignorant of attribute semantics;
// the reader consults the schema registry only to recognize class tags, and
// property validation belongs to the resolver.
package rdfxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"biopaxcore/pkg/biopax"
	"biopaxcore/pkg/biopax/schema"
)

// Namespaces of the BioPAX Level-3 wire profile.
const (
	NamespaceRDF    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceOWL    = "http://www.w3.org/2002/07/owl#"
	NamespaceBioPAX = "http://www.biopax.org/release/biopax-level3.owl#"
)

// PropKind discriminates the three shapes a property element can take.
type PropKind int

// Property shapes.
const (
	PropLiteral PropKind = iota
	PropRef
	PropNested
)

// Prop is one child property element of an element record.
type Prop struct {
	Name    string
	Kind    PropKind
	Literal string  // PropLiteral
	Ref     string  // PropRef: referenced identifier token
	Nested  *Record // PropNested: anonymous inline definition
	Line    int
}

// Record is one flat element record: the class tag, the resolved identity
// (or a synthesized one for anonymous inline definitions), and the raw
// property values in document order.
type Record struct {
	Class string
	ID    string
	Line  int
	Props []Prop
}

type reader struct {
	dec   *xml.Decoder
	diags biopax.Diagnostics
	anon  int
}

// Read parses a BioPAX RDF/XML document into flat element records. Unknown
// element tags are skipped with a diagnostic; malformed XML aborts with a
// ParseError.
func Read(r io.Reader) ([]Record, biopax.Diagnostics, error) {
	rd := &reader{dec: xml.NewDecoder(r)}
	records, err := rd.readDocument()
	if err != nil {
		return nil, rd.diags, err
	}
	return records, rd.diags, nil
}

func (r *reader) line() int {
	line, _ := r.dec.InputPos()
	return line
}

func (r *reader) fail(err error) error {
	if _, ok := err.(*biopax.ParseError); ok {
		return err
	}
	return &biopax.ParseError{Line: r.line(), Err: err}
}

func (r *reader) readDocument() ([]Record, error) {
	root, err := r.nextStart()
	if err != nil {
		return nil, r.fail(err)
	}
	if root == nil {
		return nil, r.fail(fmt.Errorf("empty document"))
	}
	if root.Name.Local != "RDF" {
		return nil, r.fail(fmt.Errorf("root element is %s, want rdf:RDF", root.Name.Local))
	}
	var records []Record
	for {
		tok, err := r.dec.Token()
		if err == io.EOF {
			return nil, r.fail(fmt.Errorf("unexpected end of document"))
		}
		if err != nil {
			return nil, r.fail(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == NamespaceOWL {
				// Ontology header carries no model content.
				if err := r.skip(); err != nil {
					return nil, r.fail(err)
				}
				continue
			}
			if _, known := schema.Lookup(t.Name.Local); !known {
				r.diags = append(r.diags, biopax.Diagnostic{
					Severity: biopax.SeverityWarn,
					Code:     biopax.DiagUnknownType,
					Message:  (&biopax.UnknownTypeError{Tag: t.Name.Local, Line: r.line()}).Error(),
					Line:     r.line(),
				})
				if err := r.skip(); err != nil {
					return nil, r.fail(err)
				}
				continue
			}
			rec, err := r.readRecord(t)
			if err != nil {
				return nil, r.fail(err)
			}
			records = append(records, *rec)
		case xml.EndElement:
			// closing rdf:RDF
			return records, nil
		}
	}
}

// nextStart consumes tokens until the first start element.
func (r *reader) nextStart() (*xml.StartElement, error) {
	for {
		tok, err := r.dec.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return &start, nil
		}
	}
}

// readRecord parses one typed resource element and its property children.
// The start element has already been consumed.
func (r *reader) readRecord(start xml.StartElement) (*Record, error) {
	rec := &Record{Class: start.Name.Local, Line: r.line()}
	rec.ID = identity(start)
	if rec.ID == "" {
		r.anon++
		rec.ID = fmt.Sprintf("%s_anon_%d", rec.Class, r.anon)
	}
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			prop, keep, err := r.readProp(t)
			if err != nil {
				return nil, err
			}
			if keep {
				rec.Props = append(rec.Props, prop)
			}
		case xml.EndElement:
			return rec, nil
		}
	}
}

// readProp parses one property element: an rdf:resource reference, a nested
// inline definition, or an inline literal. keep is false when the property
// was skipped (unknown nested class).
func (r *reader) readProp(start xml.StartElement) (Prop, bool, error) {
	prop := Prop{Name: start.Name.Local, Line: r.line()}
	for _, attr := range start.Attr {
		if attr.Name.Space == NamespaceRDF && attr.Name.Local == "resource" {
			prop.Kind = PropRef
			prop.Ref = strings.TrimPrefix(attr.Value, "#")
			if err := r.skip(); err != nil {
				return Prop{}, false, err
			}
			return prop, true, nil
		}
	}
	var text strings.Builder
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return Prop{}, false, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			if _, known := schema.Lookup(t.Name.Local); !known {
				r.diags = append(r.diags, biopax.Diagnostic{
					Severity: biopax.SeverityWarn,
					Code:     biopax.DiagUnknownType,
					Message:  (&biopax.UnknownTypeError{Tag: t.Name.Local, Line: r.line()}).Error(),
					Line:     r.line(),
				})
				if err := r.skip(); err != nil {
					return Prop{}, false, err
				}
				if err := r.skip(); err != nil { // rest of the property element
					return Prop{}, false, err
				}
				return Prop{}, false, nil
			}
			nested, err := r.readRecord(t)
			if err != nil {
				return Prop{}, false, err
			}
			prop.Kind = PropNested
			prop.Nested = nested
			if err := r.skip(); err != nil { // property end tag
				return Prop{}, false, err
			}
			return prop, true, nil
		case xml.EndElement:
			prop.Kind = PropLiteral
			prop.Literal = text.String()
			return prop, true, nil
		}
	}
}

// skip consumes tokens through the end of the current element.
func (r *reader) skip() error {
	return r.dec.Skip()
}

// identity extracts the rdf:ID or rdf:about identity of a typed element.
// Fragment-style about values ("#id") are normalized to the bare identifier
// so definitions and references agree.
func identity(start xml.StartElement) string {
	for _, attr := range start.Attr {
		if attr.Name.Space != NamespaceRDF {
			continue
		}
		switch attr.Name.Local {
		case "ID":
			return attr.Value
		case "about":
			return strings.TrimPrefix(attr.Value, "#")
		}
	}
	return ""
}
