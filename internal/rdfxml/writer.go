package rdfxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"biopaxcore/pkg/biopax"
	"biopaxcore/pkg/biopax/schema"
)

// OrderPolicy rearranges the allocation-ordered identifier list before
// emission. The default (nil) keeps allocation order; any policy must be a
// permutation, which the writer does not verify beyond length.
type OrderPolicy func(ids []string) []string

// Writer emits a model as RDF/XML. Output is deterministic: for the same
// model and policy two runs produce byte-identical documents.
type Writer struct {
	Order OrderPolicy
}

// Write walks the full object set and emits one top-level element per
// object. Reference-valued attributes are always emitted as rdf:resource
// tokens, never inline definitions: with arbitrary cycles inline nesting is
// not well-defined, and flattening to reference-by-identity guarantees
// termination. Dangling references are detected before any output bytes are
// produced.
func (w Writer) Write(m *biopax.Model, out io.Writer) error {
	ids := make([]string, 0, m.Len())
	for o := range m.Objects() {
		ids = append(ids, o.ID())
	}
	if w.Order != nil {
		ids = w.Order(ids)
		if len(ids) != m.Len() {
			return fmt.Errorf("rdfxml: order policy changed object count")
		}
	}
	if err := checkResolvable(m); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<rdf:RDF xmlns:rdf="` + NamespaceRDF + `"` + "\n")
	buf.WriteString(`         xmlns:owl="` + NamespaceOWL + `"` + "\n")
	buf.WriteString(`         xmlns:bp="` + NamespaceBioPAX + `">` + "\n")
	buf.WriteString(`  <owl:Ontology rdf:about="">` + "\n")
	buf.WriteString(`    <owl:imports rdf:resource="` + NamespaceBioPAX + `"/>` + "\n")
	buf.WriteString(`  </owl:Ontology>` + "\n")
	for _, id := range ids {
		o, ok := m.Get(id)
		if !ok {
			return fmt.Errorf("rdfxml: order policy introduced unknown identifier %q", id)
		}
		writeObject(&buf, o)
	}
	buf.WriteString("</rdf:RDF>\n")
	_, err := out.Write(buf.Bytes())
	return err
}

// checkResolvable asserts every reference value points at an object present
// in the model, so no partial document is ever produced.
func checkResolvable(m *biopax.Model) error {
	for o := range m.Objects() {
		for _, spec := range schema.Attributes(o.Class()) {
			if spec.Kind != schema.KindReference || spec.Derived {
				continue
			}
			for _, v := range o.Values(spec.Name) {
				if _, ok := m.Get(v.Target()); !ok {
					return &biopax.ResolutionError{Target: v.Target(), Owner: o.ID(), Attribute: spec.Name}
				}
			}
		}
	}
	return nil
}

func writeObject(buf *bytes.Buffer, o *biopax.Object) {
	fmt.Fprintf(buf, "  <bp:%s %s>\n", o.Class(), identityAttr(o.ID()))
	for _, spec := range schema.Attributes(o.Class()) {
		if spec.Derived {
			continue
		}
		for _, v := range o.Values(spec.Name) {
			if spec.Kind == schema.KindReference {
				fmt.Fprintf(buf, "    <bp:%s rdf:resource=\"%s\"/>\n", spec.Name, resourceRef(v.Target()))
			} else {
				fmt.Fprintf(buf, "    <bp:%s>%s</bp:%s>\n", spec.Name, escapeText(v.Text()), spec.Name)
			}
		}
	}
	fmt.Fprintf(buf, "  </bp:%s>\n", o.Class())
}

// identityAttr picks rdf:ID for NCName-shaped identifiers and rdf:about for
// identifiers that are full URIs (rdf:ID is restricted to XML names).
func identityAttr(id string) string {
	if isFullURI(id) {
		return `rdf:about="` + escapeAttr(id) + `"`
	}
	return `rdf:ID="` + escapeAttr(id) + `"`
}

// resourceRef renders a reference target for rdf:resource. Fragment-shaped
// identifiers get the "#" prefix resolving them against the document; full
// URIs must stay absolute or consumers outside this process see a dangling
// fragment of the output document instead.
func resourceRef(id string) string {
	if isFullURI(id) {
		return escapeAttr(id)
	}
	return "#" + escapeAttr(id)
}

func isFullURI(id string) bool {
	return strings.ContainsAny(id, ":/#")
}

func escapeText(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func escapeAttr(s string) string {
	return escapeText(s)
}
