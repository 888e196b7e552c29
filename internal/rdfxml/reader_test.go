package rdfxml

import (
	"errors"
	"strings"
	"testing"

	"biopaxcore/pkg/biopax"
)

const docHeader = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:owl="http://www.w3.org/2002/07/owl#"
         xmlns:bp="http://www.biopax.org/release/biopax-level3.owl#">
  <owl:Ontology rdf:about="">
    <owl:imports rdf:resource="http://www.biopax.org/release/biopax-level3.owl#"/>
  </owl:Ontology>
`

func read(t *testing.T, body string) ([]Record, biopax.Diagnostics) {
	t.Helper()
	records, diags, err := Read(strings.NewReader(docHeader + body + "</rdf:RDF>\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return records, diags
}

func TestReadTypedElements(t *testing.T) {
	records, diags := read(t, `
  <bp:Protein rdf:ID="p1">
    <bp:displayName>EGFR</bp:displayName>
    <bp:entityReference rdf:resource="#pr1"/>
  </bp:Protein>
  <bp:ProteinReference rdf:ID="pr1">
    <bp:sequence>MRPSG</bp:sequence>
  </bp:ProteinReference>
`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %s", diags)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	p := records[0]
	if p.Class != "Protein" || p.ID != "p1" {
		t.Fatalf("record 0 = %s %s", p.Class, p.ID)
	}
	if len(p.Props) != 2 {
		t.Fatalf("protein props = %d, want 2", len(p.Props))
	}
	if p.Props[0].Kind != PropLiteral || p.Props[0].Literal != "EGFR" {
		t.Fatalf("displayName prop = %+v", p.Props[0])
	}
	if p.Props[1].Kind != PropRef || p.Props[1].Ref != "pr1" {
		t.Fatalf("entityReference prop = %+v", p.Props[1])
	}
}

func TestReadAboutIdentity(t *testing.T) {
	records, _ := read(t, `
  <bp:Protein rdf:about="#p1"/>
  <bp:Protein rdf:about="http://example.org/proteins/p2"/>
`)
	if records[0].ID != "p1" {
		t.Fatalf("fragment about = %q, want p1", records[0].ID)
	}
	if records[1].ID != "http://example.org/proteins/p2" {
		t.Fatalf("uri about = %q", records[1].ID)
	}
}

func TestReadNestedInlineDefinition(t *testing.T) {
	records, _ := read(t, `
  <bp:ProteinReference rdf:ID="pr1">
    <bp:xref>
      <bp:UnificationXref rdf:ID="x1">
        <bp:db>uniprot</bp:db>
        <bp:id>P00533</bp:id>
      </bp:UnificationXref>
    </bp:xref>
  </bp:ProteinReference>
`)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	prop := records[0].Props[0]
	if prop.Kind != PropNested || prop.Nested == nil {
		t.Fatalf("xref prop = %+v", prop)
	}
	if prop.Nested.Class != "UnificationXref" || prop.Nested.ID != "x1" {
		t.Fatalf("nested = %s %s", prop.Nested.Class, prop.Nested.ID)
	}
	if len(prop.Nested.Props) != 2 {
		t.Fatalf("nested props = %d, want 2", len(prop.Nested.Props))
	}
}

func TestAnonymousNestedGetsSynthesizedIdentifier(t *testing.T) {
	records, _ := read(t, `
  <bp:ProteinReference rdf:ID="pr1">
    <bp:xref>
      <bp:UnificationXref>
        <bp:db>uniprot</bp:db>
      </bp:UnificationXref>
    </bp:xref>
  </bp:ProteinReference>
`)
	nested := records[0].Props[0].Nested
	if nested == nil || nested.ID == "" {
		t.Fatalf("anonymous nested record lacks identifier: %+v", records[0].Props[0])
	}
	if nested.ID == "pr1" {
		t.Fatalf("synthesized identifier collides with parent")
	}
}

func TestUnknownTagSkippedWithDiagnostic(t *testing.T) {
	records, diags := read(t, `
  <bp:FluxCapacitor rdf:ID="f1">
    <bp:displayName>not in the ontology</bp:displayName>
  </bp:FluxCapacitor>
  <bp:Protein rdf:ID="p1"/>
`)
	if len(records) != 1 || records[0].ID != "p1" {
		t.Fatalf("records = %+v, want just p1", records)
	}
	if len(diags) != 1 || diags[0].Code != biopax.DiagUnknownType {
		t.Fatalf("diagnostics = %s", diags)
	}
}

func TestMalformedXMLIsFatal(t *testing.T) {
	_, _, err := Read(strings.NewReader(docHeader + "<bp:Protein rdf:ID='p1'>"))
	var pe *biopax.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestNonRDFRootIsFatal(t *testing.T) {
	_, _, err := Read(strings.NewReader(`<?xml version="1.0"?><html></html>`))
	var pe *biopax.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError for non-RDF root, got %v", err)
	}
}
