// Package owl is the round-trip surface of the module: it parses BioPAX
// Level-3 OWL documents into models and serializes models back to RDF/XML
// that this same parser (and third-party BioPAX consumers) re-ingest.
//
// Callers own document acquisition: fetch bytes however you like, then hand
// them to Parse. The core never performs I/O beyond the reader and writer it
// is given.
package owl

import (
	"io"
	"os"
	"strings"

	"biopaxcore/internal/rdfxml"
	"biopaxcore/internal/resolve"
	"biopaxcore/pkg/biopax"
)

// Option adjusts serialization behavior.
type Option func(*rdfxml.Writer)

// WithObjectOrder overrides the default first-seen/allocation ordering of
// top-level elements. The policy receives the allocation-ordered identifier
// list and must return a permutation of it.
func WithObjectOrder(policy func(ids []string) []string) Option {
	return func(w *rdfxml.Writer) { w.Order = policy }
}

// Parse reads one BioPAX document and returns the resolved model together
// with the diagnostics accumulated by permissive policies. Malformed XML
// yields a ParseError; a dangling reference yields a ResolutionError.
func Parse(r io.Reader) (*biopax.Model, biopax.Diagnostics, error) {
	records, diags, err := rdfxml.Read(r)
	if err != nil {
		return nil, diags, err
	}
	model, more, err := resolve.Build(records)
	diags.Merge(more)
	if err != nil {
		return nil, diags, err
	}
	return model, diags, nil
}

// ParseString parses a document held in memory.
func ParseString(doc string) (*biopax.Model, biopax.Diagnostics, error) {
	return Parse(strings.NewReader(doc))
}

// ParseFile parses a document from the filesystem.
func ParseFile(path string) (*biopax.Model, biopax.Diagnostics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Serialize writes the model as RDF/XML. Output is deterministic for a given
// model and option set, and no bytes are written when serialization fails.
func Serialize(m *biopax.Model, w io.Writer, opts ...Option) error {
	var writer rdfxml.Writer
	for _, opt := range opts {
		opt(&writer)
	}
	return writer.Write(m, w)
}

// SerializeString returns the serialized document as a string.
func SerializeString(m *biopax.Model, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Serialize(m, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// SerializeFile writes the serialized document to path.
func SerializeFile(m *biopax.Model, path string, opts ...Option) error {
	doc, err := SerializeString(m, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}
