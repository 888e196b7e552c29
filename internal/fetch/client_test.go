package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<rdf:RDF/>"))
	}))
	defer srv.Close()
	c := &Client{}
	body, err := c.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(body) != "<rdf:RDF/>" {
		t.Fatalf("body = %q", body)
	}
}

func TestFetchRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	c := &Client{}
	if _, err := c.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected error on 404")
	}
}

func TestGraphQueryParameters(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte("ok"))
	}))
	defer srv.Close()
	c := &Client{PathwayCommonsURL: srv.URL}
	opts := &GraphOptions{Limit: 2, Organism: "9606", Datasources: []string{"pid", "panther"}}
	if _, err := c.GraphQuery(context.Background(), PathsFromTo, []string{"EGFR", "GRB2"}, []string{"MAPK1"}, opts); err != nil {
		t.Fatalf("graph query: %v", err)
	}
	if got.Get("kind") != "pathsfromto" {
		t.Fatalf("kind = %q", got.Get("kind"))
	}
	if got.Get("format") != "BIOPAX" {
		t.Fatalf("format = %q", got.Get("format"))
	}
	if len(got["source"]) != 2 || got["source"][0] != "EGFR" {
		t.Fatalf("source = %v", got["source"])
	}
	if len(got["target"]) != 1 || got["target"][0] != "MAPK1" {
		t.Fatalf("target = %v", got["target"])
	}
	if got.Get("limit") != "2" || got.Get("organism") != "9606" {
		t.Fatalf("limit/organism = %q/%q", got.Get("limit"), got.Get("organism"))
	}
	if len(got["datasource"]) != 2 {
		t.Fatalf("datasource = %v", got["datasource"])
	}
}

func TestGraphQueryValidation(t *testing.T) {
	c := &Client{PathwayCommonsURL: "http://unused.invalid"}
	ctx := context.Background()
	if _, err := c.GraphQuery(ctx, Neighborhood, []string{"EGFR"}, []string{"MAPK1"}, nil); err == nil {
		t.Fatalf("neighborhood with targets should fail")
	}
	if _, err := c.GraphQuery(ctx, PathsFromTo, []string{"EGFR"}, nil, nil); err == nil {
		t.Fatalf("pathsfromto without targets should fail")
	}
	if _, err := c.GraphQuery(ctx, GraphKind("shortestpath"), []string{"EGFR"}, nil, nil); err == nil {
		t.Fatalf("unknown kind should fail")
	}
	if _, err := c.GraphQuery(ctx, Neighborhood, nil, nil, nil); err == nil {
		t.Fatalf("empty sources should fail")
	}
}

func TestReactomeIdentifierNormalization(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte("ok"))
	}))
	defer srv.Close()
	c := &Client{ReactomeURL: srv.URL}
	if _, err := c.Reactome(context.Background(), "R-HSA-177929"); err != nil {
		t.Fatalf("reactome: %v", err)
	}
	if path != "/177929" {
		t.Fatalf("path = %q, want /177929", path)
	}
	if _, err := c.Reactome(context.Background(), "177946"); err != nil {
		t.Fatalf("reactome: %v", err)
	}
	if path != "/177946" {
		t.Fatalf("path = %q, want /177946", path)
	}
}

func TestCycExporters(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte("ok"))
	}))
	defer srv.Close()
	c := &Client{BioCycURL: srv.URL, EcoCycURL: srv.URL, MetaCycURL: srv.URL, HumanCycURL: srv.URL}
	ctx := context.Background()
	for name, call := range map[string]func() ([]byte, error){
		"biocyc":   func() ([]byte, error) { return c.BioCyc(ctx, "P105-PWY") },
		"ecocyc":   func() ([]byte, error) { return c.EcoCyc(ctx, "P105-PWY") },
		"metacyc":  func() ([]byte, error) { return c.MetaCyc(ctx, "P105-PWY") },
		"humancyc": func() ([]byte, error) { return c.HumanCyc(ctx, "P105-PWY") },
	} {
		if _, err := call(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got.Get("type") != "3" || got.Get("object") != "P105-PWY" {
			t.Fatalf("%s params = %v", name, got)
		}
	}
}

func TestNetPathURL(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte("ok"))
	}))
	defer srv.Close()
	c := &Client{NetPathURL: srv.URL}
	if _, err := c.NetPath(context.Background(), "22"); err != nil {
		t.Fatalf("netpath: %v", err)
	}
	if path != "/NetPath_22.owl" {
		t.Fatalf("path = %q", path)
	}
}
