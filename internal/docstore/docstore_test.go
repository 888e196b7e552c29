package docstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	fsStore, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("fs store: %v", err)
	}
	return map[string]Store{"fs": fsStore, "memory": NewMemory()}
}

func TestPutGetHeadDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			doc := "<rdf:RDF>archived</rdf:RDF>"
			info, err := s.Put(ctx, "reactome/177929.owl", strings.NewReader(doc), "https://reactome.org/177929")
			if err != nil {
				t.Fatalf("put: %v", err)
			}
			if info.Size != int64(len(doc)) || info.ContentType != ContentTypeOWL {
				t.Fatalf("info = %+v", info)
			}
			got, rc, err := s.Get(ctx, "reactome/177929.owl")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			body, _ := io.ReadAll(rc)
			rc.Close()
			if string(body) != doc {
				t.Fatalf("body = %q", body)
			}
			if got.Source != "https://reactome.org/177929" {
				t.Fatalf("source = %q", got.Source)
			}
			if _, err := s.Head(ctx, "reactome/177929.owl"); err != nil {
				t.Fatalf("head: %v", err)
			}
			ok, err := s.Delete(ctx, "reactome/177929.owl")
			if err != nil || !ok {
				t.Fatalf("delete = %v, %v", ok, err)
			}
			if _, err := s.Head(ctx, "reactome/177929.owl"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("head after delete: %v", err)
			}
			ok, err = s.Delete(ctx, "reactome/177929.owl")
			if err != nil || ok {
				t.Fatalf("second delete = %v, %v", ok, err)
			}
		})
	}
}

func TestPutIsCreateOnly(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Put(ctx, "doc.owl", strings.NewReader("first"), ""); err != nil {
				t.Fatalf("put: %v", err)
			}
			if _, err := s.Put(ctx, "doc.owl", strings.NewReader("second"), ""); err == nil {
				t.Fatalf("overwrite should fail")
			}
			_, rc, err := s.Get(ctx, "doc.owl")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			body, _ := io.ReadAll(rc)
			rc.Close()
			if string(body) != "first" {
				t.Fatalf("archive mutated: %q", body)
			}
		})
	}
}

func TestListByPrefix(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"pc/q1.owl", "pc/q2.owl", "netpath/22.owl"} {
				if _, err := s.Put(ctx, key, strings.NewReader("x"), ""); err != nil {
					t.Fatalf("put %s: %v", key, err)
				}
			}
			infos, err := s.List(ctx, "pc/")
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(infos) != 2 || infos[0].Key != "pc/q1.owl" || infos[1].Key != "pc/q2.owl" {
				t.Fatalf("list = %+v", infos)
			}
			all, err := s.List(ctx, "")
			if err != nil {
				t.Fatalf("list all: %v", err)
			}
			if len(all) != 3 {
				t.Fatalf("list all = %d entries", len(all))
			}
		})
	}
}

func TestFilesystemRejectsTraversal(t *testing.T) {
	s, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("fs store: %v", err)
	}
	ctx := context.Background()
	for _, key := range []string{"", "  ", "../escape.owl", "/abs.owl", "a/../../b"} {
		if _, err := s.Put(ctx, key, strings.NewReader("x"), ""); err == nil {
			t.Fatalf("key %q should be rejected", key)
		}
	}
}

func TestFilesystemETagIsContentHash(t *testing.T) {
	ctx := context.Background()
	s, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("fs store: %v", err)
	}
	a, err := s.Put(ctx, "a.owl", strings.NewReader("same bytes"), "")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	b, err := s.Put(ctx, "b.owl", strings.NewReader("same bytes"), "")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if a.ETag == "" || a.ETag != b.ETag {
		t.Fatalf("etags %q vs %q", a.ETag, b.ETag)
	}
}

func TestOpenSelectsDriver(t *testing.T) {
	t.Setenv("BIOPAXCORE_DOC_DRIVER", "memory")
	s, err := Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Driver() != DriverMemory {
		t.Fatalf("driver = %s", s.Driver())
	}
	t.Setenv("BIOPAXCORE_DOC_DRIVER", "fs")
	t.Setenv("BIOPAXCORE_DOC_FS_ROOT", t.TempDir())
	s, err = Open(context.Background())
	if err != nil {
		t.Fatalf("open fs: %v", err)
	}
	if s.Driver() != DriverFilesystem {
		t.Fatalf("driver = %s", s.Driver())
	}
	t.Setenv("BIOPAXCORE_DOC_DRIVER", "bogus")
	if _, err := Open(context.Background()); err == nil {
		t.Fatalf("unknown driver should fail")
	}
}
