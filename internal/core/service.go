// Package core orchestrates document retrieval, archival, parsing and
// model caching behind a single Model call.
package core

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"biopaxcore/internal/cache"
	"biopaxcore/internal/docstore"
	"biopaxcore/internal/rdfxml"
	"biopaxcore/internal/resolve"
	"biopaxcore/pkg/biopax"
)

// FetchFunc retrieves the raw OWL bytes behind a locator. The fetch
// package's Client.Fetch satisfies it directly; tests substitute stubs.
type FetchFunc func(ctx context.Context, locator string) ([]byte, error)

// Service wires a fetcher, a document archive and a model cache into the
// read path: cache hit returns immediately, a miss fetches the document,
// archives the raw bytes, parses, caches and returns.
type Service struct {
	fetch   FetchFunc
	docs    docstore.Store
	cache   cache.Store
	metrics *ExpvarMetricsRecorder
}

// NewService constructs a Service. All collaborators are required except
// metrics, which defaults to a fresh recorder.
func NewService(fetch FetchFunc, docs docstore.Store, modelCache cache.Store, metrics *ExpvarMetricsRecorder) (*Service, error) {
	if fetch == nil {
		return nil, fmt.Errorf("fetch function required")
	}
	if docs == nil {
		return nil, fmt.Errorf("document store required")
	}
	if modelCache == nil {
		return nil, fmt.Errorf("model cache required")
	}
	if metrics == nil {
		metrics = NewExpvarMetricsRecorder("")
	}
	return &Service{fetch: fetch, docs: docs, cache: modelCache, metrics: metrics}, nil
}

// Metrics returns the service's recorder for inspection.
func (s *Service) Metrics() *ExpvarMetricsRecorder { return s.metrics }

// Model returns the parsed model behind a locator, consulting the cache
// first. Diagnostics from a fresh parse accompany the model; cached
// models return none since only cleanly diagnosed models are cached at
// miss time.
func (s *Service) Model(ctx context.Context, locator string) (*biopax.Model, biopax.Diagnostics, error) {
	if strings.TrimSpace(locator) == "" {
		return nil, nil, fmt.Errorf("empty locator")
	}
	start := time.Now()
	m, hit, err := s.cache.Get(ctx, locator)
	s.metrics.Observe(ctx, "cache_get", err == nil, time.Since(start))
	if err != nil {
		return nil, nil, fmt.Errorf("cache lookup for %s: %w", locator, err)
	}
	if hit {
		return m, nil, nil
	}

	start = time.Now()
	raw, err := s.fetch(ctx, locator)
	s.metrics.Observe(ctx, "fetch", err == nil, time.Since(start))
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s: %w", locator, err)
	}

	if err := s.archive(ctx, locator, raw); err != nil {
		return nil, nil, err
	}

	start = time.Now()
	records, diags, err := rdfxml.Read(bytes.NewReader(raw))
	if err == nil {
		var m2 *biopax.Model
		var more biopax.Diagnostics
		m2, more, err = resolve.Build(records)
		m, diags = m2, append(diags, more...)
	}
	s.metrics.Observe(ctx, "parse", err == nil, time.Since(start))
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", locator, err)
	}

	start = time.Now()
	cacheErr := s.cache.Put(ctx, locator, m)
	s.metrics.Observe(ctx, "cache_put", cacheErr == nil, time.Since(start))
	if cacheErr != nil {
		return nil, nil, fmt.Errorf("cache %s: %w", locator, cacheErr)
	}
	return m, diags, nil
}

// Archive returns the raw archived document for a locator, if present.
func (s *Service) Archive(ctx context.Context, locator string) (docstore.Info, []byte, error) {
	info, rc, err := s.docs.Get(ctx, ArchiveKey(locator))
	if err != nil {
		return docstore.Info{}, nil, err
	}
	defer rc.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return docstore.Info{}, nil, err
	}
	return info, buf.Bytes(), nil
}

func (s *Service) archive(ctx context.Context, locator string, raw []byte) error {
	key := ArchiveKey(locator)
	start := time.Now()
	// Already archived from an earlier run whose cache entry was evicted.
	if _, err := s.docs.Head(ctx, key); err == nil {
		s.metrics.Observe(ctx, "archive", true, time.Since(start))
		return nil
	}
	_, err := s.docs.Put(ctx, key, bytes.NewReader(raw), locator)
	s.metrics.Observe(ctx, "archive", err == nil, time.Since(start))
	if err != nil {
		return fmt.Errorf("archive %s: %w", locator, err)
	}
	return nil
}

// ArchiveKey maps an arbitrary locator to a document store key: a slug of
// the locator plus a short content-independent hash to keep distinct
// locators from colliding after slugging.
func ArchiveKey(locator string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, locator)
	const maxSlug = 80
	if len(slug) > maxSlug {
		slug = slug[:maxSlug]
	}
	sum := sha256.Sum256([]byte(locator))
	return slug + "-" + hex.EncodeToString(sum[:6]) + ".owl"
}
