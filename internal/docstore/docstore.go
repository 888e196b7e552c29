// Package docstore archives raw BioPAX OWL documents as fetched from
// their source, before any parsing. Documents are immutable: Put refuses
// to overwrite an existing key, so the archive always holds the bytes a
// model was built from.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ContentTypeOWL is the MIME type recorded for archived BioPAX documents.
const ContentTypeOWL = "application/rdf+xml"

// Driver identifies a concrete document store backend.
type Driver string

const (
	// DriverFilesystem stores documents under a local directory (default, dev).
	DriverFilesystem Driver = "fs"
	// DriverS3 stores documents in an S3 / MinIO compatible bucket.
	DriverS3 Driver = "s3"
	// DriverMemory keeps documents in process memory (tests).
	DriverMemory Driver = "memory"
)

// Info describes an archived document.
type Info struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	ETag         string    `json:"etag,omitempty"`
	Source       string    `json:"source,omitempty"` // originating URL or query
	LastModified time.Time `json:"last_modified"`
}

// Store is the archive abstraction shared by all drivers. Keys are
// caller-chosen document locators mapped to backend keys directly.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, source string) (Info, error)
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	Head(ctx context.Context, key string) (Info, error)
	Delete(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]Info, error)
	Driver() Driver
}

// ErrNotFound is returned by Get and Head for unknown keys.
var ErrNotFound = errors.New("docstore: document not found")

// Open selects a Store implementation using environment variables.
//
//	BIOPAXCORE_DOC_DRIVER: fs|s3|memory (default fs)
//	BIOPAXCORE_DOC_FS_ROOT: directory root when driver=fs (default ./docdata)
//	(S3 specific variables documented in s3.go)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("BIOPAXCORE_DOC_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return NewFilesystem(os.Getenv("BIOPAXCORE_DOC_FS_ROOT"))
	case DriverS3:
		return OpenS3FromEnv(ctx)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown document store driver %s", driver)
	}
}
