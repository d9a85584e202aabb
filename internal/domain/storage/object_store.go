// Package storage defines the contract between the application layer and the
// remote object store holding asset blobs.
package storage

import (
	"context"
	"fmt"
)

// ErrorKind is the explicit enumeration of object-store failure classes.
// The gateway switches on these instead of inspecting client-specific error types.
type ErrorKind int

const (
	// KindNotFound means the requested key does not exist.
	KindNotFound ErrorKind = iota
	// KindAccessDenied means the store refused access to the key or bucket.
	KindAccessDenied
	// KindInternal covers every other client or transport failure.
	KindInternal
)

// Error is the typed error returned by ObjectStore implementations.
type Error struct {
	Kind ErrorKind
	Key  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("object store: %s (key=%q): %v", e.Kind, e.Key, e.Err)
}

// Unwrap returns the underlying client error.
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns a stable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAccessDenied:
		return "access denied"
	default:
		return "internal"
	}
}

// Object is a fetched blob together with the metadata the store reported.
type Object struct {
	Content     []byte
	ContentType string
}

// PutOptions carries the metadata persisted with an uploaded blob.
type PutOptions struct {
	ContentType  string
	CacheControl string
}

// ObjectStore is the narrow interface the asset gateway needs from the blob store.
type ObjectStore interface {
	// Get fetches the full content of the object at key.
	Get(ctx context.Context, key string) (*Object, error)

	// Put writes content under key with the supplied metadata.
	Put(ctx context.Context, key string, content []byte, opts PutOptions) error

	// BucketExists reports whether the configured container is reachable.
	BucketExists(ctx context.Context) (bool, error)

	// Bucket returns the name of the configured container.
	Bucket() string
}
