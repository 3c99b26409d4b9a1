package store

import (
	"context"
	"errors"
	"io"
)

// Collection names on the hosted data store.
const (
	Interns       = "Interns"
	Tasks         = "Tasks"
	Certificates  = "Certificates"
	Notifications = "Notifications"
	SystemLogs    = "SystemLogs"
)

var ErrNotFound = errors.New("store: record not found")

// Record is what every collection entity satisfies (model.Base does).
type Record interface {
	GetObjectID() string
	SetObjectID(id string)
}

// Store is the document-store contract the services program against. Find
// always returns the full collection: there is no pagination, projection or
// server-side filtering, all of that happens in memory after retrieval.
//
// Save upserts keyed on ObjectID presence and fills the store-assigned
// identity back into the passed record, so callers can reconcile local state
// without a second read.
type Store interface {
	Find(ctx context.Context, collection string, out any) error
	Save(ctx context.Context, collection string, record Record) error
	Remove(ctx context.Context, collection, objectID string) error
	Upload(ctx context.Context, dir, filename string, r io.Reader) (string, error)
	Close() error
}
