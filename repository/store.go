package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no document has the requested id.
	ErrNotFound = errors.New("document not found")
	// ErrPermissionDenied is returned when the store refuses the operation for the configured account.
	ErrPermissionDenied = errors.New("permission denied")
)

// DocumentStore is the remote store the console works against. Documents are addressed by
// collection and id; filtering always happens after a full read.
type DocumentStore interface {
	// All reads every document of the collection into out, a pointer to a slice, ordered by id.
	All(ctx context.Context, collection string, out any) error
	// Get reads one document into out. It returns ErrNotFound when the id is unknown.
	Get(ctx context.Context, collection, id string, out any) error
	// Set creates the document or overwrites all of its fields.
	Set(ctx context.Context, collection, id string, doc any) error
	// Update changes only the named fields of an existing document.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
	Close(ctx context.Context) error
}

// collection gives typed access to one collection of a DocumentStore.
type collection[T any] struct {
	store DocumentStore
	name  string
}

func (c collection[T]) all(ctx context.Context) ([]T, error) {
	var docs []T
	if err := c.store.All(ctx, c.name, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

func (c collection[T]) get(ctx context.Context, id string) (*T, error) {
	var doc T
	if err := c.store.Get(ctx, c.name, id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
