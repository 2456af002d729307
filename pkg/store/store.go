// Package store persists named graph documents.
//
// A [Document] wraps an encoded canonical form with identity and
// timestamps. Two backends implement [Store]: MemoryStore for tests and
// single-process use, MongoStore for real persistence.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FilippoRanza/simplegraph/pkg/canonical"
	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

// Document is a stored graph: identity, a human-chosen name, and the
// canonical form encoded as JSON.
type Document struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Payload   []byte    `bson:"payload" json:"payload"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewDocument wraps an encoded form in a fresh document with a random
// ID and both timestamps set to now.
func NewDocument(name string, f *canonical.Form[float64]) (*Document, error) {
	payload, err := canonical.Marshal(f)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Document{
		ID:        uuid.NewString(),
		Name:      name,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Form decodes the document payload back into a canonical form.
func (d *Document) Form() (*canonical.Form[float64], error) {
	return canonical.Unmarshal[float64](d.Payload)
}

// Build materializes the document into the named backend.
func (d *Document) Build(backend string) (graph.Graph[float64], error) {
	f, err := d.Form()
	if err != nil {
		return nil, err
	}
	return f.Build(backend)
}

// Store is the interface for document persistence backends.
type Store interface {
	// Put inserts or replaces a document by ID.
	Put(ctx context.Context, doc *Document) error

	// Get retrieves a document by ID. A missing document is a
	// GRAPH_NOT_FOUND error.
	Get(ctx context.Context, id string) (*Document, error)

	// List returns all documents, newest first.
	List(ctx context.Context) ([]*Document, error)

	// Delete removes a document by ID. A missing document is a
	// GRAPH_NOT_FOUND error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

func errNotFound(id string) error {
	return errors.New(errors.ErrCodeGraphNotFound, "graph %s not found", id)
}
