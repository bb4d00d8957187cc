// Package store persists API documents in named collections. Every backend
// returns an opaque string id from Insert and exposes it as "_id" on reads.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned for ids the backend could never have issued.
	ErrInvalidID = errors.New("invalid document id")
)

// IDField is the key under which documents expose their id.
const IDField = "_id"

// Document is a stored record as a generic field map.
type Document map[string]any

// ID returns the document id, or "" if absent.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// Filter matches documents whose fields equal the given values.
type Filter map[string]any

// Store is the persistence boundary used by the HTTP handlers.
type Store interface {
	// Insert writes doc into collection, stamping created_at and updated_at,
	// and returns the generated id.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)
	// Find returns at most limit documents in insertion order; limit <= 0
	// means no limit.
	Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)
	// Update sets fields on the document with id and refreshes updated_at.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Name() string
	Close(ctx context.Context) error
}

// FieldsOf flattens a struct into its JSON field map. Maps are copied.
func FieldsOf(doc any) (map[string]any, error) {
	if m, ok := doc.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("document must encode to an object: %w", err)
	}
	return fields, nil
}
