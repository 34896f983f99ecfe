package api

import (
	"context"
	"net/url"
)

// Resource maps the five CRUD intents onto one backend collection path.
// E is the entity type as the server returns it (identifier included);
// D is the draft type the client submits (identifier excluded).
//
// Update has whole-record replacement semantics: the backend contract is
// PUT, not PATCH, so fields left zero in the draft are cleared on the
// server, not preserved. Delete is not idempotent from the caller's view;
// a second Delete of the same id fails with a 404 *APIError.
type Resource[E, D any] struct {
	client *Client
	path   string
}

// NewResource binds a Resource to a collection path such as "/api/threatactors".
func NewResource[E, D any](client *Client, path string) *Resource[E, D] {
	return &Resource[E, D]{client: client, path: path}
}

// List fetches the whole collection. An empty collection is a valid,
// non-error result and decodes to an empty slice.
func (r *Resource[E, D]) List(ctx context.Context) ([]E, error) {
	var items []E
	if err := r.client.Get(ctx, r.path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single record by identifier.
func (r *Resource[E, D]) Get(ctx context.Context, id string) (E, error) {
	var item E
	err := r.client.Get(ctx, r.itemPath(id), &item)
	return item, err
}

// Create submits a draft and returns the stored record, server-assigned
// identifier included.
func (r *Resource[E, D]) Create(ctx context.Context, draft D) (E, error) {
	var item E
	err := r.client.Post(ctx, r.path, draft, &item)
	return item, err
}

// Update replaces the whole record behind id with the draft.
func (r *Resource[E, D]) Update(ctx context.Context, id string, draft D) (E, error) {
	var item E
	err := r.client.Put(ctx, r.itemPath(id), draft, &item)
	return item, err
}

// Delete removes the record behind id. The identifier is invalid afterwards.
func (r *Resource[E, D]) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.itemPath(id))
}

func (r *Resource[E, D]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
