package todo

import "context"

// Repository is the item store adapter. Every method is a single round trip
// to the backing store; no retries, no transactions, no batching. Existence
// and ownership checks are the service's responsibility, not the store's.
type Repository interface {
	// List returns the items matched by q in natural store order
	// (stable across repeated reads absent writes).
	List(ctx context.Context, q ListQuery) ([]Item, error)

	// Get is a point lookup by composite key. A missing item is
	// (nil, nil), not an error.
	Get(ctx context.Context, todoID, userID string) (*Item, error)

	// Create inserts (or overwrites) the item by composite key and
	// returns it unchanged.
	Create(ctx context.Context, item Item) (Item, error)

	// Update replaces the four mutable fields of the keyed item. It does
	// not verify the item exists.
	Update(ctx context.Context, userID, todoID string, upd Update) error

	// Delete removes the keyed item. Deleting a missing key is a no-op.
	Delete(ctx context.Context, todoID, userID string) error

	// SetAttachmentURL updates only the attachment URL of the keyed item.
	SetAttachmentURL(ctx context.Context, todoID, userID, url string) error
}
