package todo

import "context"

// Service is the todo facade consumed by the HTTP handlers. The userID
// argument is the verified identity supplied by the auth middleware; the
// service trusts it without re-validation.
type Service interface {
	// GetTodos lists the caller's items, optionally restricted to those
	// whose name contains search as a case-sensitive substring.
	GetTodos(ctx context.Context, userID, search string) ([]Item, error)

	// CreateTodo assigns todoId, createdAt and the derived attachment URL,
	// defaults done and important to false, and persists the item.
	CreateTodo(ctx context.Context, userID string, req CreateTodoRequest) (Item, error)

	// UpdateTodo replaces the mutable fields of the caller's item.
	// Fails with ErrTodoNotFound or ErrForbidden.
	UpdateTodo(ctx context.Context, userID, todoID string, req UpdateTodoRequest) error

	// DeleteTodo permanently removes the caller's item. Same failure
	// modes as UpdateTodo.
	DeleteTodo(ctx context.Context, userID, todoID string) error

	// GenerateUploadURL mints a short-lived presigned upload URL for the
	// item's attachment object. It performs no ownership check; the URL
	// is time-limited and keyed by the unguessable todoId.
	GenerateUploadURL(ctx context.Context, todoID string) (string, error)

	// GetSortedTodos lists the caller's items in the requested order.
	// Unsupported fields or directions degrade to ascending name order.
	GetSortedTodos(ctx context.Context, userID, sortField, sortDirection string) ([]Item, error)
}
