package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"todo-backend/internal/domains/todo"
)

// AttachmentStore is the object-store collaborator. The service treats both
// URLs as opaque strings.
type AttachmentStore interface {
	// PresignedUploadURL mints a short-lived URL a client can PUT the
	// attachment to.
	PresignedUploadURL(ctx context.Context, todoID string) (string, error)

	// AttachmentURL is the deterministic public location of the item's
	// attachment, derived from its todoId.
	AttachmentURL(todoID string) string
}

// TodoService implements todo.Service. All state lives in the store; the
// service itself is stateless and safe for concurrent requests.
type TodoService struct {
	repo        todo.Repository
	attachments AttachmentStore
}

func NewTodoService(repo todo.Repository, attachments AttachmentStore) *TodoService {
	return &TodoService{repo: repo, attachments: attachments}
}

func (s *TodoService) GetTodos(ctx context.Context, userID, search string) ([]todo.Item, error) {
	q := todo.NewListQuery(userID).WithNameFilter(search)
	return s.repo.List(ctx, q)
}

func (s *TodoService) CreateTodo(ctx context.Context, userID string, req todo.CreateTodoRequest) (todo.Item, error) {
	todoID := uuid.NewString()

	item := todo.Item{
		UserID:        userID,
		TodoID:        todoID,
		Name:          req.Name,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		DueDate:       req.DueDate,
		Done:          false,
		Important:     false,
		AttachmentURL: s.attachments.AttachmentURL(todoID),
		Category:      req.Category,
	}

	log.Info().Str("user_id", userID).Str("todo_id", todoID).Msg("creating todo item")
	return s.repo.Create(ctx, item)
}

func (s *TodoService) UpdateTodo(ctx context.Context, userID, todoID string, req todo.UpdateTodoRequest) error {
	if err := s.authorize(ctx, userID, todoID); err != nil {
		return err
	}

	return s.repo.Update(ctx, userID, todoID, todo.Update{
		Name:      req.Name,
		DueDate:   req.DueDate,
		Done:      req.Done,
		Important: req.Important,
	})
}

func (s *TodoService) DeleteTodo(ctx context.Context, userID, todoID string) error {
	if err := s.authorize(ctx, userID, todoID); err != nil {
		return err
	}

	log.Info().Str("user_id", userID).Str("todo_id", todoID).Msg("deleting todo item")
	return s.repo.Delete(ctx, todoID, userID)
}

// GenerateUploadURL mints the presigned URL without an ownership check: the
// URL is short-lived and keyed by the unguessable todoId, and the route is
// only reachable by authenticated callers.
func (s *TodoService) GenerateUploadURL(ctx context.Context, todoID string) (string, error) {
	log.Info().Str("todo_id", todoID).Msg("generating attachment upload url")
	return s.attachments.PresignedUploadURL(ctx, todoID)
}

func (s *TodoService) GetSortedTodos(ctx context.Context, userID, sortField, sortDirection string) ([]todo.Item, error) {
	q := todo.NewListQuery(userID).WithProjection()
	items, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	return SortTodos(items, sortField, sortDirection), nil
}

// authorize is the single authorization barrier: the item must exist and
// must belong to the requester. Runs before every update and delete.
func (s *TodoService) authorize(ctx context.Context, userID, todoID string) error {
	item, err := s.repo.Get(ctx, todoID, userID)
	if err != nil {
		return err
	}
	if item == nil {
		return todo.ErrTodoNotFound
	}
	if item.UserID != userID {
		return todo.ErrForbidden
	}
	return nil
}
