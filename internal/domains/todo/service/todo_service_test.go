package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-backend/internal/domains/todo"
)

// fakeRepo is an in-memory todo.Repository that preserves insertion order,
// like the real table's (created_at, todo_id) ordering does.
type fakeRepo struct {
	items []todo.Item
}

func (f *fakeRepo) List(_ context.Context, q todo.ListQuery) ([]todo.Item, error) {
	out := []todo.Item{}
	for _, item := range f.items {
		if item.UserID != q.UserID {
			continue
		}
		if q.NameFilter != "" && !strings.Contains(item.Name, q.NameFilter) {
			continue
		}
		if q.Projected {
			item.AttachmentURL = ""
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepo) Get(_ context.Context, todoID, userID string) (*todo.Item, error) {
	for _, item := range f.items {
		if item.TodoID == todoID && item.UserID == userID {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(_ context.Context, item todo.Item) (todo.Item, error) {
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeRepo) Update(_ context.Context, userID, todoID string, upd todo.Update) error {
	for i, item := range f.items {
		if item.TodoID == todoID && item.UserID == userID {
			f.items[i].Name = upd.Name
			f.items[i].DueDate = upd.DueDate
			f.items[i].Done = upd.Done
			f.items[i].Important = upd.Important
		}
	}
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, todoID, userID string) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.TodoID != todoID || item.UserID != userID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeRepo) SetAttachmentURL(_ context.Context, todoID, userID, url string) error {
	for i, item := range f.items {
		if item.TodoID == todoID && item.UserID == userID {
			f.items[i].AttachmentURL = url
		}
	}
	return nil
}

type fakeAttachments struct{}

func (fakeAttachments) PresignedUploadURL(_ context.Context, todoID string) (string, error) {
	return "https://objects.local/upload/" + todoID + "?sig=abc", nil
}

func (fakeAttachments) AttachmentURL(todoID string) string {
	return "https://objects.local/todo-attachments/attachments/" + todoID
}

func newTestService() (*TodoService, *fakeRepo) {
	repo := &fakeRepo{}
	return NewTodoService(repo, fakeAttachments{}), repo
}

func TestCreateTodo(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, "U1", todo.CreateTodoRequest{
		Name:    "Buy milk",
		DueDate: "2024-01-10",
	})
	require.NoError(t, err)

	t.Run("assigns a server-side todoId", func(t *testing.T) {
		_, err := uuid.Parse(created.TodoID)
		assert.NoError(t, err)
	})

	t.Run("sets createdAt to a current RFC3339 timestamp", func(t *testing.T) {
		createdAt, err := time.Parse(time.RFC3339, created.CreatedAt)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), createdAt, time.Minute)
	})

	t.Run("defaults done and important to false", func(t *testing.T) {
		assert.False(t, created.Done)
		assert.False(t, created.Important)
	})

	t.Run("derives the attachment url from todoId", func(t *testing.T) {
		assert.Equal(t, fakeAttachments{}.AttachmentURL(created.TodoID), created.AttachmentURL)
	})

	t.Run("a get right after create returns the stored item", func(t *testing.T) {
		stored, err := repo.Get(ctx, created.TodoID, "U1")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, created, *stored)
	})

	t.Run("listing the owner returns exactly the created item", func(t *testing.T) {
		items, err := svc.GetTodos(ctx, "U1", "")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Buy milk", items[0].Name)
		assert.NotEmpty(t, items[0].AttachmentURL)
	})
}

func TestGetTodosSearch(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, name := range []string{"Buy milk", "Buy bread", "Drink milkshake"} {
		_, err := svc.CreateTodo(ctx, "U1", todo.CreateTodoRequest{Name: name, DueDate: "2024-01-10"})
		require.NoError(t, err)
	}

	t.Run("returns only items whose name contains the substring", func(t *testing.T) {
		items, err := svc.GetTodos(ctx, "U1", "milk")
		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, item := range items {
			assert.Contains(t, item.Name, "milk")
		}
	})

	t.Run("the match is case-sensitive", func(t *testing.T) {
		items, err := svc.GetTodos(ctx, "U1", "Milk")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("an empty search returns everything", func(t *testing.T) {
		items, err := svc.GetTodos(ctx, "U1", "")
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})
}

func TestUpdateTodo(t *testing.T) {
	ctx := context.Background()
	upd := todo.UpdateTodoRequest{Name: "changed", DueDate: "2024-02-01", Done: true, Important: true}

	t.Run("updates the owner's item", func(t *testing.T) {
		svc, repo := newTestService()
		created, err := svc.CreateTodo(ctx, "U1", todo.CreateTodoRequest{Name: "orig", DueDate: "2024-01-10"})
		require.NoError(t, err)

		require.NoError(t, svc.UpdateTodo(ctx, "U1", created.TodoID, upd))

		stored, err := repo.Get(ctx, created.TodoID, "U1")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "changed", stored.Name)
		assert.Equal(t, "2024-02-01", stored.DueDate)
		assert.True(t, stored.Done)
		assert.True(t, stored.Important)

		// Immutable fields survive the update.
		assert.Equal(t, created.CreatedAt, stored.CreatedAt)
		assert.Equal(t, created.AttachmentURL, stored.AttachmentURL)
	})

	t.Run("fails with NotFound for a missing item", func(t *testing.T) {
		svc, _ := newTestService()
		err := svc.UpdateTodo(ctx, "U1", uuid.NewString(), upd)
		assert.ErrorIs(t, err, todo.ErrTodoNotFound)
	})

	t.Run("a foreign caller gets NotFound and the item is unchanged", func(t *testing.T) {
		// The store is keyed by (owner, id), so a lookup under the wrong
		// owner resolves to nothing.
		svc, repo := newTestService()
		created, err := svc.CreateTodo(ctx, "U1", todo.CreateTodoRequest{Name: "orig", DueDate: "2024-01-10"})
		require.NoError(t, err)

		err = svc.UpdateTodo(ctx, "U2", created.TodoID, upd)
		assert.Error(t, err)

		stored, getErr := repo.Get(ctx, created.TodoID, "U1")
		require.NoError(t, getErr)
		require.NotNil(t, stored)
		assert.Equal(t, created, *stored)
	})
}

func TestUpdateTodoForbidden(t *testing.T) {
	// A stored item whose owner differs from the requesting identity is
	// rejected with Forbidden before any write happens.
	ctx := context.Background()
	repo := &fakeRepo{items: []todo.Item{
		{UserID: "U2", TodoID: "t-1", Name: "orig", CreatedAt: "2024-01-01T00:00:00Z"},
	}}
	svc := NewTodoService(&foreignGetRepo{fakeRepo: repo}, fakeAttachments{})

	err := svc.UpdateTodo(ctx, "U1", "t-1", todo.UpdateTodoRequest{Name: "changed", DueDate: "2024-02-01"})
	assert.ErrorIs(t, err, todo.ErrForbidden)
	assert.Equal(t, "orig", repo.items[0].Name)
}

// foreignGetRepo resolves Get by todoID alone, mimicking a store that can
// hand back an item owned by someone else.
type foreignGetRepo struct {
	*fakeRepo
}

func (f *foreignGetRepo) Get(_ context.Context, todoID, _ string) (*todo.Item, error) {
	for _, item := range f.items {
		if item.TodoID == todoID {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func TestDeleteTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the owner's item", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.CreateTodo(ctx, "U1", todo.CreateTodoRequest{Name: "x", DueDate: "2024-01-10"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTodo(ctx, "U1", created.TodoID))

		items, err := svc.GetTodos(ctx, "U1", "")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("fails with NotFound for a missing item", func(t *testing.T) {
		svc, _ := newTestService()
		err := svc.DeleteTodo(ctx, "U1", uuid.NewString())
		assert.ErrorIs(t, err, todo.ErrTodoNotFound)
	})

	t.Run("fails with Forbidden for a foreign item", func(t *testing.T) {
		repo := &fakeRepo{items: []todo.Item{
			{UserID: "U2", TodoID: "t-1", Name: "keep"},
		}}
		svc := NewTodoService(&foreignGetRepo{fakeRepo: repo}, fakeAttachments{})

		err := svc.DeleteTodo(ctx, "U1", "t-1")
		assert.ErrorIs(t, err, todo.ErrForbidden)
		assert.Len(t, repo.items, 1)
	})
}

func TestGenerateUploadURL(t *testing.T) {
	svc, _ := newTestService()

	url, err := svc.GenerateUploadURL(context.Background(), "some-todo-id")
	require.NoError(t, err)
	assert.Contains(t, url, "some-todo-id")
}

func TestGetSortedTodos(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i, name := range []string{"B", "A", "C"} {
		_, err := svc.CreateTodo(ctx, "U1", todo.CreateTodoRequest{
			Name:    name,
			DueDate: fmt.Sprintf("2024-01-%02d", 10+i),
		})
		require.NoError(t, err)
	}

	t.Run("sorts ascending by name", func(t *testing.T) {
		items, err := svc.GetSortedTodos(ctx, "U1", "name", "asc")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, names(items))
	})

	t.Run("sorts descending by name", func(t *testing.T) {
		items, err := svc.GetSortedTodos(ctx, "U1", "name", "desc")
		require.NoError(t, err)
		assert.Equal(t, []string{"C", "B", "A"}, names(items))
	})

	t.Run("sorts by due date", func(t *testing.T) {
		items, err := svc.GetSortedTodos(ctx, "U1", "dueDate", "asc")
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "A", "C"}, names(items))
	})

	t.Run("unsupported field behaves like ascending name", func(t *testing.T) {
		items, err := svc.GetSortedTodos(ctx, "U1", "category", "desc")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, names(items))
	})

	t.Run("the projection excludes attachment urls", func(t *testing.T) {
		items, err := svc.GetSortedTodos(ctx, "U1", "name", "asc")
		require.NoError(t, err)
		for _, item := range items {
			assert.Empty(t, item.AttachmentURL)
		}
	})
}
