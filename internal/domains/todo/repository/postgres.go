package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"todo-backend/internal/domains/todo"
	"todo-backend/internal/infrastructure/database"
)

// Column sets for the two read paths. The projected set backs the sorted
// list and deliberately excludes attachment_url.
const (
	allColumns       = "user_id, todo_id, name, created_at, due_date, done, important, attachment_url, category"
	projectedColumns = "user_id, todo_id, name, created_at, due_date, done, important, category"
)

// PostgresRepository implements todo.Repository against a todos table keyed
// by (user_id, todo_id).
type PostgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// escapeLike makes s safe as a literal substring inside a LIKE pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// List translates the query descriptor to a single SELECT. Natural store
// order is (created_at, todo_id) so repeated reads return identical
// sequences absent writes.
func (r *PostgresRepository) List(ctx context.Context, q todo.ListQuery) ([]todo.Item, error) {
	columns := allColumns
	if q.Projected {
		columns = projectedColumns
	}

	sql := fmt.Sprintf("SELECT %s FROM todos WHERE user_id = $1", columns)
	args := []any{q.UserID}

	if q.NameFilter != "" {
		sql += ` AND name LIKE '%' || $2 || '%' ESCAPE '\'`
		args = append(args, escapeLike(q.NameFilter))
	}
	sql += " ORDER BY created_at, todo_id"

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	items := []todo.Item{}
	for rows.Next() {
		item, err := scanItem(rows, q.Projected)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return items, nil
}

func scanItem(rows pgx.Rows, projected bool) (todo.Item, error) {
	var (
		item          todo.Item
		dueDate       *string
		attachmentURL *string
		category      *string
	)

	var err error
	if projected {
		err = rows.Scan(&item.UserID, &item.TodoID, &item.Name, &item.CreatedAt,
			&dueDate, &item.Done, &item.Important, &category)
	} else {
		err = rows.Scan(&item.UserID, &item.TodoID, &item.Name, &item.CreatedAt,
			&dueDate, &item.Done, &item.Important, &attachmentURL, &category)
	}
	if err != nil {
		return todo.Item{}, err
	}

	if dueDate != nil {
		item.DueDate = *dueDate
	}
	if attachmentURL != nil {
		item.AttachmentURL = *attachmentURL
	}
	if category != nil {
		item.Category = *category
	}
	return item, nil
}

// Get is a point lookup by composite key. A missing row is (nil, nil).
func (r *PostgresRepository) Get(ctx context.Context, todoID, userID string) (*todo.Item, error) {
	sql := fmt.Sprintf("SELECT %s FROM todos WHERE user_id = $1 AND todo_id = $2", allColumns)

	var (
		item          todo.Item
		dueDate       *string
		attachmentURL *string
		category      *string
	)

	err := r.db.Pool.QueryRow(ctx, sql, userID, todoID).Scan(
		&item.UserID, &item.TodoID, &item.Name, &item.CreatedAt,
		&dueDate, &item.Done, &item.Important, &attachmentURL, &category,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query todo: %w", err)
	}

	if dueDate != nil {
		item.DueDate = *dueDate
	}
	if attachmentURL != nil {
		item.AttachmentURL = *attachmentURL
	}
	if category != nil {
		item.Category = *category
	}
	return &item, nil
}

// Create upserts by composite key and hands the item back unchanged.
func (r *PostgresRepository) Create(ctx context.Context, item todo.Item) (todo.Item, error) {
	sql := `
		INSERT INTO todos (user_id, todo_id, name, created_at, due_date, done, important, attachment_url, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, todo_id) DO UPDATE SET
			name = EXCLUDED.name,
			created_at = EXCLUDED.created_at,
			due_date = EXCLUDED.due_date,
			done = EXCLUDED.done,
			important = EXCLUDED.important,
			attachment_url = EXCLUDED.attachment_url,
			category = EXCLUDED.category`

	_, err := r.db.Pool.Exec(ctx, sql,
		item.UserID, item.TodoID, item.Name, item.CreatedAt,
		nullable(item.DueDate), item.Done, item.Important,
		nullable(item.AttachmentURL), nullable(item.Category),
	)
	if err != nil {
		return todo.Item{}, fmt.Errorf("insert todo: %w", err)
	}
	return item, nil
}

// Update replaces the four mutable fields without checking existence;
// that check belongs to the service.
func (r *PostgresRepository) Update(ctx context.Context, userID, todoID string, upd todo.Update) error {
	sql := `
		UPDATE todos
		SET name = $1, due_date = $2, done = $3, important = $4
		WHERE user_id = $5 AND todo_id = $6`

	if _, err := r.db.Pool.Exec(ctx, sql,
		upd.Name, nullable(upd.DueDate), upd.Done, upd.Important, userID, todoID,
	); err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return nil
}

// Delete removes the keyed row; a missing key is a no-op.
func (r *PostgresRepository) Delete(ctx context.Context, todoID, userID string) error {
	sql := "DELETE FROM todos WHERE user_id = $1 AND todo_id = $2"
	if _, err := r.db.Pool.Exec(ctx, sql, userID, todoID); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}

// SetAttachmentURL updates the single attachment_url column.
func (r *PostgresRepository) SetAttachmentURL(ctx context.Context, todoID, userID, url string) error {
	sql := "UPDATE todos SET attachment_url = $1 WHERE user_id = $2 AND todo_id = $3"
	if _, err := r.db.Pool.Exec(ctx, sql, url, userID, todoID); err != nil {
		return fmt.Errorf("set attachment url: %w", err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
