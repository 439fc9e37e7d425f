package todo

import (
	"strings"
	"time"
)

// SortField identifies a sortable attribute of a todo item.
type SortField string

const (
	SortFieldName    SortField = "name"
	SortFieldDueDate SortField = "dueDate"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortFieldName, SortFieldDueDate:
		return true
	}
	return false
}

func (f SortField) String() string {
	return string(f)
}

// SortDirection is the requested ordering direction. Parsing is
// case-insensitive; anything unrecognized is treated as invalid and the
// caller falls back to ascending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToLower(s) {
	case "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	}
	return SortAsc, false
}

// Item is a single todo entry. Every item belongs to exactly one user and
// the (UserID, TodoID) pair is the lookup key for all operations.
type Item struct {
	UserID        string `json:"userId" db:"user_id"`
	TodoID        string `json:"todoId" db:"todo_id"`
	Name          string `json:"name" db:"name"`
	CreatedAt     string `json:"createdAt" db:"created_at"`
	DueDate       string `json:"dueDate" db:"due_date"`
	Done          bool   `json:"done" db:"done"`
	Important     bool   `json:"important" db:"important"`
	AttachmentURL string `json:"attachmentUrl,omitempty" db:"attachment_url"`
	Category      string `json:"category,omitempty" db:"category"`
}

// Update carries the full set of user-mutable fields for an item. All four
// are replaced on every update; immutable fields (TodoID, UserID, CreatedAt)
// and the attachment URL are never touched through this path.
type Update struct {
	Name      string `json:"name"`
	DueDate   string `json:"dueDate"`
	Done      bool   `json:"done"`
	Important bool   `json:"important"`
}

// DueDateTime parses the item's due date for chronological comparison.
// Returns the zero time when the date is empty or malformed.
func (i Item) DueDateTime() time.Time {
	if i.DueDate == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, i.DueDate); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", i.DueDate); err == nil {
		return t
	}
	return time.Time{}
}
