package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"todo-backend/internal/domains/todo"
)

// nameCollator gives locale-aware name comparison, matching how the
// frontend compares labels. Collators are not safe for concurrent use,
// so one is built per sort call.
func nameCollator() *collate.Collator {
	return collate.New(language.English)
}

// SortTodos orders items by the requested field and direction. The sort is
// stable: ties keep the relative order the store returned. The engine never
// fails on unrecognized input; an unsupported field, or a direction that is
// not asc/desc (case-insensitive), degrades to ascending name order.
// Filtering happens at the store layer, never here.
func SortTodos(items []todo.Item, sortField, sortDirection string) []todo.Item {
	field := todo.SortField(sortField)
	direction, ok := todo.ParseSortDirection(sortDirection)
	if !ok || !field.IsValid() {
		field = todo.SortFieldName
		direction = todo.SortAsc
	}

	sorted := make([]todo.Item, len(items))
	copy(sorted, items)

	var less func(a, b todo.Item) bool
	switch field {
	case todo.SortFieldDueDate:
		less = func(a, b todo.Item) bool {
			return a.DueDateTime().Before(b.DueDateTime())
		}
	default:
		col := nameCollator()
		less = func(a, b todo.Item) bool {
			return col.CompareString(a.Name, b.Name) < 0
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == todo.SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
