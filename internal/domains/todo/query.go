package todo

// ListQuery describes a list request against the store. It is assembled
// immutably through the With* methods and translated to SQL by the
// repository; handlers and services never build query fragments themselves.
type ListQuery struct {
	UserID     string
	NameFilter string // case-sensitive substring match on name; empty = no filter
	Projected  bool   // restrict columns to the sort projection (no attachment URL)
}

// NewListQuery returns a query for every item owned by userID.
func NewListQuery(userID string) ListQuery {
	return ListQuery{UserID: userID}
}

// WithNameFilter returns a copy restricted to items whose name contains
// the given substring. An empty substring leaves the query unchanged.
func (q ListQuery) WithNameFilter(substring string) ListQuery {
	q.NameFilter = substring
	return q
}

// WithProjection returns a copy that selects only the fixed sort-projection
// column set.
func (q ListQuery) WithProjection() ListQuery {
	q.Projected = true
	return q
}
