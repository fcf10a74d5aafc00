package entity

// Role is a named record; membership is not modelled.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

var RoleSchema = Schema[Role]{
	Name:    "Role",
	Path:    "role",
	Table:   "roles",
	Columns: []string{"name"},
	ID:      func(r *Role) *int64 { return &r.ID },
	Values:  func(r *Role) []any { return []any{r.Name} },
	Fields:  func(r *Role) []any { return []any{&r.Name} },
}
