package entity

type Permission struct {
	ID     int64  `json:"id"`
	Action string `json:"action"`
}

var PermissionSchema = Schema[Permission]{
	Name:    "Permission",
	Path:    "permission",
	Table:   "permissions",
	Columns: []string{"action"},
	ID:      func(p *Permission) *int64 { return &p.ID },
	Values:  func(p *Permission) []any { return []any{p.Action} },
	Fields:  func(p *Permission) []any { return []any{&p.Action} },
}
