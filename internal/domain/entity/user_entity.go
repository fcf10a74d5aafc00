package entity

// User is a flat account record. It carries no credentials and is not
// linked to roles or permissions.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

var UserSchema = Schema[User]{
	Name:    "User",
	Path:    "user",
	Table:   "users",
	Columns: []string{"username", "email"},
	ID:      func(u *User) *int64 { return &u.ID },
	Values:  func(u *User) []any { return []any{u.Username, u.Email} },
	Fields:  func(u *User) []any { return []any{&u.Username, &u.Email} },
}
