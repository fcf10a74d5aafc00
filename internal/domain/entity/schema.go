package entity

// Schema maps a flat record type onto its table.
// Columns lists the mutable columns in the order Values and Fields return them.
type Schema[T any] struct {
	Name    string // display name used in messages, e.g. "User"
	Path    string // route segment, e.g. "user"
	Table   string
	Columns []string

	ID     func(*T) *int64
	Values func(*T) []any
	Fields func(*T) []any
}

// ScanTargets returns scan destinations for id followed by Columns.
func (s Schema[T]) ScanTargets(rec *T) []any {
	return append([]any{s.ID(rec)}, s.Fields(rec)...)
}

func (s Schema[T]) NotFoundMessage() string {
	return s.Name + " not found"
}

// Describe strips the accessors so schemas of different record types
// can be listed together.
func (s Schema[T]) Describe() Descriptor {
	return Descriptor{Name: s.Name, Path: s.Path, Table: s.Table, Columns: s.Columns}
}

// Descriptor is the type-erased view of a Schema.
type Descriptor struct {
	Name    string
	Path    string
	Table   string
	Columns []string
}
