package model

// Entity is implemented by every record type the store can hold. Merge folds
// a partial server response into a prior record: top-level fields overwrite,
// attribute fields overwrite only when the update carries them. The
// constraint is self-referential so Merge stays fully typed per entity.
type Entity[T any] interface {
	EntityID() string
	Merge(update T) T
}

// take keeps the prior value unless the update carries one. Attribute fields
// are pointers precisely so "absent" and "set to zero" stay distinguishable.
func take[T any](prior, update *T) *T {
	if update != nil {
		return update
	}
	return prior
}

// S is shorthand for building optional string fields in payloads and tests.
func S(v string) *string { return &v }

// I is shorthand for optional int fields.
func I(v int) *int { return &v }

// B is shorthand for optional bool fields.
func B(v bool) *bool { return &v }

// Deref returns the value behind an optional field, or the zero value.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
