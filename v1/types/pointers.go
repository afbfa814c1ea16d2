package types

// Ptr returns a pointer to its argument, a convenience for populating the
// optional members of forms inline.
func Ptr[T any](v T) *T {
	return &v
}
