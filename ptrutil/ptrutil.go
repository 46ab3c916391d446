// Package ptrutil provides small generic helpers for working with pointers.
package ptrutil

// ToPtr returns a pointer to a copy of the given value.
func ToPtr[T any](value T) *T {
	return &value
}

// SetPtrIfNil sets the pointer pointed to by 'dst' to point at a copy of 'value' if it's currently <nil>.
func SetPtrIfNil[T any](dst **T, value T) {
	if *dst == nil {
		*dst = &value
	}
}
