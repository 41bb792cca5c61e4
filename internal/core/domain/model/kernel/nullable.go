package kernel

// Nullable is a patch field for attributes that may be cleared. It has three
// states: absent (leave the attribute untouched), null (clear it) and set.
//
// Example:
//
//	patch := driver.Patch{Phone: kernel.Null[string]()}        // remove the phone
//	patch := driver.Patch{Phone: kernel.Some("(11) 91111-1111")} // replace it
//	patch := driver.Patch{}                                     // keep it
type Nullable[T any] struct {
	present bool
	value   *T
}

// Absent returns a field that was not supplied.
func Absent[T any]() Nullable[T] {
	return Nullable[T]{}
}

// Null returns a field explicitly supplied as null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{present: true}
}

// Some returns a field supplied with a value.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{present: true, value: &v}
}

// IsPresent reports whether the field was supplied, null included.
func (n Nullable[T]) IsPresent() bool {
	return n.present
}

// IsNull reports whether the field was supplied as null.
func (n Nullable[T]) IsNull() bool {
	return n.present && n.value == nil
}

// Value returns a copy of the supplied value, nil when absent or null.
func (n Nullable[T]) Value() *T {
	if n.value == nil {
		return nil
	}
	v := *n.value
	return &v
}
