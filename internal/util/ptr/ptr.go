// Package ptr provides helper functions for creating pointers to primitive types.
package ptr

// Int returns a pointer to the given int value.
func Int(i int) *int { return &i }

// Deref returns the value i points to, or def if i is nil.
func Deref(i *int, def int) int {
	if i == nil {
		return def
	}
	return *i
}
