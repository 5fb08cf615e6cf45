package configs

import (
	"errors"
)

// First decodes the first value at path, or returns the zero value when no source defines it.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}

// Lookup is like First but also reports whether any source defines path.
func Lookup[T any](loader Loader, path string) (T, bool) {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value, false
		}
		panic(err)
	}
	return value, true
}
