package fp

func FMap[T any, U any](vs []T, f func(T) U) (us []U) {
	us = make([]U, len(vs))

	for i, v := range vs {
		us[i] = f(v)
	}

	return
}

// Filter returns a new slice holding the elements for which keep is true.
func Filter[T any](vs []T, keep func(T) bool) (out []T) {
	out = make([]T, 0, len(vs))

	for _, v := range vs {
		if keep(v) {
			out = append(out, v)
		}
	}

	return
}

// FindIndex returns the index of the first match or -1.
func FindIndex[T any](vs []T, match func(T) bool) int {
	for i, v := range vs {
		if match(v) {
			return i
		}
	}

	return -1
}
