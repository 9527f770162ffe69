package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Count returns how many elements satisfy keep.
func Count[T any](slice []T, keep func(T) bool) int {
	n := 0
	for _, v := range slice {
		if keep(v) {
			n++
		}
	}
	return n
}
