package fbdraw

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// sign returns 1 if to lies after from, -1 otherwise.
func sign[T constraints.Signed](from, to T) T {
	if to > from {
		return 1
	}
	return -1
}
