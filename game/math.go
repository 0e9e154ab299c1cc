package game

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
