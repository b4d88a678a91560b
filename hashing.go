// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

// Hash functions used to index the operation cache.

func _TRIPLE(a, b, c, len int) int {
	return int(_PAIR64(uint64(c), uint64(_PAIR(a, b, len)), uint64(len)))
}

// _PAIR maps (bijectively) a pair of integers (a, b) into a unique integer
// before reducing it modulo the table length.
func _PAIR(a, b, len int) int {
	return int((((uint64(a+b) * uint64(a+b+1)) / 2) + uint64(a)) % uint64(len))
}

func _PAIR64(a, b, len uint64) uint64 {
	return (((((a + b) % len) * ((a + b + 1) % len)) / 2) + a) % len
}
