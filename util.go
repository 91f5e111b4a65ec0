package wire

import "golang.org/x/exp/constraints"

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// padOf returns the number of zero bytes that align an n-byte payload to
// the next 8-byte boundary: between 0 and 7 inclusive.
func padOf(n int) int { return Roundup(n, 8) - n }

// zeros backs padding writes; padding never exceeds 7 bytes.
var zeros [8]byte
