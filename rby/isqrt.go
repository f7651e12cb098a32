package rby

// isqrt is the integer square root: isqrt(n)^2 <= n < (isqrt(n)+1)^2.
func isqrt(n uint32) uint32 {
	if n < 2 {
		return n
	}

	// Newton's method, starting above the root so the sequence only decreases
	x := n
	y := x/2 + x%2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x
}
