package utils

// CeilDiv returns ceil(a/b) for non-negative a and positive b
func CeilDiv(a, b int64) int64 {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// SafeMultiply returns a*b and false when the product would overflow int64
func SafeMultiply(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}
