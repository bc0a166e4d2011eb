package domain

// FloatOr returns the first non-nil *float64 value, or the fallback.
func FloatOr(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// IntOr returns the first non-nil *int value, or the fallback.
func IntOr(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
