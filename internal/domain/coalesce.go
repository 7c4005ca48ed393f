package domain

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// BoolFromPtrWithDefault returns the first non-nil *bool value, or the fallback.
func BoolFromPtrWithDefault(fallback bool, ptrs ...*bool) bool {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// Int64FromPtrWithDefault returns the first non-nil *int64 value, or the fallback.
func Int64FromPtrWithDefault(fallback int64, ptrs ...*int64) int64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
