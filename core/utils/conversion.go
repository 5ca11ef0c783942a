package utils

import (
	"strconv"
	"strings"
)

// ToInt converts a query or form value to int, returning def when it is empty or invalid.
func ToInt(val string, def int) int {
	val = strings.TrimSpace(val)
	if val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return i
}

// ToBool converts a query or form value to bool.
// It accepts "1", "true", "yes" and "on" in any case; everything else is false.
func ToBool(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
