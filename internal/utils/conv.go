package utils

import (
	"strconv"
)

// StringToInt converts string to int, returns fallback on empty or invalid
// input. Used for query-string paging parameters.
func StringToInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return i
}
