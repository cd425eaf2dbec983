package utils

import (
	"math"
	"strconv"
)

// StringToInt converts string to int, returns 0 if error
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// StringToUint parses an optional form value into a *uint, nil when empty or
// invalid.
func StringToUint(s string) *uint {
	if s == "" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return nil
	}
	u := uint(i)
	return &u
}

// UintToString formats an id for URLs.
func UintToString(u uint) string {
	return strconv.FormatUint(uint64(u), 10)
}

// Round1 rounds to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
