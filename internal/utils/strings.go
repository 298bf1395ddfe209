package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return MaskTail(email, 0)
	}
	return string([]rune(email)[:1]) + "***" + email[at:]
}

// MaskTail replaces all but the last keep characters with '*'.
func MaskTail(s string, keep int) string {
	r := []rune(s)
	if keep < 0 {
		keep = 0
	}
	if keep > len(r) {
		keep = len(r)
	}
	return strings.Repeat("*", len(r)-keep) + string(r[len(r)-keep:])
}
