package domain

import (
	"strings"
)

// NormalizeText prepares a headword for storage and lookup:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses any whitespace run into one space
//
// Umlauts, ß and hyphens are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}
