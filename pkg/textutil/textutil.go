// Package textutil provides pure string helpers.
package textutil

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Reverse returns s with its user-perceived characters (grapheme clusters)
// in reverse order. Combining marks, emoji sequences, and flags stay intact.
func Reverse(s string) string {
	if s == "" {
		return s
	}
	var clusters []string
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		clusters = append(clusters, cluster)
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}

// CountWords returns the number of maximal runs of non-whitespace characters.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// IsPlausibleAddress reports whether s contains both '@' and '.'.
// It is a weak syntactic check, not address validation.
func IsPlausibleAddress(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}

// FormatGreeting returns "Hello <name>: <message>".
func FormatGreeting(name, message string) string {
	return fmt.Sprintf("Hello %s: %s", name, message)
}
