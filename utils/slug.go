package utils

import (
	"strings"
	"unicode"
)

// NormalizeName merapikan nama dari sumber polling: trim dan
// runtuhkan spasi beruntun jadi satu.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Slugify menurunkan slug url-safe dari nama produk:
// huruf kecil semua, non-alfanumerik jadi pemisah "-".
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // jangan mulai dengan "-"

	for _, r := range strings.ToLower(NormalizeName(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
