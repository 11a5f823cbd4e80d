package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID membuat id transaksi/pembayaran: prefix + DDMMYYHHMMSS +
// 6 karakter acak. Timestamp-nya tetap terbaca manusia untuk pelaporan,
// suffix acak mencegah tabrakan dua checkout di detik yang sama.
func GenerateID(prefix string, t time.Time) string {
	return prefix + t.Format("020106150405") + RandomID(6)
}

// RandomID mengambil n karakter hex dari sebuah uuid v4.
func RandomID(n int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(id) {
		n = len(id)
	}
	return id[:n]
}
