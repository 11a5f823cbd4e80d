package models

import "time"

// Polling menyimpan url sumber data eksternal per label
// (produk, kategori, pengguna).
type Polling struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"index;size:30" json:"label"`
	URL       string    `gorm:"size:255" json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
