package models

import "time"

// Operator adalah akun admin hasil sync dari polling pengguna,
// terpisah dari akun User storefront.
type Operator struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	Username        string    `gorm:"uniqueIndex;size:120" json:"username"`
	Nama            string    `gorm:"size:180" json:"nama"`
	PasswordHash    string    `gorm:"size:255" json:"-"`
	PasswordEncrypt string    `gorm:"size:255" json:"-"`
	Role            string    `gorm:"size:120" json:"role"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
