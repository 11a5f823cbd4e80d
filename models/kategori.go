package models

import "time"

type Kategori struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"uniqueIndex;size:120" json:"nama"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
