package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       string    `gorm:"uniqueIndex;size:40" json:"user_id"`
	Email        string    `gorm:"uniqueIndex;size:180" json:"email"`
	Nama         string    `gorm:"size:180" json:"nama"`
	NoTelpon     string    `gorm:"size:60" json:"no_telpon"`
	TanggalLahir string    `gorm:"size:30" json:"tanggal_lahir"`
	JenisKelamin string    `gorm:"size:1" json:"jenis_kelamin"` // P | W
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
