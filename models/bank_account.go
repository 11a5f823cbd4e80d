package models

import "time"

type BankAccount struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	BankID     string    `gorm:"uniqueIndex;size:20" json:"bank_id"`
	NoRekening string    `gorm:"size:60" json:"no_rekening"`
	AtasNama   string    `gorm:"size:180" json:"atas_nama"`
	Bank       string    `gorm:"size:60" json:"bank"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
