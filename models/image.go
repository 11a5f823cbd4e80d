package models

import "time"

type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	KodeItem  string    `gorm:"index;size:60" json:"kode_item"`
	URL       string    `gorm:"size:255" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
