package models

import "time"

type Cart struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	CartID   string `gorm:"uniqueIndex;size:20" json:"cart_id"`
	UserID   string `gorm:"index;size:40" json:"user_id"`
	KodeItem string `gorm:"index;size:60" json:"kode_item"`
	Qty      int    `json:"qty"`
	Active   bool   `gorm:"default:true" json:"active"`

	Produk Produk `gorm:"foreignKey:KodeItem;references:KodeItem" json:"produk"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
