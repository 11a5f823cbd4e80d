package models

import "time"

type Address struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AddressID     string    `gorm:"uniqueIndex;size:20" json:"address_id"`
	UserID        string    `gorm:"index;size:40" json:"user_id"`
	NamaPenerima  string    `gorm:"size:180" json:"nama_penerima"`
	NoTelpon      string    `gorm:"size:60" json:"no_telpon"`
	Provinsi      string    `gorm:"size:120" json:"provinsi"`
	Kota          string    `gorm:"size:120" json:"kota"`
	Kecamatan     string    `gorm:"size:120" json:"kecamatan"`
	AlamatLengkap string    `gorm:"size:255" json:"alamat_lengkap"`
	Label         string    `gorm:"size:60" json:"label"`
	KodePos       string    `gorm:"size:10" json:"kode_pos"`
	MainAddress   bool      `gorm:"default:false" json:"main_address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
