package models

import "time"

type TransaksiStatus string

const (
	TransaksiPending  TransaksiStatus = "pending"
	TransaksiDraft    TransaksiStatus = "draft"
	TransaksiProcess  TransaksiStatus = "process"
	TransaksiDone     TransaksiStatus = "done"
	TransaksiCanceled TransaksiStatus = "canceled"
)

type TransaksiType string

const (
	TypePickup   TransaksiType = "pickup"
	TypeDelivery TransaksiType = "delivery"
)

type Transaksi struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	TransaksiID string `gorm:"uniqueIndex;size:40" json:"transaksi_id"`
	UserID      string `gorm:"index;size:40" json:"user_id"`

	// rekening tujuan yang dipilih saat checkout
	NoRekening string `gorm:"size:60" json:"no_rekening"`
	AtasNama   string `gorm:"size:180" json:"atas_nama"`
	Bank       string `gorm:"size:60" json:"bank"`

	NamaPenerima string `gorm:"size:180" json:"nama_penerima"`
	NoTelpon     string `gorm:"size:60" json:"no_telpon"`

	// alamat hanya terisi untuk type delivery
	Provinsi      string `gorm:"size:120" json:"provinsi"`
	Kota          string `gorm:"size:120" json:"kota"`
	Kecamatan     string `gorm:"size:120" json:"kecamatan"`
	AlamatLengkap string `gorm:"size:255" json:"alamat_lengkap"`
	KodePos       string `gorm:"size:10" json:"kode_pos"`

	Type           TransaksiType   `gorm:"size:10" json:"type"`
	SubtotalProduk float64         `json:"subtotal_produk"`
	SubtotalOngkir float64         `json:"subtotal_ongkir"`
	Total          float64         `json:"total"`
	Status         TransaksiStatus `gorm:"size:12;index" json:"status"`
	Alasan         *string         `gorm:"size:255" json:"alasan"`
	Replied        bool            `gorm:"default:false" json:"replied"`

	Payment Payment           `gorm:"foreignKey:TransaksiID;references:TransaksiID" json:"payment"`
	Details []TransaksiDetail `gorm:"foreignKey:TransaksiID;references:TransaksiID" json:"details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TransaksiDetail struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	TransaksiID string `gorm:"index;size:40" json:"transaksi_id"`

	// snapshot saat checkout, tidak ikut berubah kalau produk di-sync ulang
	KodeItem       string  `gorm:"size:60" json:"kode_item"`
	Kategori       string  `gorm:"size:120" json:"kategori"`
	NamaProduk     string  `gorm:"size:255" json:"nama_produk"`
	Harga          float64 `json:"harga"`
	Quantity       int     `json:"quantity"`
	SubtotalProduk float64 `json:"subtotal_produk"`

	Produk Produk `gorm:"foreignKey:KodeItem;references:KodeItem" json:"-"`
}
