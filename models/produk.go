package models

import "time"

type Produk struct {
	ID                uint    `gorm:"primaryKey" json:"-"`
	KodeItem          string  `gorm:"uniqueIndex;size:60" json:"kode_item"`
	Barcode           string  `gorm:"size:60" json:"barcode"`
	KodePabrik        string  `gorm:"size:60" json:"kode_pabrik"`
	KodeToko          string  `gorm:"size:60" json:"kode_toko"`
	KodeSupplier      string  `gorm:"size:60" json:"kode_supplier"`
	NamaProduk        string  `gorm:"size:255" json:"nama_produk"`
	NamaProdukAsli    string  `gorm:"size:255" json:"nama_produk_asli"`
	NamaProdukSebutan string  `gorm:"size:255" json:"nama_produk_sebutan"`
	Merk              string  `gorm:"size:120" json:"merk"`
	Tipe              string  `gorm:"size:120" json:"tipe"`
	SatuanBesar       string  `gorm:"size:60" json:"satuan_besar"`
	SatuanKecil       string  `gorm:"size:60" json:"satuan_kecil"`
	IsiSatuanBesar    string  `gorm:"size:60" json:"isi_satuan_besar"`
	Konversi          float64 `json:"konversi"`
	HargaPokok        float64 `json:"harga_pokok"`
	Harga1            float64 `gorm:"column:harga_1" json:"harga_1"`
	Harga2            float64 `gorm:"column:harga_2" json:"harga_2"`
	Harga3            float64 `gorm:"column:harga_3" json:"harga_3"`
	Harga4            float64 `gorm:"column:harga_4" json:"harga_4"`
	Harga5            float64 `gorm:"column:harga_5" json:"harga_5"`
	Harga6            float64 `gorm:"column:harga_6" json:"harga_6"`
	HargaDiskon       float64 `json:"harga_diskon"`
	Berat             float64 `json:"berat"`
	Volume            float64 `json:"volume"`
	Slug              string  `gorm:"index;size:255" json:"slug"`
	Kategori          string  `gorm:"index;size:120" json:"kategori"`
	Subkategori       string  `gorm:"size:120" json:"subkategori"`
	TotalStok         int     `json:"total_stok"`
	Deskripsi         string  `json:"deskripsi"`
	Active            bool    `gorm:"default:true" json:"active"`

	// foto produk, terbaru dulu saat preload
	Image []Image `gorm:"foreignKey:KodeItem;references:KodeItem" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
