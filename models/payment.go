package models

import "time"

type PaymentStatus string

const (
	PaymentDraft    PaymentStatus = "draft"
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentDone     PaymentStatus = "done"
	PaymentCanceled PaymentStatus = "canceled"
)

type Payment struct {
	ID          uint          `gorm:"primaryKey" json:"-"`
	PaymentID   string        `gorm:"uniqueIndex;size:40" json:"payment_id"`
	TransaksiID string        `gorm:"uniqueIndex;size:40" json:"transaksi_id"`
	Status      PaymentStatus `gorm:"size:12;index" json:"status"`

	// terisi setelah user upload bukti transfer
	URL    string  `gorm:"size:255" json:"url"`
	Nama   string  `gorm:"size:180" json:"nama"`
	Dari   string  `gorm:"size:120" json:"dari"`
	Metode string  `gorm:"size:30" json:"metode"`
	Alasan *string `gorm:"size:255" json:"alasan"`

	// unix timestamp, dikosongkan lagi saat pembayaran dibatalkan
	Expired *int64 `json:"expired"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
