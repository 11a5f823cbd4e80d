package service

import "github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"

// Audience menentukan varian label untuk status draft+replied:
// user melihat "Menunggu konfirmasi anda", admin melihat
// "Menunggu konfirmasi user".
type Audience int

const (
	UserView Audience = iota
	AdminView
)

// StatusLabel menurunkan status terbaca manusia dari kombinasi
// status pembayaran x status transaksi. Murni fungsi: dihitung ulang
// di setiap read, tidak pernah disimpan.
func StatusLabel(payment models.PaymentStatus, replied bool, transaksi models.TransaksiStatus, audience Audience) string {
	switch payment {
	case models.PaymentDraft:
		if !replied {
			return "Menunggu balasan"
		}
		if audience == AdminView {
			return "Menunggu konfirmasi user"
		}
		return "Menunggu konfirmasi anda"
	case models.PaymentPending:
		return "Menunggu pembayaran"
	case models.PaymentPaid:
		return "Menunggu verifikasi"
	case models.PaymentCanceled:
		return "Pembayaran dibatalkan"
	case models.PaymentDone:
		switch transaksi {
		case models.TransaksiProcess:
			return "Diproses"
		case models.TransaksiDone:
			return "Selesai"
		case models.TransaksiCanceled:
			return "Transaksi Dibatalkan"
		}
	}
	return ""
}
