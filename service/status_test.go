package service

import (
	"testing"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name      string
		payment   models.PaymentStatus
		replied   bool
		transaksi models.TransaksiStatus
		audience  Audience
		want      string
	}{
		{"draft belum dibalas", models.PaymentDraft, false, models.TransaksiDraft, UserView, "Menunggu balasan"},
		{"draft dibalas, sisi user", models.PaymentDraft, true, models.TransaksiDraft, UserView, "Menunggu konfirmasi anda"},
		{"draft dibalas, sisi admin", models.PaymentDraft, true, models.TransaksiDraft, AdminView, "Menunggu konfirmasi user"},
		{"pending", models.PaymentPending, false, models.TransaksiPending, UserView, "Menunggu pembayaran"},
		{"paid", models.PaymentPaid, false, models.TransaksiPending, UserView, "Menunggu verifikasi"},
		{"payment canceled", models.PaymentCanceled, false, models.TransaksiPending, UserView, "Pembayaran dibatalkan"},
		{"done + process", models.PaymentDone, false, models.TransaksiProcess, UserView, "Diproses"},
		{"done + done", models.PaymentDone, false, models.TransaksiDone, UserView, "Selesai"},
		{"done + canceled", models.PaymentDone, false, models.TransaksiCanceled, UserView, "Transaksi Dibatalkan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusLabel(tt.payment, tt.replied, tt.transaksi, tt.audience)
			if got != tt.want {
				t.Errorf("StatusLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
