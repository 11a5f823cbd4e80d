package config

import (
	"log"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
)

// SeedOperationals mengisi jam operasional toko sekali saja.
func SeedOperationals() {
	rows := []models.Operational{
		{Hari: "Senin", JamBuka: "08:00", JamTutup: "17:00"},
		{Hari: "Selasa", JamBuka: "08:00", JamTutup: "17:00"},
		{Hari: "Rabu", JamBuka: "08:00", JamTutup: "17:00"},
		{Hari: "Kamis", JamBuka: "08:00", JamTutup: "17:00"},
		{Hari: "Jumat", JamBuka: "08:00", JamTutup: "17:00"},
		{Hari: "Sabtu", JamBuka: "08:00", JamTutup: "15:00"},
		{Hari: "Minggu", JamBuka: "-", JamTutup: "-"},
	}

	for _, row := range rows {
		if err := DB.Where(models.Operational{Hari: row.Hari}).
			FirstOrCreate(&row).Error; err != nil {
			log.Printf("seed operational %s gagal: %v", row.Hari, err)
		}
	}
}
