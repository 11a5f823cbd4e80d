package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB membuat sqlite in-memory terpisah per test. cache=shared +
// satu koneksi supaya semua goroutine test melihat database yang sama.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Operator{},
		&models.Produk{},
		&models.Kategori{},
		&models.Image{},
		&models.Banner{},
		&models.BankAccount{},
		&models.Cart{},
		&models.Transaksi{},
		&models.TransaksiDetail{},
		&models.Payment{},
		&models.Address{},
		&models.Polling{},
		&models.Sync{},
		&models.Operational{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedProduk(t *testing.T, db *gorm.DB, kodeItem string, harga float64, stok int) {
	t.Helper()

	produk := models.Produk{
		KodeItem:       kodeItem,
		NamaProduk:     "Produk " + kodeItem,
		NamaProdukAsli: "Produk " + kodeItem,
		Harga6:         harga,
		Slug:           "produk-" + strings.ToLower(kodeItem),
		Kategori:       "Besi",
		TotalStok:      stok,
		Active:         true,
	}
	if err := db.Create(&produk).Error; err != nil {
		t.Fatalf("seed produk: %v", err)
	}
}

func seedUser(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()

	user := models.User{
		UserID:   userID,
		Email:    userID + "@example.com",
		Nama:     "User " + userID,
		NoTelpon: "081234567890",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
}
