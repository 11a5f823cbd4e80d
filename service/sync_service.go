package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const syncBatchSize = 50

type ProdukPollingItem struct {
	KodeItem          string  `json:"kode_item"`
	Barcode           string  `json:"barcode"`
	KodePabrik        string  `json:"kode_pabrik"`
	KodeToko          string  `json:"kode_toko"`
	KodeSupplier      string  `json:"kode_supplier"`
	NamaProduk        string  `json:"nama_produk"`
	NamaProdukAsli    string  `json:"nama_produk_asli"`
	NamaProdukSebutan string  `json:"nama_produk_sebutan"`
	Merk              string  `json:"merk"`
	Tipe              string  `json:"tipe"`
	SatuanBesar       string  `json:"satuan_besar"`
	SatuanKecil       string  `json:"satuan_kecil"`
	IsiSatuanBesar    string  `json:"isi_satuan_besar"`
	Konversi          float64 `json:"konversi"`
	HargaPokok        float64 `json:"harga_pokok"`
	Harga1            float64 `json:"harga_1"`
	Harga2            float64 `json:"harga_2"`
	Harga3            float64 `json:"harga_3"`
	Harga4            float64 `json:"harga_4"`
	Harga5            float64 `json:"harga_5"`
	Harga6            float64 `json:"harga_6"`
	HargaDiskon       float64 `json:"harga_diskon"`
	Berat             float64 `json:"berat"`
	Volume            float64 `json:"volume"`
	Kategori          string  `json:"kategori"`
	Subkategori       string  `json:"subkategori"`
	TotalStok         int     `json:"total_stok"`
	CreatedAt         string  `json:"created_at"`
}

type KategoriPollingItem struct {
	IDKategori int    `json:"id_kategori"`
	Nama       string `json:"nama"`
}

type PenggunaPollingItem struct {
	Username        string `json:"username"`
	Nama            string `json:"nama"`
	PasswordHash    string `json:"password_hash"`
	PasswordEncrypt string `json:"password_encrypt"`
	Role            string `json:"role"`
}

type SyncResult struct {
	SynchronizedAt time.Time `json:"synchronized_at"`
}

type SyncService struct {
	db     *gorm.DB
	client *http.Client
}

func NewSyncService(db *gorm.DB) *SyncService {
	return &SyncService{
		db:     db,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// kolom yang ikut ditimpa saat upsert; deskripsi dan active dikelola
// dari dashboard, jadi tidak boleh tersentuh sync.
var produkSyncColumns = []string{
	"barcode", "kode_pabrik", "kode_toko", "kode_supplier",
	"nama_produk", "nama_produk_asli", "nama_produk_sebutan",
	"merk", "tipe", "satuan_besar", "satuan_kecil", "isi_satuan_besar",
	"konversi", "harga_pokok", "harga_1", "harga_2", "harga_3",
	"harga_4", "harga_5", "harga_6", "harga_diskon", "berat", "volume",
	"slug", "kategori", "subkategori", "total_stok", "updated_at",
}

func (s *SyncService) SyncProducts(ctx context.Context) (*SyncResult, error) {
	return s.syncProducts(ctx, "")
}

func (s *SyncService) SyncProductsByCategory(ctx context.Context, idKategori string) (*SyncResult, error) {
	return s.syncProducts(ctx, idKategori)
}

func (s *SyncService) syncProducts(ctx context.Context, idKategori string) (*SyncResult, error) {
	url, err := s.pollingURL("produk")
	if err != nil {
		return nil, err
	}

	date := time.Now()

	var payload struct {
		Data struct {
			Produk []ProdukPollingItem `json:"produk"`
		} `json:"data"`
	}
	if err := s.fetch(ctx, url, &payload); err != nil {
		return nil, err
	}

	items := payload.Data.Produk
	if idKategori != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.Kategori == idKategori {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt < items[j].CreatedAt
	})

	// upsert per batch 50: di dalam batch paralel, antar batch berurutan.
	// kegagalan pertama menghentikan sisa batch.
	for start := 0; start < len(items); start += syncBatchSize {
		end := start + syncBatchSize
		if end > len(items) {
			end = len(items)
		}

		g := new(errgroup.Group)
		for _, item := range items[start:end] {
			item := item
			g.Go(func() error {
				return s.upsertProduk(item)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if err := s.db.Create(&models.Sync{Label: "produk", SynchronizedAt: date}).Error; err != nil {
		return nil, err
	}

	return &SyncResult{SynchronizedAt: date}, nil
}

func (s *SyncService) upsertProduk(item ProdukPollingItem) error {
	namaAsli := utils.NormalizeName(item.NamaProdukAsli)

	produk := models.Produk{
		KodeItem:          item.KodeItem,
		Barcode:           item.Barcode,
		KodePabrik:        item.KodePabrik,
		KodeToko:          item.KodeToko,
		KodeSupplier:      item.KodeSupplier,
		NamaProduk:        utils.NormalizeName(item.NamaProduk),
		NamaProdukAsli:    namaAsli,
		NamaProdukSebutan: utils.NormalizeName(item.NamaProdukSebutan),
		Merk:              item.Merk,
		Tipe:              item.Tipe,
		SatuanBesar:       item.SatuanBesar,
		SatuanKecil:       item.SatuanKecil,
		IsiSatuanBesar:    item.IsiSatuanBesar,
		Konversi:          item.Konversi,
		HargaPokok:        item.HargaPokok,
		Harga1:            item.Harga1,
		Harga2:            item.Harga2,
		Harga3:            item.Harga3,
		Harga4:            item.Harga4,
		Harga5:            item.Harga5,
		Harga6:            item.Harga6,
		HargaDiskon:       item.HargaDiskon,
		Berat:             item.Berat,
		Volume:            item.Volume,
		Slug:              utils.Slugify(namaAsli),
		Kategori:          item.Kategori,
		Subkategori:       item.Subkategori,
		TotalStok:         item.TotalStok,
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kode_item"}},
		DoUpdates: clause.AssignmentColumns(produkSyncColumns),
	}).Create(&produk).Error
}

func (s *SyncService) SyncCategories(ctx context.Context) (*SyncResult, error) {
	url, err := s.pollingURL("kategori")
	if err != nil {
		return nil, err
	}

	date := time.Now()

	var payload struct {
		Data []KategoriPollingItem `json:"data"`
	}
	if err := s.fetch(ctx, url, &payload); err != nil {
		return nil, err
	}

	categories := payload.Data
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].IDKategori < categories[j].IDKategori
	})

	for _, category := range categories {
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "nama"}},
			DoUpdates: clause.AssignmentColumns([]string{"nama", "updated_at"}),
		}).Create(&models.Kategori{Nama: category.Nama}).Error
		if err != nil {
			return nil, err
		}
	}

	if err := s.db.Create(&models.Sync{Label: "kategori", SynchronizedAt: date}).Error; err != nil {
		return nil, err
	}

	return &SyncResult{SynchronizedAt: date}, nil
}

// SyncOperators menarik akun pengguna dari polling, hanya role
// owner/admin yang jadi operator dashboard.
func (s *SyncService) SyncOperators(ctx context.Context) (*SyncResult, error) {
	url, err := s.pollingURL("pengguna")
	if err != nil {
		return nil, err
	}

	date := time.Now()

	var payload struct {
		Data []PenggunaPollingItem `json:"data"`
	}
	if err := s.fetch(ctx, url, &payload); err != nil {
		return nil, err
	}

	for _, pengguna := range payload.Data {
		if !hasOperatorRole(pengguna.Role) {
			continue
		}

		err := s.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"nama", "password_hash", "password_encrypt", "role", "updated_at",
			}),
		}).Create(&models.Operator{
			Username:        pengguna.Username,
			Nama:            pengguna.Nama,
			PasswordHash:    pengguna.PasswordHash,
			PasswordEncrypt: pengguna.PasswordEncrypt,
			Role:            pengguna.Role,
		}).Error
		if err != nil {
			return nil, err
		}
	}

	if err := s.db.Create(&models.Sync{Label: "operator", SynchronizedAt: date}).Error; err != nil {
		return nil, err
	}

	return &SyncResult{SynchronizedAt: date}, nil
}

func hasOperatorRole(csv string) bool {
	for _, role := range strings.Split(csv, ",") {
		switch strings.TrimSpace(role) {
		case "owner", "admin":
			return true
		}
	}
	return false
}

func (s *SyncService) pollingURL(label string) (string, error) {
	var polling models.Polling
	err := s.db.Where("label = ?", label).First(&polling).Error
	if err == gorm.ErrRecordNotFound {
		return "", utils.NotFound("Polling url not found!")
	}
	if err != nil {
		return "", err
	}
	return polling.URL, nil
}

func (s *SyncService) fetch(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("polling source returned %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
