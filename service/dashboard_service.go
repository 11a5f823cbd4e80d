package service

import (
	"time"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"

	"gorm.io/gorm"
)

const dashboardPageSize = 10

type DashboardSummary struct {
	Transactions struct {
		Amount int64   `json:"amount"`
		Total  float64 `json:"total"`
	} `json:"transactions"`
	Delivery struct {
		Amount int64   `json:"amount"`
		Total  float64 `json:"total"`
	} `json:"delivery"`
}

type TransactionRow struct {
	TransaksiID   string               `json:"transaksi_id"`
	NamaPenerima  string               `json:"nama_penerima"`
	Total         float64              `json:"total"`
	Type          models.TransaksiType `json:"type"`
	CreatedAt     time.Time            `json:"created_at"`
	Alasan        *string              `json:"alasan,omitempty"`
	PaymentAlasan *string              `json:"payment_alasan,omitempty"`
}

type TransactionList struct {
	Transactions []TransactionRow `json:"transactions"`
	Total        int64            `json:"total"`
}

type TransactionTabs struct {
	Waitrep  int64 `json:"waitrep"`
	Waituser int64 `json:"waituser"`
	Paypend  int64 `json:"paypend"`
	Payverif int64 `json:"payverif"`
	Process  int64 `json:"process"`
	Done     int64 `json:"done"`
	Canceled int64 `json:"canceled"`
}

type ProductPage struct {
	Products         []models.Produk `json:"products"`
	LastSynchronized *time.Time      `json:"last_synchronized"`
	TotalItems       int64           `json:"total_items"`
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// GetDashboard merangkum transaksi hari ini: semua dan khusus delivery.
func (s *DashboardService) GetDashboard() (*DashboardSummary, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	summary := &DashboardSummary{}

	base := s.db.Model(&models.Transaksi{}).
		Where("created_at BETWEEN ? AND ?", start, end)

	if err := base.Session(&gorm.Session{}).Count(&summary.Transactions.Amount).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&summary.Transactions.Total).Error; err != nil {
		return nil, err
	}

	delivery := base.Session(&gorm.Session{}).Where("type = ?", models.TypeDelivery)
	if err := delivery.Session(&gorm.Session{}).Count(&summary.Delivery.Amount).Error; err != nil {
		return nil, err
	}
	if err := delivery.Session(&gorm.Session{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&summary.Delivery.Total).Error; err != nil {
		return nil, err
	}

	return summary, nil
}

// GetTransactions memfilter daftar transaksi per tab dashboard.
func (s *DashboardService) GetTransactions(status string, page int) (*TransactionList, error) {
	if page <= 0 {
		page = 1
	}
	if status == "" {
		status = "waitrep"
	}

	q := s.transactionsByTab(status)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []models.Transaksi
	if err := q.Session(&gorm.Session{}).
		Preload("Payment").
		Order("transaksis.created_at DESC").
		Limit(dashboardPageSize).
		Offset((page - 1) * dashboardPageSize).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	list := make([]TransactionRow, 0, len(rows))
	for _, row := range rows {
		item := TransactionRow{
			TransaksiID:  row.TransaksiID,
			NamaPenerima: row.NamaPenerima,
			Total:        row.Total,
			Type:         row.Type,
			CreatedAt:    row.CreatedAt,
		}
		if status == "canceled" {
			item.Alasan = row.Alasan
			item.PaymentAlasan = row.Payment.Alasan
		}
		list = append(list, item)
	}

	return &TransactionList{Transactions: list, Total: total}, nil
}

func (s *DashboardService) transactionsByTab(status string) *gorm.DB {
	q := s.db.Model(&models.Transaksi{}).
		Joins("JOIN payments ON payments.transaksi_id = transaksis.transaksi_id")

	switch status {
	case "waituser":
		return q.Where("payments.status = ? AND transaksis.replied = ?", models.PaymentDraft, true)
	case "paypend":
		return q.Where("payments.status = ?", models.PaymentPending)
	case "payverif":
		return q.Where("payments.status = ?", models.PaymentPaid)
	case "process":
		return q.Where("transaksis.status = ?", models.TransaksiProcess)
	case "done":
		return q.Where("transaksis.status = ?", models.TransaksiDone)
	case "canceled":
		return q.Where("transaksis.status = ? OR payments.status = ?",
			models.TransaksiCanceled, models.PaymentCanceled)
	default: // waitrep
		return q.Where("payments.status = ? AND transaksis.replied = ?", models.PaymentDraft, false)
	}
}

func (s *DashboardService) GetTransactionTabs() (*TransactionTabs, error) {
	tabs := &TransactionTabs{}

	counts := []struct {
		status string
		out    *int64
	}{
		{"waitrep", &tabs.Waitrep},
		{"waituser", &tabs.Waituser},
		{"paypend", &tabs.Paypend},
		{"payverif", &tabs.Payverif},
		{"process", &tabs.Process},
		{"done", &tabs.Done},
		{"canceled", &tabs.Canceled},
	}

	for _, c := range counts {
		if err := s.transactionsByTab(c.status).Count(c.out).Error; err != nil {
			return nil, err
		}
	}

	return tabs, nil
}

// GetProducts: daftar produk untuk dashboard, plus kapan terakhir sync.
func (s *DashboardService) GetProducts(page int) (*ProductPage, error) {
	return s.listProducts(page, "")
}

// SearchProducts mencari di kode item, nama, merk, tipe, dan kategori.
func (s *DashboardService) SearchProducts(page int, query string) (*ProductPage, error) {
	return s.listProducts(page, query)
}

func (s *DashboardService) listProducts(page int, query string) (*ProductPage, error) {
	if page <= 0 {
		page = 1
	}

	q := s.db.Model(&models.Produk{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"kode_item LIKE ? OR nama_produk_asli LIKE ? OR merk LIKE ? OR tipe LIKE ? OR kategori LIKE ?",
			like, like, like, like, like,
		)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var products []models.Produk
	if err := q.Session(&gorm.Session{}).
		Preload("Image", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Limit(dashboardPageSize).
		Offset((page - 1) * dashboardPageSize).
		Find(&products).Error; err != nil {
		return nil, err
	}

	return &ProductPage{
		Products:         products,
		LastSynchronized: s.lastSynchronized("produk"),
		TotalItems:       total,
	}, nil
}

func (s *DashboardService) lastSynchronized(label string) *time.Time {
	var sync models.Sync
	err := s.db.Where("label = ?", label).
		Order("synchronized_at DESC").
		First(&sync).Error
	if err != nil {
		return nil
	}
	return &sync.SynchronizedAt
}

// LastSynchronized dipakai controller kategori/operator.
func (s *DashboardService) LastSynchronized(label string) *time.Time {
	return s.lastSynchronized(label)
}

// UpdateActive versi kategori: nonaktifkan kategori sekaligus semua
// produk di dalamnya, satu transaction.
func (s *DashboardService) UpdateCategoryActive(namaKategori string, value bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Produk{}).
			Where("kategori = ?", namaKategori).
			Update("active", value).Error; err != nil {
			return err
		}
		return tx.Model(&models.Kategori{}).
			Where("nama = ?", namaKategori).
			Update("active", value).Error
	})
}

func (s *DashboardService) UpdateProductActive(kodeItem string, value bool) error {
	return s.db.Model(&models.Produk{}).
		Where("kode_item = ?", kodeItem).
		Update("active", value).Error
}
