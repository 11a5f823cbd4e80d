package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const produkPayload = `{
	"data": {
		"produk": [
			{
				"kode_item": "BRG-1",
				"nama_produk": "  Besi   Beton 10mm ",
				"nama_produk_asli": "Besi Beton 10mm",
				"harga_6": 75000,
				"kategori": "Besi",
				"total_stok": 120,
				"created_at": "2024-01-02T00:00:00.000Z"
			},
			{
				"kode_item": "BRG-2",
				"nama_produk": "Semen 50kg",
				"nama_produk_asli": "Semen 50kg",
				"harga_6": 68000,
				"kategori": "Semen",
				"total_stok": 40,
				"created_at": "2024-01-01T00:00:00.000Z"
			}
		]
	}
}`

func newPollingServer(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSyncWithoutPollingURL(t *testing.T) {
	db := newTestDB(t)

	_, err := NewSyncService(db).SyncProducts(context.Background())

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "Polling url not found!", appErr.Message)

	var produk, sync int64
	require.NoError(t, db.Model(&models.Produk{}).Count(&produk).Error)
	require.NoError(t, db.Model(&models.Sync{}).Count(&sync).Error)
	assert.Zero(t, produk)
	assert.Zero(t, sync)
}

func TestSyncProductsIdempotent(t *testing.T) {
	db := newTestDB(t)
	server := newPollingServer(t, produkPayload)

	require.NoError(t, db.Create(&models.Polling{Label: "produk", URL: server.URL}).Error)

	svc := NewSyncService(db)
	_, err := svc.SyncProducts(context.Background())
	require.NoError(t, err)

	var first models.Produk
	require.NoError(t, db.Where("kode_item = ?", "BRG-1").First(&first).Error)
	assert.Equal(t, "Besi Beton 10mm", first.NamaProduk)
	assert.Equal(t, "besi-beton-10mm", first.Slug)
	assert.Equal(t, 120, first.TotalStok)

	// dua kali sync: baris produk tetap, audit Sync bertambah
	_, err = svc.SyncProducts(context.Background())
	require.NoError(t, err)

	var produk, syncs int64
	require.NoError(t, db.Model(&models.Produk{}).Count(&produk).Error)
	require.NoError(t, db.Model(&models.Sync{}).Where("label = ?", "produk").Count(&syncs).Error)
	assert.Equal(t, int64(2), produk)
	assert.Equal(t, int64(2), syncs)
}

func TestSyncPreservesDashboardFields(t *testing.T) {
	db := newTestDB(t)
	server := newPollingServer(t, produkPayload)

	require.NoError(t, db.Create(&models.Polling{Label: "produk", URL: server.URL}).Error)

	svc := NewSyncService(db)
	_, err := svc.SyncProducts(context.Background())
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Produk{}).
		Where("kode_item = ?", "BRG-1").
		Updates(map[string]interface{}{
			"deskripsi": "Besi beton SNI",
			"active":    false,
		}).Error)

	_, err = svc.SyncProducts(context.Background())
	require.NoError(t, err)

	var produk models.Produk
	require.NoError(t, db.Where("kode_item = ?", "BRG-1").First(&produk).Error)
	assert.Equal(t, "Besi beton SNI", produk.Deskripsi)
	assert.False(t, produk.Active)
}

func TestSyncProductsByCategory(t *testing.T) {
	db := newTestDB(t)
	server := newPollingServer(t, produkPayload)

	require.NoError(t, db.Create(&models.Polling{Label: "produk", URL: server.URL}).Error)

	_, err := NewSyncService(db).SyncProductsByCategory(context.Background(), "Semen")
	require.NoError(t, err)

	var produk []models.Produk
	require.NoError(t, db.Find(&produk).Error)
	require.Len(t, produk, 1)
	assert.Equal(t, "BRG-2", produk[0].KodeItem)
}

func TestSyncOperatorsFiltersRoles(t *testing.T) {
	db := newTestDB(t)
	server := newPollingServer(t, `{
		"data": [
			{"username": "owner1", "nama": "Owner", "role": "owner"},
			{"username": "kasir1", "nama": "Kasir", "role": "kasir"},
			{"username": "multi1", "nama": "Multi", "role": "kasir,admin"}
		]
	}`)

	require.NoError(t, db.Create(&models.Polling{Label: "pengguna", URL: server.URL}).Error)

	_, err := NewSyncService(db).SyncOperators(context.Background())
	require.NoError(t, err)

	var usernames []string
	require.NoError(t, db.Model(&models.Operator{}).
		Order("username ASC").
		Pluck("username", &usernames).Error)
	assert.Equal(t, []string{"multi1", "owner1"}, usernames)

	var syncs int64
	require.NoError(t, db.Model(&models.Sync{}).
		Where("label = ?", "operator").Count(&syncs).Error)
	assert.Equal(t, int64(1), syncs)
}

func TestSyncCategoriesUpsertsByName(t *testing.T) {
	db := newTestDB(t)
	server := newPollingServer(t, `{
		"data": [
			{"id_kategori": 2, "nama": "Semen"},
			{"id_kategori": 1, "nama": "Besi"}
		]
	}`)

	require.NoError(t, db.Create(&models.Polling{Label: "kategori", URL: server.URL}).Error)

	svc := NewSyncService(db)
	_, err := svc.SyncCategories(context.Background())
	require.NoError(t, err)
	_, err = svc.SyncCategories(context.Background())
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Kategori{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
