package controllers

import (
	"net/http"
	"strconv"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/config"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const productPageSize = 10

// GetProducts: katalog storefront, hanya produk active. sort default newest.
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	order := "created_at DESC"
	switch c.Query("sort") {
	case "oldest":
		order = "created_at ASC"
	case "highest":
		order = "harga_6 DESC"
	case "lowest":
		order = "harga_6 ASC"
	}

	q := config.DB.Model(&models.Produk{}).Where("active = ?", true)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		utils.Error(c, err)
		return
	}

	var products []models.Produk
	if err := q.Session(&gorm.Session{}).
		Preload("Image", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order(order).
		Limit(productPageSize).
		Offset((page - 1) * productPageSize).
		Find(&products).Error; err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"products":    products,
		"total_items": total,
		"page":        page,
	})
}

func GetProductBySlug(c *gin.Context) {
	var produk models.Produk
	err := config.DB.
		Preload("Image", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("slug = ? AND active = ?", c.Param("slug"), true).
		First(&produk).Error
	if err == gorm.ErrRecordNotFound {
		utils.Error(c, utils.NotFound("Product not found"))
		return
	}
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, http.StatusOK, produk)
}
