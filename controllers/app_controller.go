package controllers

import (
	"net/http"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/config"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/service"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"status_code": http.StatusOK,
		"message":     "Welcome to TB Sinar Baja Shop API",
	})
}

// GetHomepage: banner terbaru + 14 produk terbaru yang layak tampil
// (active, punya harga jual, dan masih ada stok).
func GetHomepage(c *gin.Context) {
	var banners []models.Banner
	if err := config.DB.Order("created_at DESC").Find(&banners).Error; err != nil {
		utils.Error(c, err)
		return
	}

	var newest []models.Produk
	if err := config.DB.
		Preload("Image", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("active = ? AND harga_6 > 0 AND total_stok > 0", true).
		Order("created_at DESC").
		Limit(14).
		Find(&newest).Error; err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"banners": banners,
		"newest":  newest,
	})
}

func GetCategories(c *gin.Context) {
	var categories []models.Kategori
	if err := config.DB.Where("active = ?", true).
		Order("nama ASC").Find(&categories).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, categories)
}

func GetProvinces(c *gin.Context) {
	data, err := service.NewRegionalService(config.Redis).GetProvinces(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, data)
}

func GetRegencies(c *gin.Context) {
	data, err := service.NewRegionalService(config.Redis).
		GetRegencies(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, data)
}

func GetDistricts(c *gin.Context) {
	data, err := service.NewRegionalService(config.Redis).
		GetDistricts(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, data)
}
