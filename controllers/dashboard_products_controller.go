package controllers

import (
	"net/http"
	"strconv"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/config"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/middlewares"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/service"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProductActiveInput struct {
	KodeItem string `json:"kode_item" binding:"required"`
	Value    *bool  `json:"value" binding:"required"`
}

type UpdateCategoryActiveInput struct {
	NamaKategori string `json:"nama_kategori" binding:"required"`
	Value        *bool  `json:"value" binding:"required"`
}

func GetDashboardProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := service.NewDashboardService(config.DB).GetProducts(page)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, result)
}

func SearchDashboardProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := service.NewDashboardService(config.DB).
		SearchProducts(page, c.Query("q"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, result)
}

func GetDashboardProductBySlug(c *gin.Context) {
	var produk models.Produk
	err := config.DB.
		Preload("Image", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("slug = ?", c.Param("slug")).
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

func GetDashboardProductByKodeItem(c *gin.Context) {
	var produk models.Produk
	err := config.DB.
		Preload("Image", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("kode_item = ?", c.Param("kode_item")).
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

// UploadProductImage menerima foto produk (multipart) dan, kalau form
// deskripsi ikut dikirim, menyimpan keduanya dalam satu transaction.
func UploadProductImage(c *gin.Context) {
	kodeItem := c.PostForm("kode_item")
	if kodeItem == "" {
		utils.Error(c, utils.BadRequest("kode_item is required"))
		return
	}

	var count int64
	if err := config.DB.Model(&models.Produk{}).
		Where("kode_item = ?", kodeItem).
		Count(&count).Error; err != nil {
		utils.Error(c, err)
		return
	}
	if count == 0 {
		utils.Error(c, utils.NotFound("Product not found"))
		return
	}

	deskripsi := c.PostForm("deskripsi")

	file, _ := c.FormFile("image")
	if file == nil {
		if deskripsi == "" {
			utils.Error(c, utils.BadRequest("image or deskripsi is required"))
			return
		}
		if err := config.DB.Model(&models.Produk{}).
			Where("kode_item = ?", kodeItem).
			Update("deskripsi", deskripsi).Error; err != nil {
			utils.Error(c, err)
			return
		}
		utils.Message(c, http.StatusOK, "Product updated")
		return
	}

	path, err := utils.SaveImage(c, file, "products")
	if err != nil {
		utils.Error(c, err)
		return
	}
	url := middlewares.BaseURL(c) + "/" + path

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Image{KodeItem: kodeItem, URL: url}).Error; err != nil {
			return err
		}
		if deskripsi != "" {
			return tx.Model(&models.Produk{}).
				Where("kode_item = ?", kodeItem).
				Update("deskripsi", deskripsi).Error
		}
		return nil
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusCreated, "Product updated")
}

// DeleteProductImage menghapus baris image plus filenya di disk.
func DeleteProductImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.BadRequest("Invalid image id"))
		return
	}

	var image models.Image
	if err := config.DB.First(&image, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(c, utils.NotFound("Image not found"))
			return
		}
		utils.Error(c, err)
		return
	}

	if err := config.DB.Delete(&image).Error; err != nil {
		utils.Error(c, err)
		return
	}

	utils.RemoveStoredFile(image.URL, middlewares.BaseURL(c))
	utils.Message(c, http.StatusOK, "Image deleted")
}

func UpdateDashboardProductActive(c *gin.Context) {
	var in UpdateProductActiveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	err := service.NewDashboardService(config.DB).
		UpdateProductActive(in.KodeItem, *in.Value)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Product updated")
}

func UpdateDashboardCategoryActive(c *gin.Context) {
	var in UpdateCategoryActiveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	err := service.NewDashboardService(config.DB).
		UpdateCategoryActive(in.NamaKategori, *in.Value)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Category updated")
}

func GetDashboardCategories(c *gin.Context) {
	var categories []models.Kategori
	if err := config.DB.Order("nama ASC").Find(&categories).Error; err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"categories":        categories,
		"last_synchronized": service.NewDashboardService(config.DB).LastSynchronized("kategori"),
	})
}

func SyncProducts(c *gin.Context) {
	result, err := service.NewSyncService(config.DB).SyncProducts(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, result)
}

func SyncProductsByCategory(c *gin.Context) {
	result, err := service.NewSyncService(config.DB).
		SyncProductsByCategory(c.Request.Context(), c.Param("id_kategori"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, result)
}

func SyncCategories(c *gin.Context) {
	result, err := service.NewSyncService(config.DB).SyncCategories(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, result)
}

func SyncOperators(c *gin.Context) {
	result, err := service.NewSyncService(config.DB).SyncOperators(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, result)
}
