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

type CreateBankInput struct {
	NoRekening string `json:"no_rekening" binding:"required"`
	AtasNama   string `json:"atas_nama" binding:"required"`
	Bank       string `json:"bank" binding:"required"`
}

type UpdateBankInput struct {
	BankID     string `json:"bank_id" binding:"required"`
	NoRekening string `json:"no_rekening"`
	AtasNama   string `json:"atas_nama"`
	Bank       string `json:"bank"`
}

type CreatePollingInput struct {
	Label string `json:"label" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}

type UpdatePollingInput struct {
	ID    uint   `json:"id" binding:"required"`
	Label string `json:"label"`
	URL   string `json:"url" binding:"omitempty,url"`
}

type UpdateOperationalInput struct {
	ID       uint   `json:"id" binding:"required"`
	JamBuka  string `json:"jam_buka"`
	JamTutup string `json:"jam_tutup"`
}

func GetBanners(c *gin.Context) {
	var banners []models.Banner
	if err := config.DB.Order("created_at DESC").Find(&banners).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, banners)
}

func CreateBanner(c *gin.Context) {
	file, err := c.FormFile("banner")
	if err != nil {
		utils.Error(c, utils.BadRequest("File is required"))
		return
	}

	path, err := utils.SaveImage(c, file, "banners")
	if err != nil {
		utils.Error(c, err)
		return
	}

	banner := models.Banner{URL: middlewares.BaseURL(c) + "/" + path}
	if err := config.DB.Create(&banner).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, banner)
}

func DeleteBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.BadRequest("Invalid banner id"))
		return
	}

	var banner models.Banner
	if err := config.DB.First(&banner, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(c, utils.NotFound("Banner not found"))
			return
		}
		utils.Error(c, err)
		return
	}

	if err := config.DB.Delete(&banner).Error; err != nil {
		utils.Error(c, err)
		return
	}

	utils.RemoveStoredFile(banner.URL, middlewares.BaseURL(c))
	utils.Message(c, http.StatusOK, "Banner deleted")
}

func GetBanks(c *gin.Context) {
	var banks []models.BankAccount
	if err := config.DB.Order("created_at DESC").Find(&banks).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, banks)
}

func CreateBank(c *gin.Context) {
	var in CreateBankInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	var count int64
	if err := config.DB.Model(&models.BankAccount{}).
		Where("no_rekening = ?", in.NoRekening).
		Count(&count).Error; err != nil {
		utils.Error(c, err)
		return
	}
	if count > 0 {
		utils.Error(c, utils.BadRequest("Bank account already exists"))
		return
	}

	bank := models.BankAccount{
		BankID:     utils.RandomID(10),
		NoRekening: in.NoRekening,
		AtasNama:   in.AtasNama,
		Bank:       in.Bank,
	}
	if err := config.DB.Create(&bank).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, bank)
}

func UpdateBank(c *gin.Context) {
	var in UpdateBankInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	var count int64
	if err := config.DB.Model(&models.BankAccount{}).
		Where("bank_id = ?", in.BankID).
		Count(&count).Error; err != nil {
		utils.Error(c, err)
		return
	}
	if count == 0 {
		utils.Error(c, utils.NotFound("Bank account not found"))
		return
	}

	updates := map[string]interface{}{}
	if in.NoRekening != "" {
		updates["no_rekening"] = in.NoRekening
	}
	if in.AtasNama != "" {
		updates["atas_nama"] = in.AtasNama
	}
	if in.Bank != "" {
		updates["bank"] = in.Bank
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&models.BankAccount{}).
			Where("bank_id = ?", in.BankID).
			Updates(updates).Error; err != nil {
			utils.Error(c, err)
			return
		}
	}
	utils.Message(c, http.StatusOK, "Bank account updated")
}

func DeleteBank(c *gin.Context) {
	bankID := c.Param("bank_id")

	var count int64
	if err := config.DB.Model(&models.BankAccount{}).
		Where("bank_id = ?", bankID).
		Count(&count).Error; err != nil {
		utils.Error(c, err)
		return
	}
	if count == 0 {
		utils.Error(c, utils.NotFound("Bank account not found"))
		return
	}

	if err := config.DB.Where("bank_id = ?", bankID).
		Delete(&models.BankAccount{}).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Bank account deleted")
}

func GetPollings(c *gin.Context) {
	var pollings []models.Polling
	if err := config.DB.Order("label ASC").Find(&pollings).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, pollings)
}

func CreatePolling(c *gin.Context) {
	var in CreatePollingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Polling{}).
		Where("url = ?", in.URL).
		Count(&count).Error; err != nil {
		utils.Error(c, err)
		return
	}
	if count > 0 {
		utils.Error(c, utils.BadRequest("Polling url already exists"))
		return
	}

	polling := models.Polling{Label: in.Label, URL: in.URL}
	if err := config.DB.Create(&polling).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, polling)
}

func UpdatePolling(c *gin.Context) {
	var in UpdatePollingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Polling{}).
		Where("id = ?", in.ID).
		Count(&count).Error; err != nil {
		utils.Error(c, err)
		return
	}
	if count == 0 {
		utils.Error(c, utils.NotFound("Polling not found"))
		return
	}

	updates := map[string]interface{}{}
	if in.Label != "" {
		updates["label"] = in.Label
	}
	if in.URL != "" {
		updates["url"] = in.URL
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&models.Polling{}).
			Where("id = ?", in.ID).
			Updates(updates).Error; err != nil {
			utils.Error(c, err)
			return
		}
	}
	utils.Message(c, http.StatusOK, "Polling updated")
}

func DeletePolling(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.BadRequest("Invalid polling id"))
		return
	}

	res := config.DB.Delete(&models.Polling{}, id)
	if res.Error != nil {
		utils.Error(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, utils.NotFound("Polling not found"))
		return
	}
	utils.Message(c, http.StatusOK, "Polling deleted")
}

func GetOperators(c *gin.Context) {
	var operators []models.Operator
	if err := config.DB.Order("nama ASC").Find(&operators).Error; err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"operators":         operators,
		"last_synchronized": service.NewDashboardService(config.DB).LastSynchronized("operator"),
	})
}

func DeleteOperator(c *gin.Context) {
	res := config.DB.Where("username = ?", c.Param("username")).
		Delete(&models.Operator{})
	if res.Error != nil {
		utils.Error(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, utils.NotFound("Operator not found"))
		return
	}
	utils.Message(c, http.StatusOK, "Operator deleted")
}

func GetOperationals(c *gin.Context) {
	var operationals []models.Operational
	if err := config.DB.Order("id ASC").Find(&operationals).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, operationals)
}

func UpdateOperational(c *gin.Context) {
	var in UpdateOperationalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Operational{}).
		Where("id = ?", in.ID).
		Count(&count).Error; err != nil {
		utils.Error(c, err)
		return
	}
	if count == 0 {
		utils.Error(c, utils.NotFound("Operational not found"))
		return
	}

	updates := map[string]interface{}{}
	if in.JamBuka != "" {
		updates["jam_buka"] = in.JamBuka
	}
	if in.JamTutup != "" {
		updates["jam_tutup"] = in.JamTutup
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&models.Operational{}).
			Where("id = ?", in.ID).
			Updates(updates).Error; err != nil {
			utils.Error(c, err)
			return
		}
	}
	utils.Message(c, http.StatusOK, "Operational updated")
}
