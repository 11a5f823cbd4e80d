package controllers

import (
	"net/http"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/config"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	Nama         string `json:"nama"`
	NoTelpon     string `json:"no_telpon" binding:"omitempty,startswith=08,min=10,max=14"`
	TanggalLahir string `json:"tanggal_lahir"`
	JenisKelamin string `json:"jenis_kelamin" binding:"omitempty,oneof=P W"`
}

type CreateAddressInput struct {
	NamaPenerima  string `json:"nama_penerima" binding:"required"`
	NoTelpon      string `json:"no_telpon" binding:"required,startswith=08,min=10,max=14"`
	Provinsi      string `json:"provinsi" binding:"required"`
	Kota          string `json:"kota" binding:"required"`
	Kecamatan     string `json:"kecamatan" binding:"required"`
	AlamatLengkap string `json:"alamat_lengkap" binding:"required"`
	Label         string `json:"label"`
	KodePos       string `json:"kode_pos"`
	MainAddress   bool   `json:"main_address"`
}

type UpdateAddressInput struct {
	AddressID     string `json:"address_id" binding:"required"`
	NamaPenerima  string `json:"nama_penerima"`
	NoTelpon      string `json:"no_telpon" binding:"omitempty,startswith=08,min=10,max=14"`
	Provinsi      string `json:"provinsi"`
	Kota          string `json:"kota"`
	Kecamatan     string `json:"kecamatan"`
	AlamatLengkap string `json:"alamat_lengkap"`
	Label         string `json:"label"`
	KodePos       string `json:"kode_pos"`
	MainAddress   *bool  `json:"main_address"`
}

func GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := config.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		utils.Error(c, err)
		return
	}

	var total int64
	if err := config.DB.Model(&models.Transaksi{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"nama":              user.Nama,
		"email":             user.Email,
		"total_transaction": total,
	})
}

func GetProfileDetail(c *gin.Context) {
	var user models.User
	if err := config.DB.Where("user_id = ?", c.GetString("user_id")).First(&user).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, user)
}

func UpdateProfile(c *gin.Context) {
	var in UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if in.Nama != "" {
		updates["nama"] = in.Nama
	}
	if in.NoTelpon != "" {
		updates["no_telpon"] = in.NoTelpon
	}
	if in.TanggalLahir != "" {
		updates["tanggal_lahir"] = in.TanggalLahir
	}
	if in.JenisKelamin != "" {
		updates["jenis_kelamin"] = in.JenisKelamin
	}
	if len(updates) == 0 {
		utils.Message(c, http.StatusOK, "Profile updated")
		return
	}

	if err := config.DB.Model(&models.User{}).
		Where("user_id = ?", c.GetString("user_id")).
		Updates(updates).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Profile updated")
}

// GetAddresses: semua alamat user, atau satu alamat kalau query
// address_id diisi.
func GetAddresses(c *gin.Context) {
	userID := c.GetString("user_id")

	if addressID := c.Query("address_id"); addressID != "" {
		var address models.Address
		err := config.DB.
			Where("address_id = ? AND user_id = ?", addressID, userID).
			First(&address).Error
		if err == gorm.ErrRecordNotFound {
			utils.Error(c, utils.NotFound("Address not found"))
			return
		}
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.Success(c, http.StatusOK, address)
		return
	}

	var addresses []models.Address
	if err := config.DB.
		Where("user_id = ?", userID).
		Order("main_address DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, addresses)
}

func CreateAddress(c *gin.Context) {
	var in CreateAddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	address := models.Address{
		AddressID:     utils.RandomID(10),
		UserID:        c.GetString("user_id"),
		NamaPenerima:  in.NamaPenerima,
		NoTelpon:      in.NoTelpon,
		Provinsi:      in.Provinsi,
		Kota:          in.Kota,
		Kecamatan:     in.Kecamatan,
		AlamatLengkap: in.AlamatLengkap,
		Label:         in.Label,
		KodePos:       in.KodePos,
		MainAddress:   in.MainAddress,
	}
	if err := config.DB.Create(&address).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, address)
}

func UpdateAddress(c *gin.Context) {
	var in UpdateAddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	userID := c.GetString("user_id")

	var count int64
	if err := config.DB.Model(&models.Address{}).
		Where("address_id = ? AND user_id = ?", in.AddressID, userID).
		Count(&count).Error; err != nil {
		utils.Error(c, err)
		return
	}
	if count == 0 {
		utils.Error(c, utils.NotFound("Address not found"))
		return
	}

	updates := map[string]interface{}{}
	if in.NamaPenerima != "" {
		updates["nama_penerima"] = in.NamaPenerima
	}
	if in.NoTelpon != "" {
		updates["no_telpon"] = in.NoTelpon
	}
	if in.Provinsi != "" {
		updates["provinsi"] = in.Provinsi
	}
	if in.Kota != "" {
		updates["kota"] = in.Kota
	}
	if in.Kecamatan != "" {
		updates["kecamatan"] = in.Kecamatan
	}
	if in.AlamatLengkap != "" {
		updates["alamat_lengkap"] = in.AlamatLengkap
	}
	if in.Label != "" {
		updates["label"] = in.Label
	}
	if in.KodePos != "" {
		updates["kode_pos"] = in.KodePos
	}
	if in.MainAddress != nil {
		updates["main_address"] = *in.MainAddress
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&models.Address{}).
			Where("address_id = ? AND user_id = ?", in.AddressID, userID).
			Updates(updates).Error; err != nil {
			utils.Error(c, err)
			return
		}
	}
	utils.Message(c, http.StatusOK, "Address updated")
}

func DeleteAddress(c *gin.Context) {
	userID := c.GetString("user_id")
	addressID := c.Param("address_id")

	var count int64
	if err := config.DB.Model(&models.Address{}).
		Where("address_id = ? AND user_id = ?", addressID, userID).
		Count(&count).Error; err != nil {
		utils.Error(c, err)
		return
	}
	if count == 0 {
		utils.Error(c, utils.NotFound("Address not found"))
		return
	}

	if err := config.DB.
		Where("address_id = ? AND user_id = ?", addressID, userID).
		Delete(&models.Address{}).Error; err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Address deleted")
}
