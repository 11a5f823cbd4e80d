package controllers

import (
	"net/http"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/config"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginOperatorInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterUserInput struct {
	Nama     string `json:"nama" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func LoginOperator(c *gin.Context) {
	var in LoginOperatorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	var operator models.Operator
	err := config.DB.Where("username = ?", in.Username).First(&operator).Error
	if err == gorm.ErrRecordNotFound || (err == nil && !utils.VerifyPassword(in.Password, operator.PasswordHash)) {
		utils.Error(c, utils.BadRequest("Username or password wrong"))
		return
	}
	if err != nil {
		utils.Error(c, err)
		return
	}

	token, err := utils.GenerateOperatorToken(operator.Username)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"nama":         operator.Nama,
		"access_token": token,
	})
}

func RegisterUser(c *gin.Context) {
	var in RegisterUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).
		Where("email = ?", in.Email).
		Count(&count).Error; err != nil {
		utils.Error(c, err)
		return
	}
	if count > 0 {
		utils.Error(c, utils.BadRequest("Email already registered"))
		return
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		utils.Error(c, err)
		return
	}

	user := models.User{
		UserID:       utils.RandomID(10),
		Email:        in.Email,
		Nama:         in.Nama,
		PasswordHash: hash,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, http.StatusCreated, user)
}

func LoginUser(c *gin.Context) {
	var in LoginUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	var user models.User
	err := config.DB.Where("email = ?", in.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound || (err == nil && !utils.VerifyPassword(in.Password, user.PasswordHash)) {
		utils.Error(c, utils.NotFound("Email or password wrong"))
		return
	}
	if err != nil {
		utils.Error(c, err)
		return
	}

	token, err := utils.GenerateUserToken(user.UserID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{"access_token": token})
}
