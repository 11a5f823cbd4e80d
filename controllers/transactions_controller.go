package controllers

import (
	"net/http"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/config"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/service"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
)

func CreateTransaction(c *gin.Context) {
	var in service.CreateTransaksiInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	result, err := service.NewTransaksiService(config.DB).Create(in, c.GetString("user_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, result)
}

func GetTransactions(c *gin.Context) {
	items, err := service.NewTransaksiService(config.DB).FindAll(c.GetString("user_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, items)
}

func GetTransactionDetail(c *gin.Context) {
	view, err := service.NewTransaksiService(config.DB).
		FindOne(c.Param("transaksi_id"), service.UserView)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, view)
}

func UpdateTransactionDraft(c *gin.Context) {
	var in service.UpdateDraftInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := service.NewTransaksiService(config.DB).UpdateDraft(in); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Transaction updated")
}

func CancelTransaction(c *gin.Context) {
	var in service.UpdateCancelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := service.NewTransaksiService(config.DB).UpdateCancel(in); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Transaction updated")
}
