package controllers

import (
	"net/http"
	"strconv"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/config"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/service"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
)

func GetDashboard(c *gin.Context) {
	summary, err := service.NewDashboardService(config.DB).GetDashboard()
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, summary)
}

func GetDashboardTransactions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	list, err := service.NewDashboardService(config.DB).
		GetTransactions(c.Query("status"), page)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, list)
}

func GetDashboardTransactionTabs(c *gin.Context) {
	tabs, err := service.NewDashboardService(config.DB).GetTransactionTabs()
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, tabs)
}

func GetDashboardTransactionDetail(c *gin.Context) {
	view, err := service.NewTransaksiService(config.DB).
		FindOne(c.Param("transaksi_id"), service.AdminView)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, view)
}

func UpdateTransactionCost(c *gin.Context) {
	var in service.UpdateCostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := service.NewTransaksiService(config.DB).UpdateCost(in); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Transaction updated")
}

func UpdateTransactionVerification(c *gin.Context) {
	var in service.UpdateVerificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := service.NewTransaksiService(config.DB).UpdateVerification(in); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Transaction updated")
}

func UpdateTransactionDone(c *gin.Context) {
	var in service.UpdateDoneInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := service.NewTransaksiService(config.DB).UpdateDone(in); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Transaction updated")
}

func UpdateTransactionCancel(c *gin.Context) {
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
