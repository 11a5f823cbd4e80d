package controllers

import (
	"net/http"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/config"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/middlewares"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/service"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
)

// SubmitPayment menerima bukti transfer (multipart) dan menandai
// payment paid. Url file dibangun dari base url request.
func SubmitPayment(c *gin.Context) {
	transaksiID := c.PostForm("transaksi_id")
	nama := c.PostForm("nama")
	dari := c.PostForm("dari")
	if transaksiID == "" || nama == "" || dari == "" {
		utils.Error(c, utils.BadRequest("transaksi_id, nama, and dari are required"))
		return
	}

	file, err := c.FormFile("payment")
	if err != nil {
		utils.Error(c, utils.BadRequest("File is required"))
		return
	}

	path, err := utils.SaveImage(c, file, "payments")
	if err != nil {
		utils.Error(c, err)
		return
	}

	url := middlewares.BaseURL(c) + "/" + path

	if err := service.NewTransaksiService(config.DB).
		SubmitProof(transaksiID, url, nama, dari); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Message(c, http.StatusCreated, "Payment submitted")
}
