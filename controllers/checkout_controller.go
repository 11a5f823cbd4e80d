package controllers

import (
	"net/http"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/config"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/service"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
)

func Checkout(c *gin.Context) {
	var in service.CheckoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	preview, err := service.NewCheckoutService(config.DB).Preview(in, c.GetString("user_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, preview)
}
