package controllers

import (
	"net/http"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/config"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/service"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
)

type UpdateCartActiveInput struct {
	CartID string `json:"cart_id" binding:"required"`
	Value  *bool  `json:"value" binding:"required"`
}

func GetCarts(c *gin.Context) {
	carts, err := service.NewCartService(config.DB).GetCarts(c.GetString("user_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, http.StatusOK, carts)
}

func CreateCart(c *gin.Context) {
	var in service.CreateCartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := service.NewCartService(config.DB).CreateCart(in, c.GetString("user_id")); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusCreated, "Cart created")
}

func UpdateCartActive(c *gin.Context) {
	var in UpdateCartActiveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	err := service.NewCartService(config.DB).
		UpdateActive(in.CartID, c.GetString("user_id"), *in.Value)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Cart updated")
}

func UpdateCartQuantity(c *gin.Context) {
	var in service.UpdateQuantityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := service.NewCartService(config.DB).UpdateQuantity(in, c.GetString("user_id")); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Cart updated")
}

func DeleteCart(c *gin.Context) {
	err := service.NewCartService(config.DB).
		DeleteCart(c.Param("cart_id"), c.GetString("user_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Cart deleted")
}
