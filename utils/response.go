package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success":     true,
		"status_code": statusCode,
		"data":        data,
	})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success":     true,
		"status_code": statusCode,
		"message":     message,
	})
}

// Error menerjemahkan error apapun ke error envelope. AppError membawa
// status code sendiri, gorm.ErrRecordNotFound jadi 404, sisanya 500.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, gin.H{
			"success":     false,
			"status_code": appErr.StatusCode,
			"error": gin.H{
				"name":    appErr.Name,
				"message": appErr.Message,
			},
		})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		Error(c, NotFound("Record not found"))
		return
	}

	// 23505 = unique_violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		Error(c, BadRequest("Record already exists"))
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success":     false,
		"status_code": http.StatusInternalServerError,
		"error": gin.H{
			"name":    "InternalServerError",
			"message": err.Error(),
		},
	})
}

// ValidationError untuk payload yang gagal binding.
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success":     false,
		"status_code": http.StatusBadRequest,
		"error": gin.H{
			"name":    "ValidationError",
			"message": "Validation failed",
			"errors":  err.Error(),
		},
	})
}
