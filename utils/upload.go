package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 1 * 1024 * 1024 // 1 MiB

var allowedImageTypes = map[string]bool{
	"image/jpg":  true,
	"image/jpeg": true,
	"image/png":  true,
}

// SaveImage menyimpan file multipart ke ./public/<dir>/ dan mengembalikan
// path relatifnya (pakai "/" supaya bisa langsung digabung jadi url).
// Hanya jpg/jpeg/png, maksimal 1 MiB.
func SaveImage(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if file == nil {
		return "", BadRequest("File is required")
	}
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		return "", BadRequest("Only image files are allowed!")
	}
	if file.Size > maxImageSize {
		return "", BadRequest("File too large, max 1MB")
	}

	if err := os.MkdirAll(filepath.Join("public", dir), 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dst := filepath.Join("public", dir, filename)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}

	return strings.Join([]string{"public", dir, filename}, "/"), nil
}

// RemoveStoredFile menghapus file berdasar url yang tersimpan di db.
// url = baseURL + "/" + path relatif; file yang sudah hilang diabaikan.
func RemoveStoredFile(storedURL, baseURL string) {
	parts := strings.Split(storedURL, baseURL)
	rel := parts[len(parts)-1]
	rel = strings.TrimPrefix(rel, "/")

	if rel == "" {
		return
	}
	_ = os.Remove(filepath.FromSlash(rel))
}
