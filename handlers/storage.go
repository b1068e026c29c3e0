package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"bokaenkelt/middleware"
	"bokaenkelt/models"
	"bokaenkelt/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StorageService is injected at startup.
var StorageService storage.StorageService

const maxUploadBytes = 8 << 20

// UploadStylistPhoto accepts a multipart image upload, stores it, and appends
// the resulting URL to the caller's photo list.
func UploadStylistPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a photo file is required"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo exceeds the maximum size"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload-%s%s", uuid.New().String(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer os.Remove(tmpPath)

	result, err := StorageService.UploadImage(c.Request.Context(), tmpPath, "stylists")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload photo"})
		return
	}

	stylistID := c.GetString(middleware.CtxAccountID)
	current, err := StylistService.GetByID(stylistID)
	if err != nil {
		stylistError(c, err)
		return
	}
	photos := append(current.Photos, result.URL)
	updated, err := StylistService.UpdateProfile(stylistID, models.StylistUpdate{Photos: &photos})
	if err != nil {
		stylistError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo": result, "stylist": updated})
}

// GetImageURL resolves the delivery URL for a stored image.
func GetImageURL(c *gin.Context) {
	url, err := StorageService.ImageURL(c.Param("publicId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
