package handlers

import (
	"errors"
	"net/http"

	"bokaenkelt/middleware"
	"bokaenkelt/models"
	"bokaenkelt/services/stylist"

	"github.com/gin-gonic/gin"
)

// StylistService is injected at startup.
var StylistService stylist.StylistService

func stylistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, stylist.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, stylist.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, stylist.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, stylist.ErrInvalidAvailability):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// RegisterStylist creates a stylist account.
func RegisterStylist(c *gin.Context) {
	var req stylist.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := StylistService.Register(req)
	if err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// LoginStylist authenticates a stylist and returns a token.
func LoginStylist(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := StylistService.Authenticate(req.Email, req.Password)
	if err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListStylists returns the public list of active stylists.
func ListStylists(c *gin.Context) {
	stylists, err := StylistService.ListActive()
	if err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, stylists)
}

// GetStylist returns one stylist profile.
func GetStylist(c *gin.Context) {
	found, err := StylistService.GetByID(c.Param("id"))
	if err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateStylist applies a partial update to the stylist named in the path.
// Stylists may only update themselves; super-admins may update anyone.
func UpdateStylist(c *gin.Context) {
	id := c.Param("id")
	if c.GetString(middleware.CtxRole) != "superadmin" && id != c.GetString(middleware.CtxAccountID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}
	updateStylist(c, id)
}

func updateStylist(c *gin.Context, id string) {
	var update models.StylistUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := StylistService.UpdateProfile(id, update)
	if err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
