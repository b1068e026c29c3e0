package handlers

import (
	"errors"
	"net/http"

	"bokaenkelt/services/admin"
	"bokaenkelt/services/stylist"

	"github.com/gin-gonic/gin"
)

// AdminService is injected at startup.
var AdminService admin.AdminService

// LoginAdmin authenticates a super-admin and returns a token.
func LoginAdmin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := AdminService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// AdminListStylists lists every stylist, active or not.
func AdminListStylists(c *gin.Context) {
	stylists, err := StylistService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stylists)
}

// AdminCreateStylist provisions a stylist account on behalf of the platform.
func AdminCreateStylist(c *gin.Context) {
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

// AdminDeactivateStylist soft-deletes a stylist; their profile stops being
// listed and new bookings cannot target them.
func AdminDeactivateStylist(c *gin.Context) {
	if err := StylistService.Deactivate(c.Param("id")); err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stylist deactivated"})
}

// AdminListCustomers lists every customer account.
func AdminListCustomers(c *gin.Context) {
	customers, err := CustomerService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// AdminListBookings lists every booking on the platform.
func AdminListBookings(c *gin.Context) {
	bookings, err := BookingService.ListAll()
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
