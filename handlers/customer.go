package handlers

import (
	"errors"
	"net/http"

	"bokaenkelt/middleware"
	"bokaenkelt/services/customer"

	"github.com/gin-gonic/gin"
)

// CustomerService is injected at startup.
var CustomerService customer.CustomerService

func customerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customer.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, customer.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, customer.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// RegisterCustomer creates a customer account.
func RegisterCustomer(c *gin.Context) {
	var req customer.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := CustomerService.Register(req)
	if err != nil {
		customerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// LoginCustomer authenticates a customer and returns a token.
func LoginCustomer(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := CustomerService.Authenticate(req.Email, req.Password)
	if err != nil {
		customerError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCustomerProfile returns the caller's own profile.
func GetCustomerProfile(c *gin.Context) {
	found, err := CustomerService.GetByID(c.GetString(middleware.CtxAccountID))
	if err != nil {
		customerError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateCustomerProfile applies a partial update to the caller's own profile.
func UpdateCustomerProfile(c *gin.Context) {
	var update customer.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := CustomerService.UpdateProfile(c.GetString(middleware.CtxAccountID), update)
	if err != nil {
		customerError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
