package handlers

import (
	"errors"
	"net/http"

	"bokaenkelt/services/rating"

	"github.com/gin-gonic/gin"
)

// RatingService is injected at startup.
var RatingService rating.RatingService

// SubmitRating records a rating for a stylist.
func SubmitRating(c *gin.Context) {
	var req rating.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := RatingService.Submit(req)
	if err != nil {
		switch {
		case errors.Is(err, rating.ErrOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, rating.ErrStylistNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListRatings lists every rating.
func ListRatings(c *gin.Context) {
	ratings, err := RatingService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// ListStylistRatings lists the ratings of one stylist.
func ListStylistRatings(c *gin.Context) {
	ratings, err := RatingService.ListForStylist(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ratings)
}
