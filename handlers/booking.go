package handlers

import (
	"net/http"
	"time"

	"bokaenkelt/middleware"
	"bokaenkelt/models"
	"bokaenkelt/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingService is injected at startup.
var BookingService booking.BookingService

func requesterFrom(c *gin.Context) booking.Requester {
	return booking.Requester{
		ID:   c.GetString(middleware.CtxAccountID),
		Role: c.GetString(middleware.CtxRole),
	}
}

func bookingError(c *gin.Context, err error) {
	switch {
	case booking.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case booking.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case booking.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// CreateBooking admits a booking for an authenticated customer.
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	customer := models.RegisteredCustomer(c.GetString(middleware.CtxAccountID))
	created, err := BookingService.CreateBooking(req, customer)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CreateGuestBooking admits a booking without an account, identified by the
// contact details in the request.
func CreateGuestBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	customer := models.GuestCustomer(req.CustomerName, req.CustomerEmail, req.CustomerPhone)
	created, err := BookingService.CreateBooking(req, customer)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBookings lists bookings scoped by the caller's role: customers see their
// own, stylists see their calendar, admins see everything.
func ListBookings(c *gin.Context) {
	requester := requesterFrom(c)

	var (
		bookings []models.Booking
		err      error
	)
	switch requester.Role {
	case "customer":
		bookings, err = BookingService.ListForCustomer(requester.ID)
	case "stylist":
		bookings, err = BookingService.ListForStylist(requester.ID)
	default:
		bookings, err = BookingService.ListAll()
	}
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListStylistBookings returns the calling stylist's own calendar.
func ListStylistBookings(c *gin.Context) {
	bookings, err := BookingService.ListForStylist(c.GetString(middleware.CtxAccountID))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves one booking. Customers may only read their own.
func GetBooking(c *gin.Context) {
	requester := requesterFrom(c)
	found, err := BookingService.GetByID(c.Param("id"))
	if err != nil {
		bookingError(c, err)
		return
	}
	if !requester.Elevated() && found.Customer.RegisteredID != requester.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateBooking applies a partial update to a booking.
func UpdateBooking(c *gin.Context) {
	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := BookingService.Update(c.Param("id"), requesterFrom(c), update)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelBooking transitions a booking to the cancelled state. The record is
// kept for history; its slot becomes available again.
func CancelBooking(c *gin.Context) {
	cancelled, err := BookingService.Cancel(c.Param("id"), requesterFrom(c))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// BookedSlots returns the booked start times for a stylist on a date.
func BookedSlots(c *gin.Context) {
	var req struct {
		StylistID string `json:"stylistId" binding:"required"`
		Date      string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stylistId and date are required"})
		return
	}

	times, err := BookingService.BookedTimes(req.StylistID, req.Date)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookedSlots": times})
}

// StylistDaySlots returns the full slot grid for a stylist and date, with
// eligibility and the booked subset.
func StylistDaySlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	slots, err := BookingService.DaySlots(c.Param("id"), date, time.Now())
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
