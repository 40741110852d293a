package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"angoni/models"
	"angoni/services/booking"
	"angoni/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.Service
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}

	created, err := h.Service.Create(input, requestMeta(c))
	if err != nil {
		zap.L().Error("Booking creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": created,
		"message": "Booking created successfully",
	})
}

// ListBookings handles GET /api/bookings (admin).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := models.BookingFilter{
		Status:      c.Query("status"),
		BookingType: c.Query("booking_type"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		filter.Limit = limit
	}

	bookings, err := h.Service.List(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// GetBookingByReference handles GET /api/bookings/:reference.
func (h *BookingHandler) GetBookingByReference(c *gin.Context) {
	reference := c.Param("reference")

	found, err := h.Service.GetByReference(reference)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": found})
}

// UpdateBooking handles PUT /api/bookings/:id (admin, externally-driven fields).
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload: "+err.Error())
		return
	}

	updated, err := h.Service.Update(c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": updated})
}
