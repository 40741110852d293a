package handlers

import (
	"errors"
	"net/http"

	"angoni/models"
	"angoni/services/inquiry"
	"angoni/utils"

	"github.com/gin-gonic/gin"
)

// InquiryHandler exposes trip planning, contact and newsletter endpoints.
type InquiryHandler struct {
	Service inquiry.Service
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(svc inquiry.Service) *InquiryHandler {
	return &InquiryHandler{Service: svc}
}

// PlanTrip handles POST /api/plan-trip.
func (h *InquiryHandler) PlanTrip(c *gin.Context) {
	var input models.TripRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid trip request payload: "+err.Error())
		return
	}

	req, err := h.Service.PlanTrip(input, requestMeta(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

// ListTripRequests handles GET /api/plan-trip (admin).
func (h *InquiryHandler) ListTripRequests(c *gin.Context) {
	requests, err := h.Service.ListTripRequests()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requests": requests})
}

// Contact handles POST /api/contact.
func (h *InquiryHandler) Contact(c *gin.Context) {
	var input models.ContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid contact payload: "+err.Error())
		return
	}

	if _, err := h.Service.Contact(input); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *InquiryHandler) Subscribe(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid subscription payload: "+err.Error())
		return
	}

	if err := h.Service.Subscribe(input.Email, requestMeta(c)); err != nil {
		if errors.Is(err, inquiry.ErrAlreadySubscribed) {
			utils.JSONError(c, http.StatusBadRequest, "Email already subscribed")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subscribed successfully"})
}
