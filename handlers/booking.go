package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housemate/middleware"
	"housemate/models"
	"housemate/services/booking"
	"housemate/services/expert"
)

// BookingHandler exposes the booking lifecycle for both sides of the
// marketplace. Expert endpoints resolve the profile behind the token.
type BookingHandler struct {
	BookingSvc booking.BookingService
	ExpertSvc  expert.ExpertService
}

func NewBookingHandler(bookingSvc booking.BookingService, expertSvc expert.ExpertService) *BookingHandler {
	return &BookingHandler{BookingSvc: bookingSvc, ExpertSvc: expertSvc}
}

// ListMyBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingSvc.ListCustomerBookings(middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id. Customers see their
// own bookings only; the OTP stays server-side except for the owner.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bk, err := h.BookingSvc.GetBooking(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if bk.CustomerID != middleware.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "booking belongs to another customer"})
		return
	}
	// The customer reads the code to the expert in person.
	c.JSON(http.StatusOK, gin.H{"booking": bk, "otp": bk.OTP})
}

// PayHandler handles POST /api/bookings/:id/pay.
func (h *BookingHandler) PayHandler(c *gin.Context) {
	var req models.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	bk, payment, err := h.BookingSvc.Pay(c.Param("id"), middleware.UserID(c), req.Method)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk, "payment": payment})
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bk, err := h.BookingSvc.CancelByCustomer(c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ModifyBookingHandler handles PATCH /api/bookings/:id.
func (h *BookingHandler) ModifyBookingHandler(c *gin.Context) {
	var upd models.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	bk, err := h.BookingSvc.Modify(c.Param("id"), middleware.UserID(c), &upd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// RegenerateOTPHandler handles POST /api/bookings/:id/regenerate-otp.
func (h *BookingHandler) RegenerateOTPHandler(c *gin.Context) {
	bk, err := h.BookingSvc.RegenerateOTP(c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk, "otp": bk.OTP})
}

// expertProfileID resolves the expert profile behind the token.
func (h *BookingHandler) expertProfileID(c *gin.Context) (string, bool) {
	profile, err := h.ExpertSvc.GetProfileByUserID(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "no expert profile for this account"})
		return "", false
	}
	return profile.ID, true
}

// ListExpertBookingsHandler handles GET /api/experts/me/bookings with
// an optional ?status= filter.
func (h *BookingHandler) ListExpertBookingsHandler(c *gin.Context) {
	expertID, ok := h.expertProfileID(c)
	if !ok {
		return
	}
	var statuses []models.BookingStatus
	if s := c.Query("status"); s != "" {
		statuses = append(statuses, models.BookingStatus(s))
	}
	bookings, err := h.BookingSvc.ListExpertBookings(expertID, statuses...)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// AcceptBookingHandler handles POST /api/experts/me/bookings/:id/accept.
func (h *BookingHandler) AcceptBookingHandler(c *gin.Context) {
	expertID, ok := h.expertProfileID(c)
	if !ok {
		return
	}
	bk, err := h.BookingSvc.Accept(c.Param("id"), expertID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// RejectBookingHandler handles POST /api/experts/me/bookings/:id/reject.
func (h *BookingHandler) RejectBookingHandler(c *gin.Context) {
	expertID, ok := h.expertProfileID(c)
	if !ok {
		return
	}
	bk, err := h.BookingSvc.Reject(c.Param("id"), expertID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

type otpRequest struct {
	OTP string `json:"otp" binding:"required,len=4"`
}

// StartJobHandler handles POST /api/experts/me/bookings/:id/start.
func (h *BookingHandler) StartJobHandler(c *gin.Context) {
	expertID, ok := h.expertProfileID(c)
	if !ok {
		return
	}
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	bk, err := h.BookingSvc.StartJob(c.Param("id"), expertID, req.OTP)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CompleteJobHandler handles POST /api/experts/me/bookings/:id/complete.
func (h *BookingHandler) CompleteJobHandler(c *gin.Context) {
	expertID, ok := h.expertProfileID(c)
	if !ok {
		return
	}
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	bk, err := h.BookingSvc.CompleteJob(c.Param("id"), expertID, req.OTP)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}
