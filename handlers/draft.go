package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housemate/middleware"
	"housemate/models"
	"housemate/services/booking"
)

// DraftHandler exposes the booking draft flow.
type DraftHandler struct {
	DraftSvc booking.DraftService
}

func NewDraftHandler(svc booking.DraftService) *DraftHandler {
	return &DraftHandler{DraftSvc: svc}
}

// StartDraftHandler handles POST /api/drafts.
func (h *DraftHandler) StartDraftHandler(c *gin.Context) {
	view, err := h.DraftSvc.StartDraft(middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetDraftHandler handles GET /api/drafts/:sessionID.
func (h *DraftHandler) GetDraftHandler(c *gin.Context) {
	view, err := h.DraftSvc.GetDraft(c.Param("sessionID"), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateDraftHandler handles PATCH /api/drafts/:sessionID.
func (h *DraftHandler) UpdateDraftHandler(c *gin.Context) {
	var upd models.DraftUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.DraftSvc.UpdateDraft(c.Param("sessionID"), middleware.UserID(c), &upd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ConfirmDraftHandler handles POST /api/drafts/:sessionID/confirm.
func (h *DraftHandler) ConfirmDraftHandler(c *gin.Context) {
	bk, err := h.DraftSvc.ConfirmDraft(c.Param("sessionID"), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// CancelDraftHandler handles DELETE /api/drafts/:sessionID.
func (h *DraftHandler) CancelDraftHandler(c *gin.Context) {
	if err := h.DraftSvc.CancelDraft(c.Param("sessionID"), middleware.UserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
