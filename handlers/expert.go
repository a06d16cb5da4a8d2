package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"housemate/middleware"
	"housemate/models"
	"housemate/services/expert"
)

// ExpertHandler exposes the expert-side endpoints: profile, published
// availability, online status, dashboard stats and document upload.
type ExpertHandler struct {
	ExpertSvc expert.ExpertService
}

func NewExpertHandler(svc expert.ExpertService) *ExpertHandler {
	return &ExpertHandler{ExpertSvc: svc}
}

func (h *ExpertHandler) myProfile(c *gin.Context) (*models.ExpertProfile, bool) {
	profile, err := h.ExpertSvc.GetProfileByUserID(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "no expert profile for this account"})
		return nil, false
	}
	return profile, true
}

// GetMyProfileHandler handles GET /api/experts/me.
func (h *ExpertHandler) GetMyProfileHandler(c *gin.Context) {
	profile, ok := h.myProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetExpertHandler handles GET /api/experts/:id (public card).
func (h *ExpertHandler) GetExpertHandler(c *gin.Context) {
	profile, err := h.ExpertSvc.GetProfile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "expert not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PATCH /api/experts/me.
func (h *ExpertHandler) UpdateProfileHandler(c *gin.Context) {
	profile, ok := h.myProfile(c)
	if !ok {
		return
	}
	var upd models.ExpertProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	updated, err := h.ExpertSvc.UpdateProfile(profile.ID, &upd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetOnlineStatusHandler handles PUT /api/experts/me/online-status.
func (h *ExpertHandler) SetOnlineStatusHandler(c *gin.Context) {
	profile, ok := h.myProfile(c)
	if !ok {
		return
	}
	var req struct {
		Status models.ExpertOnlineStatus `json:"status" binding:"required,oneof=ONLINE OFFLINE"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	updated, err := h.ExpertSvc.SetOnlineStatus(profile.ID, req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetAvailabilityHandler handles GET /api/experts/me/availability.
func (h *ExpertHandler) GetAvailabilityHandler(c *gin.Context) {
	profile, ok := h.myProfile(c)
	if !ok {
		return
	}
	records, err := h.ExpertSvc.GetAvailability(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// SetAvailabilityHandler handles PUT /api/experts/me/availability.
func (h *ExpertHandler) SetAvailabilityHandler(c *gin.Context) {
	profile, ok := h.myProfile(c)
	if !ok {
		return
	}
	var req struct {
		Date      string   `json:"date" binding:"required"`
		TimeSlots []string `json:"timeSlots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	av, err := h.ExpertSvc.SetAvailability(profile.ID, req.Date, req.TimeSlots)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, av)
}

// StatsHandler handles GET /api/experts/me/stats.
func (h *ExpertHandler) StatsHandler(c *gin.Context) {
	profile, ok := h.myProfile(c)
	if !ok {
		return
	}
	stats, err := h.ExpertSvc.Stats(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UploadIDProofHandler handles POST /api/experts/me/id-proof. The file
// arrives as multipart form data and is staged locally before upload.
func (h *ExpertHandler) UploadIDProofHandler(c *gin.Context) {
	profile, ok := h.myProfile(c)
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file", "details": err.Error()})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage file"})
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.ExpertSvc.UploadIDProof(profile.ID, tmpPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"idProofUrl": url})
}

// ListPendingExpertsHandler handles GET /api/admin/experts/pending.
func (h *ExpertHandler) ListPendingExpertsHandler(c *gin.Context) {
	profiles, err := h.ExpertSvc.ListPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// ApproveExpertHandler handles POST /api/admin/experts/:id/approve.
func (h *ExpertHandler) ApproveExpertHandler(c *gin.Context) {
	profile, err := h.ExpertSvc.Approve(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RejectExpertHandler handles POST /api/admin/experts/:id/reject.
func (h *ExpertHandler) RejectExpertHandler(c *gin.Context) {
	profile, err := h.ExpertSvc.RejectExpert(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
