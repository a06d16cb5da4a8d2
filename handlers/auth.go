package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housemate/middleware"
	"housemate/models"
	"housemate/services/user"
)

// AuthHandler exposes registration, login and account endpoints.
type AuthHandler struct {
	UserSvc user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserSvc: svc}
}

// RegisterCustomerHandler handles POST /api/auth/register/customer.
func (h *AuthHandler) RegisterCustomerHandler(c *gin.Context) {
	var req models.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.UserSvc.RegisterCustomer(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegisterExpertHandler handles POST /api/auth/register/expert.
func (h *AuthHandler) RegisterExpertHandler(c *gin.Context) {
	var req models.RegisterExpertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.UserSvc.RegisterExpert(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.UserSvc.Login(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token := c.GetString(middleware.CtxToken)
	if err := h.UserSvc.Logout(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// MeHandler handles GET /api/auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	role, _ := c.Get(middleware.CtxRole)
	u, profile, err := h.UserSvc.Me(middleware.UserID(c), role.(models.UserRole))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "profile": profile})
}

// ListUsersHandler handles GET /api/admin/users with an optional
// ?role= filter.
func (h *AuthHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.UserSvc.ListUsers(models.UserRole(c.Query("role")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// BlockUserHandler handles POST /api/admin/users/:id/block.
func (h *AuthHandler) BlockUserHandler(c *gin.Context) {
	if err := h.UserSvc.SetUserBlocked(c.Param("id"), true); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "blocked"})
}

// UnblockUserHandler handles POST /api/admin/users/:id/unblock.
func (h *AuthHandler) UnblockUserHandler(c *gin.Context) {
	if err := h.UserSvc.SetUserBlocked(c.Param("id"), false); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unblocked"})
}

// UpdateFCMTokenHandler handles PUT /api/auth/fcm-token.
func (h *AuthHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.UserSvc.UpdateFCMToken(middleware.UserID(c), req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
