package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housemate/middleware"
	"housemate/models"
	"housemate/services/user"
)

// AddressHandler exposes the customer's saved addresses.
type AddressHandler struct {
	UserSvc user.UserService
}

func NewAddressHandler(svc user.UserService) *AddressHandler {
	return &AddressHandler{UserSvc: svc}
}

// ListAddressesHandler handles GET /api/addresses.
func (h *AddressHandler) ListAddressesHandler(c *gin.Context) {
	addrs, err := h.UserSvc.ListAddresses(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, addrs)
}

// CreateAddressHandler handles POST /api/addresses.
func (h *AddressHandler) CreateAddressHandler(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.UserSvc.CreateAddress(middleware.UserID(c), &addr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAddressHandler handles PATCH /api/addresses/:id.
func (h *AddressHandler) UpdateAddressHandler(c *gin.Context) {
	var upd models.AddressUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	addr, err := h.UserSvc.UpdateAddress(middleware.UserID(c), c.Param("id"), &upd)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, addr)
}

// DeleteAddressHandler handles DELETE /api/addresses/:id.
func (h *AddressHandler) DeleteAddressHandler(c *gin.Context) {
	if err := h.UserSvc.DeleteAddress(middleware.UserID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
