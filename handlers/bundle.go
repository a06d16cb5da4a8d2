package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housemate/utils"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Draft   *DraftHandler
	Booking *BookingHandler
	Expert  *ExpertHandler
	Address *AddressHandler
	Rating  *RatingHandler
}

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
}
