package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingRepo "housemate/database/repository/booking"
	"housemate/services/booking"
	"housemate/utils"
)

// respondServiceError translates service errors into HTTP statuses.
// Flow errors carry a code the client can branch on; anything else is
// an internal failure.
func respondServiceError(c *gin.Context, err error) {
	var fe *booking.FlowError
	if errors.As(err, &fe) {
		status := http.StatusBadRequest
		switch fe.Code {
		case "draftNotFound", "bookingNotFound":
			status = http.StatusNotFound
		case "draftForbidden", "bookingForbidden":
			status = http.StatusForbidden
		case "invalidTransition", "expertUnavailable":
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": fe.Message, "code": fe.Code})
		return
	}

	if errors.Is(err, bookingRepo.ErrStatusConflict) {
		utils.JSONError(c, http.StatusConflict, "Conflict", "booking status changed concurrently, reload and retry")
		return
	}

	var me *booking.MatchError
	if errors.As(err, &me) {
		utils.JSONError(c, http.StatusBadGateway, "Matching failed", me.Message)
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
}
