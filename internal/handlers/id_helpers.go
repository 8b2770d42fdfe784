package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
)

// parseID reads the :id path parameter; a non-numeric value is a 400 and
// the second return is false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid ID.")
		return 0, false
	}
	return uint(id), true
}
