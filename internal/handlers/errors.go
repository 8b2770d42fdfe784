package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
)

// WriteError maps a use-case failure to its transport response: business
// rule rejections become 400/404/409, anything else is an opaque 500.
func WriteError(c *gin.Context, log *zap.Logger, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch be.Code {
	case httperr.CodeValidation:
		msg := "Validation failed."
		if be.Detail != "" {
			msg = "Validation failed: " + be.Detail + "."
		}
		httperr.BadRequest(c, be.Code, msg)

	case httperr.CodeInvalidDateTime:
		httperr.BadRequest(c, be.Code, "Appointment time must be in the future.")

	case httperr.CodeServiceNotFound:
		httperr.NotFound(c, be.Code, "Service not found.")

	case httperr.CodeAppointmentNotFound:
		httperr.NotFound(c, be.Code, "Appointment not found.")

	case httperr.CodeDoubleBooking:
		httperr.Conflict(c, be.Code, "The requested time slot conflicts with an existing appointment.")

	case httperr.CodeDependentRecords:
		httperr.Conflict(c, be.Code, "Cannot delete service with existing appointments.")

	default:
		log.Error("unmapped business error",
			zap.String("code", be.Code),
		)
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
