package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
	"github.com/phukrit7171/appointment-booking-api/internal/httpresp"
	"github.com/phukrit7171/appointment-booking-api/internal/models"
	ucAppointment "github.com/phukrit7171/appointment-booking-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	remove *ucAppointment.DeleteAppointment
	query  *ucAppointment.QueryAppointments
	log    *zap.Logger
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	remove *ucAppointment.DeleteAppointment,
	query *ucAppointment.QueryAppointments,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		update: update,
		remove: remove,
		query:  query,
		log:    log,
	}
}

// --------- Requests ---------

type AppointmentRequest struct {
	ClientName      string           `json:"client_name"`
	ClientEmail     string           `json:"client_email"`
	AppointmentTime models.LocalTime `json:"appointment_time"`
	ServiceID       uint             `json:"service_id"`
}

func (r AppointmentRequest) input() ucAppointment.BookingInput {
	return ucAppointment.BookingInput{
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		AppointmentTime: r.AppointmentTime,
		ServiceID:       r.ServiceID,
	}
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.query.List(c.Request.Context())
	if err != nil {
		WriteError(c, h.log, err)
		return
	}

	httpresp.OK(c, "Appointments retrieved successfully", aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.query.GetByID(c.Request.Context(), id)
	if err != nil {
		WriteError(c, h.log, err)
		return
	}

	httpresp.OK(c, "Appointment retrieved successfully", ap)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), req.input())
	if err != nil {
		WriteError(c, h.log, err)
		return
	}

	httpresp.Created(c, "Appointment created successfully", ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, req.input())
	if err != nil {
		WriteError(c, h.log, err)
		return
	}

	httpresp.OK(c, "Appointment updated successfully", ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		WriteError(c, h.log, err)
		return
	}

	httpresp.OK(c, "Appointment deleted successfully", nil)
}
