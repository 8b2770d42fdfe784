package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
	"github.com/phukrit7171/appointment-booking-api/internal/httpresp"
	ucService "github.com/phukrit7171/appointment-booking-api/internal/usecase/service"
)

type ServiceHandler struct {
	create *ucService.CreateService
	update *ucService.UpdateService
	remove *ucService.DeleteService
	query  *ucService.QueryServices
	log    *zap.Logger
}

func NewServiceHandler(
	create *ucService.CreateService,
	update *ucService.UpdateService,
	remove *ucService.DeleteService,
	query *ucService.QueryServices,
	log *zap.Logger,
) *ServiceHandler {
	return &ServiceHandler{
		create: create,
		update: update,
		remove: remove,
		query:  query,
		log:    log,
	}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name                   string `json:"name"`
	Description            string `json:"description"`
	DefaultDurationMinutes int    `json:"default_duration_minutes"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.query.List(c.Request.Context())
	if err != nil {
		WriteError(c, h.log, err)
		return
	}

	httpresp.OK(c, "Services retrieved successfully", services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	svc, err := h.query.GetByID(c.Request.Context(), id)
	if err != nil {
		WriteError(c, h.log, err)
		return
	}

	httpresp.OK(c, "Service retrieved successfully", svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), ucService.ServiceInput{
		Name:                   req.Name,
		Description:            req.Description,
		DefaultDurationMinutes: req.DefaultDurationMinutes,
	})
	if err != nil {
		WriteError(c, h.log, err)
		return
	}

	httpresp.Created(c, "Service created successfully", svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), id, ucService.ServiceInput{
		Name:                   req.Name,
		Description:            req.Description,
		DefaultDurationMinutes: req.DefaultDurationMinutes,
	})
	if err != nil {
		WriteError(c, h.log, err)
		return
	}

	httpresp.OK(c, "Service updated successfully", svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		WriteError(c, h.log, err)
		return
	}

	httpresp.OK(c, "Service deleted successfully", nil)
}
