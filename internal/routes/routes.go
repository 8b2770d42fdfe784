package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/phukrit7171/appointment-booking-api/internal/audit"
	"github.com/phukrit7171/appointment-booking-api/internal/cache"
	"github.com/phukrit7171/appointment-booking-api/internal/config"
	"github.com/phukrit7171/appointment-booking-api/internal/domain/booking"
	"github.com/phukrit7171/appointment-booking-api/internal/handlers"
	infraRepo "github.com/phukrit7171/appointment-booking-api/internal/infra/repository"
	ucAppointment "github.com/phukrit7171/appointment-booking-api/internal/usecase/appointment"
	ucService "github.com/phukrit7171/appointment-booking-api/internal/usecase/service"
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// engine. rdb may be nil when redis is unreachable; the service read path
// then goes straight to the database.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ------------------------------
	// Infra
	// ------------------------------
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	var serviceCache *cache.ServiceCache
	if rdb != nil {
		serviceCache = cache.NewServiceCache(rdb, cfg.ServiceCacheTTL, log)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	clock := booking.SystemClock{}

	// ------------------------------
	// Use cases — services
	// ------------------------------
	createServiceUC := ucService.NewCreateService(serviceRepo, serviceCache, auditDispatcher)
	updateServiceUC := ucService.NewUpdateService(serviceRepo, serviceCache, auditDispatcher)
	deleteServiceUC := ucService.NewDeleteService(serviceRepo, appointmentRepo, serviceCache, auditDispatcher)
	queryServicesUC := ucService.NewQueryServices(serviceRepo, serviceCache)

	// ------------------------------
	// Use cases — appointments
	// ------------------------------
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, serviceRepo, clock, auditDispatcher)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, serviceRepo, clock, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	queryAppointmentsUC := ucAppointment.NewQueryAppointments(appointmentRepo)

	// ------------------------------
	// Handlers
	// ------------------------------
	serviceHandler := handlers.NewServiceHandler(
		createServiceUC,
		updateServiceUC,
		deleteServiceUC,
		queryServicesUC,
		log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		queryAppointmentsUC,
		log,
	)

	// ------------------------------
	// API (JSON)
	// ------------------------------
	api := r.Group("/api")
	{
		services := api.Group("/services")
		{
			services.GET("", serviceHandler.List)
			services.POST("", serviceHandler.Create)
			services.GET("/:id", serviceHandler.Get)
			services.PUT("/:id", serviceHandler.Update)
			services.DELETE("/:id", serviceHandler.Delete)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.List)
			appointments.POST("", appointmentHandler.Create)
			appointments.GET("/:id", appointmentHandler.Get)
			appointments.PUT("/:id", appointmentHandler.Update)
			appointments.DELETE("/:id", appointmentHandler.Delete)
		}
	}
}
