package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/config"
	"github.com/carelinehq/clinic-records/internal/handlers"
	infraRepo "github.com/carelinehq/clinic-records/internal/infra/repository"
	"github.com/carelinehq/clinic-records/internal/middleware"
	"github.com/carelinehq/clinic-records/internal/service"
	"github.com/carelinehq/clinic-records/internal/token"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, denylist token.Denylist) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	engine := authz.NewEngine()

	patientRepo := infraRepo.NewPatientGormRepository(db)
	doctorRepo := infraRepo.NewDoctorGormRepository(db)
	pharmacyRepo := infraRepo.NewPharmacyGormRepository(db)
	recordRepo := infraRepo.NewMedicalRecordGormRepository(db)
	prescriptionRepo := infraRepo.NewPrescriptionGormRepository(db)

	// ======================================================
	// SERVICES
	// ======================================================
	patientService := service.NewPatientService(engine, patientRepo)
	doctorService := service.NewDoctorService(engine, doctorRepo)
	pharmacyService := service.NewPharmacyService(engine, pharmacyRepo)
	recordService := service.NewMedicalRecordService(engine, recordRepo)
	prescriptionService := service.NewPrescriptionService(engine, prescriptionRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, denylist)
	meHandler := handlers.NewMeHandler(db)

	patientHandler := handlers.NewPatientHandler(patientService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	pharmacyHandler := handlers.NewPharmacyHandler(pharmacyService)
	recordHandler := handlers.NewMedicalRecordHandler(recordService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/patients", patientHandler.List)
			secured.GET("/patients/:id", patientHandler.Get)
			secured.POST("/patients", patientHandler.Create)
			secured.PUT("/patients/:id", patientHandler.Update)
			secured.DELETE("/patients/:id", patientHandler.Delete)

			secured.GET("/doctors", doctorHandler.List)
			secured.GET("/doctors/:id", doctorHandler.Get)
			secured.POST("/doctors", doctorHandler.Create)
			secured.PUT("/doctors/:id", doctorHandler.Update)
			secured.DELETE("/doctors/:id", doctorHandler.Delete)

			secured.GET("/pharmacies", pharmacyHandler.List)
			secured.GET("/pharmacies/:id", pharmacyHandler.Get)
			secured.POST("/pharmacies", pharmacyHandler.Create)
			secured.PUT("/pharmacies/:id", pharmacyHandler.Update)
			secured.DELETE("/pharmacies/:id", pharmacyHandler.Delete)

			secured.GET("/medical-records", recordHandler.List)
			secured.GET("/medical-records/:id", recordHandler.Get)
			secured.POST("/medical-records", recordHandler.Create)
			secured.PUT("/medical-records/:id", recordHandler.Update)
			secured.DELETE("/medical-records/:id", recordHandler.Delete)

			secured.GET("/prescriptions", prescriptionHandler.List)
			secured.GET("/prescriptions/:id", prescriptionHandler.Get)
			secured.POST("/prescriptions", prescriptionHandler.Create)
			secured.PUT("/prescriptions/:id", prescriptionHandler.Update)
			secured.DELETE("/prescriptions/:id", prescriptionHandler.Delete)
		}
	}
}
