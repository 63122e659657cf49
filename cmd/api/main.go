package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/floshq/flos-admin-api/internal/config"
	appointmentHandler "github.com/floshq/flos-admin-api/internal/handler/appointment"
	attendanceHandler "github.com/floshq/flos-admin-api/internal/handler/attendance"
	authcodeHandler "github.com/floshq/flos-admin-api/internal/handler/authcode"
	bookingHandler "github.com/floshq/flos-admin-api/internal/handler/booking"
	clinicHandler "github.com/floshq/flos-admin-api/internal/handler/clinic"
	employeeHandler "github.com/floshq/flos-admin-api/internal/handler/employee"
	healthHandler "github.com/floshq/flos-admin-api/internal/handler/health"
	statsHandler "github.com/floshq/flos-admin-api/internal/handler/stats"
	"github.com/floshq/flos-admin-api/internal/middleware"
	"github.com/floshq/flos-admin-api/internal/repository/postgres"
	"github.com/floshq/flos-admin-api/internal/router"
	appointmentService "github.com/floshq/flos-admin-api/internal/service/appointment"
	attendanceService "github.com/floshq/flos-admin-api/internal/service/attendance"
	authcodeService "github.com/floshq/flos-admin-api/internal/service/authcode"
	bookingService "github.com/floshq/flos-admin-api/internal/service/booking"
	clinicService "github.com/floshq/flos-admin-api/internal/service/clinic"
	employeeService "github.com/floshq/flos-admin-api/internal/service/employee"
	statsService "github.com/floshq/flos-admin-api/internal/service/stats"
	"github.com/floshq/flos-admin-api/pkg/logger"
)

func main() {
	logger.Setup(nil)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize repositories
	clinicRepo := postgres.NewClinicRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	authCodeRepo := postgres.NewAuthCodeRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// Initialize services
	clinicSvc := clinicService.NewService(clinicRepo)
	employeeSvc := employeeService.NewService(employeeRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	authCodeSvc := authcodeService.NewService(authCodeRepo)
	bookingSvc := bookingService.NewService(clinicRepo, appointmentRepo)
	statsSvc := statsService.NewService(statsRepo)

	// Setup router
	r := router.NewRouter(router.Handlers{
		Health:      healthHandler.NewHandler(db),
		Clinic:      clinicHandler.NewHandler(clinicSvc),
		Employee:    employeeHandler.NewHandler(employeeSvc),
		Attendance:  attendanceHandler.NewHandler(attendanceSvc),
		Appointment: appointmentHandler.NewHandler(appointmentSvc),
		AuthCode:    authcodeHandler.NewHandler(authCodeSvc),
		Booking:     bookingHandler.NewHandler(bookingSvc),
		Stats:       statsHandler.NewHandler(statsSvc),
	}, router.Config{
		RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:     cfg.RateLimit.Burst,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "flos_admin_api",
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
