package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	appointmentHandler "github.com/floshq/flos-admin-api/internal/handler/appointment"
	attendanceHandler "github.com/floshq/flos-admin-api/internal/handler/attendance"
	authcodeHandler "github.com/floshq/flos-admin-api/internal/handler/authcode"
	bookingHandler "github.com/floshq/flos-admin-api/internal/handler/booking"
	clinicHandler "github.com/floshq/flos-admin-api/internal/handler/clinic"
	employeeHandler "github.com/floshq/flos-admin-api/internal/handler/employee"
	healthHandler "github.com/floshq/flos-admin-api/internal/handler/health"
	statsHandler "github.com/floshq/flos-admin-api/internal/handler/stats"
	"github.com/floshq/flos-admin-api/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health      *healthHandler.Handler
	Clinic      *clinicHandler.Handler
	Employee    *employeeHandler.Handler
	Attendance  *attendanceHandler.Handler
	Appointment *appointmentHandler.Handler
	AuthCode    *authcodeHandler.Handler
	Booking     *bookingHandler.Handler
	Stats       *statsHandler.Handler
}

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	CORSConfig    middleware.CORSConfig
	MetricsPrefix string
}

type Router struct {
	engine   *gin.Engine
	handlers Handlers
	config   Config
	metrics  *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(handlers Handlers, config Config) *Router {
	gin.SetMode(gin.ReleaseMode)
	middleware.RegisterValidations()

	engine := gin.New()

	r := &Router{
		engine:   engine,
		handlers: handlers,
		config:   config,
		metrics:  initRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.DefaultTimeoutConfig()),
		middleware.CORS(config.CORSConfig),
	)

	return r
}

// Setup mounts the full API surface under /api/v1.
func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.setupHealthCheck(api)

	// Public booking form, throttled per client.
	bookingLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  r.config.RateLimit,
		Burst: r.config.RateBurst,
	})
	public := api.Group("")
	public.Use(bookingLimiter.RateLimit())
	r.handlers.Booking.RegisterRoutes(public)

	// Super-admin console.
	admin := api.Group("/admin")
	{
		r.handlers.Stats.RegisterAdminRoutes(admin)
		r.handlers.Clinic.RegisterAdminRoutes(admin)
		r.handlers.AuthCode.RegisterAdminRoutes(admin)
		r.handlers.Attendance.RegisterAdminRoutes(admin)
		r.handlers.Appointment.RegisterAdminRoutes(admin)
	}

	// Per-clinic console.
	console := api.Group("/clinics/:clinicId")
	{
		r.handlers.Clinic.RegisterConsoleRoutes(console)
		r.handlers.Employee.RegisterConsoleRoutes(console)
		r.handlers.Attendance.RegisterConsoleRoutes(console)
		r.handlers.Appointment.RegisterConsoleRoutes(console)
	}
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.handlers.Health.LivenessCheck)
		health.GET("/ready", r.handlers.Health.ReadinessCheck)
		health.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
