package appointment

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/floshq/flos-admin-api/internal/export"
	"github.com/floshq/flos-admin-api/internal/handler"
	"github.com/floshq/flos-admin-api/internal/model"
	appointmentService "github.com/floshq/flos-admin-api/internal/service/appointment"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
	"github.com/floshq/flos-admin-api/pkg/httputil"
)

type Handler struct {
	service appointmentService.AppointmentServicer
}

func NewHandler(service appointmentService.AppointmentServicer) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the cross-clinic appointment overview.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/export", h.ExportAppointments)
	}
}

// RegisterConsoleRoutes mounts appointment management under the per-clinic
// group.
func (h *Handler) RegisterConsoleRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/export", h.ExportAppointments)
		appointments.PATCH("/:id/status", h.UpdateStatus)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

type listQuery struct {
	ClinicID string `form:"clinic_id" binding:"omitempty,uuid"`
	Status   string `form:"status"`
	model.DateRange
}

func (h *Handler) bindFilters(c *gin.Context) (*model.AppointmentFilters, error) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	filters := &model.AppointmentFilters{
		Status:    model.AppointmentStatus(q.Status),
		DateRange: q.DateRange,
	}

	// Path clinic wins over the query parameter.
	if raw := c.Param("clinicId"); raw != "" {
		clinicID, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperrors.BadRequest("invalid clinic ID", err)
		}
		filters.ClinicID = &clinicID
	} else if q.ClinicID != "" {
		clinicID, err := uuid.Parse(q.ClinicID)
		if err != nil {
			return nil, apperrors.BadRequest("invalid clinic ID", err)
		}
		filters.ClinicID = &clinicID
	}
	return filters, nil
}

func (h *Handler) ListAppointments(c *gin.Context) {
	filters, err := h.bindFilters(c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appointments)
}

func (h *Handler) ExportAppointments(c *gin.Context) {
	filters, err := h.bindFilters(c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	handler.ServeSheet(c, export.Filename("預約記錄", time.Now()), export.AppointmentsSheet(appointments))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid appointment ID", err))
		return
	}

	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	apt, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, apt)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid appointment ID", err))
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"deleted": true})
}
