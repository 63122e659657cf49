package attendance

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/floshq/flos-admin-api/internal/export"
	"github.com/floshq/flos-admin-api/internal/handler"
	"github.com/floshq/flos-admin-api/internal/model"
	attendanceService "github.com/floshq/flos-admin-api/internal/service/attendance"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
	"github.com/floshq/flos-admin-api/pkg/httputil"
)

type Handler struct {
	service attendanceService.AttendanceServicer
}

func NewHandler(service attendanceService.AttendanceServicer) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the cross-clinic attendance overview.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("", h.ListRecords)
		attendance.GET("/export", h.ExportRecords)
	}
}

// RegisterConsoleRoutes mounts the clinic-scoped log under the per-clinic
// group; the clinic constraint comes from the path, not the query.
func (h *Handler) RegisterConsoleRoutes(r *gin.RouterGroup) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("", h.ListRecords)
		attendance.GET("/export", h.ExportRecords)
	}
}

type listQuery struct {
	ClinicID string `form:"clinic_id" binding:"omitempty,uuid"`
	model.DateRange
}

func (h *Handler) bindFilters(c *gin.Context) (*model.AttendanceFilters, error) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	filters := &model.AttendanceFilters{DateRange: q.DateRange}

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

func (h *Handler) ListRecords(c *gin.Context) {
	filters, err := h.bindFilters(c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	records, err := h.service.ListRecords(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, records)
}

func (h *Handler) ExportRecords(c *gin.Context) {
	filters, err := h.bindFilters(c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	records, err := h.service.ListRecords(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	handler.ServeSheet(c, export.Filename("打卡記錄", time.Now()), export.AttendanceSheet(records))
}
