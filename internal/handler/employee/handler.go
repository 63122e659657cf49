package employee

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	employeeService "github.com/floshq/flos-admin-api/internal/service/employee"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
	"github.com/floshq/flos-admin-api/pkg/httputil"
)

type Handler struct {
	service employeeService.EmployeeServicer
}

func NewHandler(service employeeService.EmployeeServicer) *Handler {
	return &Handler{service: service}
}

// RegisterConsoleRoutes mounts the roster under the per-clinic group.
func (h *Handler) RegisterConsoleRoutes(r *gin.RouterGroup) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.ListEmployees)
		employees.PATCH("/:id/activation", h.ToggleActivation)
	}
}

func (h *Handler) ListEmployees(c *gin.Context) {
	clinicID, err := uuid.Parse(c.Param("clinicId"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid clinic ID", err))
		return
	}

	employees, err := h.service.ListEmployees(c.Request.Context(), clinicID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, employees)
}

func (h *Handler) ToggleActivation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid employee ID", err))
		return
	}

	employee, err := h.service.ToggleActivation(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, employee)
}
