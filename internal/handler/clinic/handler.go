package clinic

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/floshq/flos-admin-api/internal/model"
	clinicService "github.com/floshq/flos-admin-api/internal/service/clinic"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
	"github.com/floshq/flos-admin-api/pkg/httputil"
)

type Handler struct {
	service clinicService.ClinicServicer
}

func NewHandler(service clinicService.ClinicServicer) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the super-admin clinic operations.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	clinics := r.Group("/clinics")
	{
		clinics.GET("", h.ListClinics)
		clinics.POST("", h.CreateClinic)
		clinics.PATCH("/:id/activation", h.ToggleActivation)
	}
}

// RegisterConsoleRoutes mounts the clinic console header lookup; r is the
// per-clinic group carrying the clinicId parameter.
func (h *Handler) RegisterConsoleRoutes(r *gin.RouterGroup) {
	r.GET("", h.GetClinic)
}

// ListClinics returns all clinics; ?active=true narrows to active ones,
// which is what the code-issuing and overview dropdowns ask for.
func (h *Handler) ListClinics(c *gin.Context) {
	var (
		clinics []*model.Clinic
		err     error
	)
	if c.Query("active") == "true" {
		clinics, err = h.service.ListActiveClinics(c.Request.Context())
	} else {
		clinics, err = h.service.ListClinics(c.Request.Context())
	}
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, clinics)
}

func (h *Handler) CreateClinic(c *gin.Context) {
	var req model.CreateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	clinic, err := h.service.CreateClinic(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, clinic)
}

func (h *Handler) ToggleActivation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid clinic ID", err))
		return
	}

	clinic, err := h.service.ToggleActivation(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, clinic)
}

func (h *Handler) GetClinic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("clinicId"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid clinic ID", err))
		return
	}

	clinic, err := h.service.GetClinic(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, clinic)
}
