package booking

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/floshq/flos-admin-api/internal/model"
	bookingService "github.com/floshq/flos-admin-api/internal/service/booking"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
	"github.com/floshq/flos-admin-api/pkg/httputil"
)

// Handler serves the public booking form. These routes are unauthenticated
// and expose only what the form needs.
type Handler struct {
	service bookingService.BookingServicer
}

func NewHandler(service bookingService.BookingServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	booking := r.Group("/booking/:clinicId")
	{
		booking.GET("", h.GetClinic)
		booking.POST("", h.SubmitBooking)
	}
}

// clinicView is the public projection of a clinic. Admin codes and channel
// bindings never leave the form endpoint.
type clinicView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (h *Handler) GetClinic(c *gin.Context) {
	clinicID, err := uuid.Parse(c.Param("clinicId"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NotFound("clinic", err))
		return
	}

	clinic, err := h.service.GetClinic(c.Request.Context(), clinicID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, clinicView{ID: clinic.ID, Name: clinic.Name})
}

func (h *Handler) SubmitBooking(c *gin.Context) {
	clinicID, err := uuid.Parse(c.Param("clinicId"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NotFound("clinic", err))
		return
	}

	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	apt, err := h.service.Submit(c.Request.Context(), clinicID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, apt)
}
