package authcode

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/floshq/flos-admin-api/internal/model"
	authcodeService "github.com/floshq/flos-admin-api/internal/service/authcode"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
	"github.com/floshq/flos-admin-api/pkg/httputil"
)

type Handler struct {
	service authcodeService.AuthCodeServicer
}

func NewHandler(service authcodeService.AuthCodeServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	codes := r.Group("/auth-codes")
	{
		codes.GET("", h.ListCodes)
		codes.POST("", h.IssueCode)
	}
}

// codeView decorates a stored code with its derived display state.
type codeView struct {
	*model.AuthCode
	State model.AuthCodeState `json:"state"`
}

func (h *Handler) ListCodes(c *gin.Context) {
	codes, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	now := time.Now()
	views := make([]codeView, 0, len(codes))
	for _, code := range codes {
		views = append(views, codeView{AuthCode: code, State: code.DisplayState(now)})
	}
	httputil.RespondWithSuccess(c, views)
}

func (h *Handler) IssueCode(c *gin.Context) {
	var req model.IssueAuthCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	code, err := h.service.Issue(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, codeView{AuthCode: code, State: code.DisplayState(time.Now())})
}
