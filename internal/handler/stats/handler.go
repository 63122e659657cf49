package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	statsService "github.com/floshq/flos-admin-api/internal/service/stats"
	"github.com/floshq/flos-admin-api/pkg/httputil"
)

type Handler struct {
	service statsService.StatsServicer
}

func NewHandler(service statsService.StatsServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Dashboard)
	r.GET("/statistics", h.Statistics)
}

func (h *Handler) Dashboard(c *gin.Context) {
	dashboard, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, dashboard)
}

// Statistics is a placeholder: the analytics page exists in the console
// but reporting has not shipped yet.
func (h *Handler) Statistics(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, httputil.Response{
		Success: false,
		Error: &httputil.Error{
			Code:    http.StatusNotImplemented,
			Message: "統計分析功能開發中",
		},
	})
}
