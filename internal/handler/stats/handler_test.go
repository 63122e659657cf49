package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floshq/flos-admin-api/internal/model"
)

type fakeService struct{}

func (f *fakeService) Dashboard(_ context.Context) (*model.DashboardStats, error) {
	return &model.DashboardStats{
		TotalClinics:        2,
		TotalEmployees:      9,
		TodayAttendance:     5,
		PendingAppointments: 3,
	}, nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(&fakeService{}).RegisterAdminRoutes(engine.Group("/api/v1/admin"))
	return engine
}

func TestDashboard(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Data    model.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(2), resp.Data.TotalClinics)
	assert.Equal(t, int64(3), resp.Data.PendingAppointments)
}

func TestStatisticsNotImplemented(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/statistics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Contains(t, w.Body.String(), "統計分析功能開發中")
}
