package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floshq/flos-admin-api/internal/model"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
)

type fakeService struct {
	clinic *model.Clinic
}

func (f *fakeService) GetClinic(_ context.Context, clinicID uuid.UUID) (*model.Clinic, error) {
	if f.clinic == nil || f.clinic.ID != clinicID {
		return nil, apperrors.NotFound("clinic", nil)
	}
	return f.clinic, nil
}

func (f *fakeService) Submit(ctx context.Context, clinicID uuid.UUID, req *model.BookingRequest) (*model.Appointment, error) {
	if _, err := f.GetClinic(ctx, clinicID); err != nil {
		return nil, err
	}
	return &model.Appointment{
		ID:              uuid.New(),
		ClinicID:        clinicID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Treatment:       req.Treatment,
		Status:          model.AppointmentStatusPending,
	}, nil
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestGetClinicPublicView(t *testing.T) {
	clinic := &model.Clinic{
		ID:        uuid.New(),
		Name:      "仁愛診所",
		AdminCode: "ADMIN-SECRET01",
	}
	router := setupRouter(&fakeService{clinic: clinic})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking/"+clinic.ID.String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "仁愛診所", resp.Data["name"])

	// The admin code must never reach the public form.
	assert.NotContains(t, resp.Data, "admin_code")
	assert.NotContains(t, w.Body.String(), "ADMIN-SECRET01")
}

func TestGetClinicMalformedID(t *testing.T) {
	router := setupRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitBooking(t *testing.T) {
	clinic := &model.Clinic{ID: uuid.New(), Name: "仁愛診所"}
	router := setupRouter(&fakeService{clinic: clinic})

	body, _ := json.Marshal(map[string]string{
		"customer_name":    "王小明",
		"customer_phone":   "0912345678",
		"appointment_date": "2024-04-01",
		"appointment_time": "14:30",
		"treatment":        "洗牙",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking/"+clinic.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(model.AppointmentStatusPending), resp.Data["status"])
}

func TestSubmitBookingValidation(t *testing.T) {
	clinic := &model.Clinic{ID: uuid.New(), Name: "仁愛診所"}
	router := setupRouter(&fakeService{clinic: clinic})

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing customer name", map[string]string{
			"customer_phone":   "0912345678",
			"appointment_date": "2024-04-01",
			"appointment_time": "14:30",
			"treatment":        "洗牙",
		}},
		{"bad date format", map[string]string{
			"customer_name":    "王小明",
			"customer_phone":   "0912345678",
			"appointment_date": "04/01/2024",
			"appointment_time": "14:30",
			"treatment":        "洗牙",
		}},
		{"bad time format", map[string]string{
			"customer_name":    "王小明",
			"customer_phone":   "0912345678",
			"appointment_date": "2024-04-01",
			"appointment_time": "2pm",
			"treatment":        "洗牙",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/booking/"+clinic.ID.String(), bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitBookingUnknownClinic(t *testing.T) {
	router := setupRouter(&fakeService{})

	body, _ := json.Marshal(map[string]string{
		"customer_name":    "王小明",
		"customer_phone":   "0912345678",
		"appointment_date": "2024-04-01",
		"appointment_time": "14:30",
		"treatment":        "洗牙",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking/"+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
