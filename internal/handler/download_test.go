package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/floshq/flos-admin-api/internal/export"
)

func TestServeSheet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/export", nil)

	ServeSheet(c, "打卡記錄_2024-03-18.xlsx", export.Sheet{
		Name:    "打卡記錄",
		Headers: []string{"診所"},
		Rows:    [][]interface{}{{"仁愛診所"}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t,
		"attachment; filename*=UTF-8''%E6%89%93%E5%8D%A1%E8%A8%98%E9%8C%84_2024-03-18.xlsx",
		w.Header().Get("Content-Disposition"))

	// The body must reopen as a workbook with the header and data rows.
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("打卡記錄")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"診所"}, {"仁愛診所"}}, rows)
}
