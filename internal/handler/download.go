// Package handler holds pieces shared by the per-domain handler packages.
package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/floshq/flos-admin-api/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ServeSheet streams a workbook as an attachment download. The filename
// goes out RFC 5987 encoded because the export names are localized.
func ServeSheet(c *gin.Context, filename string, sheet export.Sheet) {
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Status(http.StatusOK)

	if err := export.WriteXLSX(c.Writer, sheet); err != nil {
		// Headers are already out; record for the logger only.
		_ = c.Error(err)
	}
}
