package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderXRequestID carries the request ID to and from clients.
	HeaderXRequestID = "X-Request-ID"

	// ContextRequestID is the gin context key the logging and error
	// middleware read the ID back from.
	ContextRequestID = "request_id"
)

// RequestID tags every request with an ID. A caller-supplied header is
// honored so traces can span whatever sits in front of the consoles.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(ContextRequestID, id)
		c.Header(HeaderXRequestID, id)
		c.Next()
	}
}
