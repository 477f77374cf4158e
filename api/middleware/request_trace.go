package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trend-studio/logger"
	"trend-studio/trace"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
)

// RequestTrace guarantees a request id and span id for every inbound request,
// stores them in the context and headers, and logs the completed request.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		// inbound logs carry span_id=0, outbound calls count up from 1
		ctxWithTrace := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctxWithTrace)
		req = c.Request

		currentSpan := trace.CurrentSpanID(ctxWithTrace)
		c.Request.Header.Set(headerRequestID, requestID)
		c.Request.Header.Set(headerSpanID, currentSpan)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, currentSpan)

		queryParams := map[string][]string{}
		for key, values := range req.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}
		var bodySnippet string
		if req.Body != nil && req.ContentLength != 0 &&
			(req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch || req.Method == http.MethodDelete) {
			if bodyBytes, err := io.ReadAll(req.Body); err == nil {
				if len(bodyBytes) > 0 {
					const maxBodyLog = 1024
					if len(bodyBytes) > maxBodyLog {
						bodySnippet = string(bodyBytes[:maxBodyLog])
					} else {
						bodySnippet = string(bodyBytes)
					}
				}
				c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			}
		}

		c.Next()

		status := c.Writer.Status()
		finalSpan := trace.CurrentSpanID(c.Request.Context())
		duration := time.Since(start)
		fields := logger.Fields{
			"method":       req.Method,
			"path":         req.URL.Path,
			"query_params": queryParams,
			"status":       status,
			"duration":     duration.String(),
			"request_id":   requestID,
			"span_id":      finalSpan,
		}
		if bodySnippet != "" {
			fields["body"] = bodySnippet
		}
		logger.InfoWithFields("completed request", fields)
	}
}
