package middleware

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/smartretail/internal/core/logger"
)

func levelForStatus(statusCode int) logger.LogLevel {
	switch {
	case statusCode >= 500:
		return logger.LogLevelError
	case statusCode >= 400:
		return logger.LogLevelWarn
	default:
		return logger.LogLevelInfo
	}
}

func logHTTPRequest(ctx context.Context, c *gin.Context, duration time.Duration, extra map[string]any) {
	attrs := map[string]any{
		"http.method":      c.Request.Method,
		"http.path":        c.Request.URL.Path,
		"http.route":       c.FullPath(),
		"http.status_code": c.Writer.Status(),
		"http.duration_ms": duration.Milliseconds(),
		"http.client_ip":   c.ClientIP(),
	}
	if id := GetRequestID(c); id != "" {
		attrs["http.request_id"] = id
	}
	for key, value := range extra {
		attrs[key] = value
	}

	var err error
	if last := c.Errors.Last(); last != nil {
		err = last.Err
	}

	logger.Log(ctx, logger.LogEntry{
		Level:      levelForStatus(c.Writer.Status()),
		Message:    "HTTP Request",
		Error:      err,
		Attributes: attrs,
	})
}

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

const maxResponseBodySize = 16 * 1024

// responseBodyWriter keeps a copy of the first bytes of the response so failed
// requests can be logged with the error body the client saw.
type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseBodyWriter) Write(b []byte) (int, error) {
	if w.body.Len()+len(b) <= maxResponseBodySize {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseBodyWriter) WriteString(s string) (int, error) {
	if w.body.Len()+len(s) <= maxResponseBodySize {
		w.body.WriteString(s)
	}
	return w.ResponseWriter.WriteString(s)
}

func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		buf := bufferPool.Get().(*bytes.Buffer)
		defer bufferPool.Put(buf)
		buf.Reset()
		bodyWriter := &responseBodyWriter{
			ResponseWriter: c.Writer,
			body:           buf,
		}
		c.Writer = bodyWriter

		c.Next()

		extra := map[string]any{}
		if c.Request.ContentLength > 0 {
			extra["http.request_size"] = c.Request.ContentLength
		}
		extra["http.response_size"] = c.Writer.Size()

		contentType := c.Writer.Header().Get("Content-Type")
		if c.Writer.Status() >= 400 && strings.Contains(contentType, "application/json") && buf.Len() > 0 {
			extra["http.response_body"] = buf.String()
		}

		logHTTPRequest(c.Request.Context(), c, time.Since(start), extra)
	}
}
