package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/pkg/apperror"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

const (
	HeaderXRequestID       = "X-Request-ID"
	GinContextKeyRequestID = "requestID"

	maxRequestIDLength = 128
)

// isValidRequestID accepts printable ASCII only, so the id is safe to log.
func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxRequestIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x20 || id[i] > 0x7E {
			return false
		}
	}
	return true
}

// RequestID reuses a valid incoming X-Request-ID or generates a UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderXRequestID)
		if !isValidRequestID(reqID) {
			reqID = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, reqID)
		c.Header(HeaderXRequestID, reqID)
		c.Next()
	}
}

func requestLogger(c *gin.Context, log logger.Logger) logger.Logger {
	return log.With(zap.String("request_id", c.GetString(GinContextKeyRequestID)))
}

func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			requestLogger(c, log).Warn("Request failed", fields...)
			return
		}
		requestLogger(c, log).Info("Request handled", fields...)
	}
}

// Recovery turns a panic into an internal error for ErrorMiddleware to render.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		requestLogger(c, log).Error("Recovered from panic", err, zap.String("path", c.Request.URL.Path))
		_ = c.Error(apperror.NewInternal("unexpected failure while handling request", err))
		c.Abort()
	})
}

// ErrorMiddleware renders the last error attached to the context: JSON under
// /api, an HTML error page everywhere else.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		reqLog := requestLogger(c, log)
		if status >= http.StatusInternalServerError {
			reqLog.Error("Request error", err, zap.String("path", c.Request.URL.Path))
		} else {
			reqLog.Info("Request rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}

		if c.Writer.Written() {
			return
		}

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}

		if isAPIRequest(c) {
			c.JSON(status, appErr.ToJSON())
			return
		}
		c.HTML(status, "error.html", errorView{
			pageView: newPageView(c, nil, ""),
			Status:   status,
			Message:  appErr.Message,
		})
	}
}

func isAPIRequest(c *gin.Context) bool {
	p := c.Request.URL.Path
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

// SecurityHeaders sets response hardening headers on every response.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", "frame-ancestors 'none'")
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		h.Set(
			"Permissions-Policy",
			"accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()",
		)
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		c.Next()
	}
}
