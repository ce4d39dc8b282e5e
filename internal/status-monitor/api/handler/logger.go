package handler

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Query parameters copied onto error lines.
var loggedQueryParams = []string{"service", "days", "status", "limit"}

type Logger interface {
	LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level)
}

type logger struct {
	log *zap.Logger
}

func (l *logger) LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	fields := []zapcore.Field{
		zap.Error(err),
		zap.String("http_method", c.Request.Method),
		zap.String("http_path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	}
	if route := c.FullPath(); route != "" {
		fields = append(fields, zap.String("http_route", route))
	}
	fields = append(fields, requestTargetFields(c)...)
	l.log.Log(logLevel, errDescription, fields...)
}

// requestTargetFields names the service, incident or maintenance window a request is about.
func requestTargetFields(c *gin.Context) []zapcore.Field {
	var fields []zapcore.Field
	if id := c.Param("serviceId"); id != "" {
		fields = append(fields, zap.String("service_id", id))
	}
	if id := c.Param("id"); id != "" {
		fields = append(fields, zap.String(resourceIDKey(c.FullPath(), c.Request.URL.Path), id))
	}
	query := c.Request.URL.Query()
	for _, key := range loggedQueryParams {
		if v := query.Get(key); v != "" {
			fields = append(fields, zap.String("query_"+key, v))
		}
	}
	return fields
}

func resourceIDKey(route, path string) string {
	target := route
	if target == "" {
		target = path
	}
	segments := strings.Split(target, "/")
	switch {
	case slices.Contains(segments, "incidents"):
		return "incident_id"
	case slices.Contains(segments, "maintenance"):
		return "maintenance_id"
	default:
		return "service_id"
	}
}
