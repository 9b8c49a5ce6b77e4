// Package httpintake exposes the classification entry point over HTTP.
// Client applications post rendered error occurrences; the adapter translates
// them into the Occurrence shape and forwards to the report handler. It is
// glue only: no classification logic lives here.
package httpintake

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"errsift/internal/classify"
	"errsift/internal/report"
)

// errorReport is the intake payload for one error occurrence.
type errorReport struct {
	Operation   string         `json:"operation" binding:"required"`
	Message     string         `json:"message" binding:"required"`
	StackTrace  string         `json:"stack_trace"`
	Endpoint    string         `json:"endpoint"`
	DataType    string         `json:"data_type"`
	RawPayload  string         `json:"raw_payload"`
	ContextHint string         `json:"context_hint"`
	Context     map[string]any `json:"context"`
	Severity    string         `json:"severity" binding:"omitempty,oneof=low medium high critical"`
}

// breadcrumbReport is the intake payload for one breadcrumb.
type breadcrumbReport struct {
	Kind    string `json:"kind" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// NewRouter builds the intake HTTP surface: error and breadcrumb intake,
// health and Prometheus metrics.
func NewRouter(h *report.Handler, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(h, log))

	r.POST("/v1/errors", postError(h))
	r.POST("/v1/breadcrumbs", postBreadcrumb(h))
	r.GET("/healthz", health(h))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func postError(h *report.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in errorReport
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Capture(c.Request.Context(), toOccurrence(in))
		c.Status(http.StatusAccepted)
	}
}

func postBreadcrumb(h *report.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in breadcrumbReport
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Breadcrumb(c.Request.Context(), in.Kind, in.Message)
		c.Status(http.StatusAccepted)
	}
}

func health(h *report.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sink_ready": h.Ready()})
	}
}

// toOccurrence translates an intake payload into the core's occurrence shape.
func toOccurrence(in errorReport) report.Occurrence {
	occ := report.Occurrence{
		Operation:   in.Operation,
		Message:     in.Message,
		Stack:       in.StackTrace,
		Endpoint:    in.Endpoint,
		DataType:    in.DataType,
		RawPayload:  in.RawPayload,
		ContextHint: in.ContextHint,
		Context:     in.Context,
	}
	if in.Severity != "" {
		if sev, ok := classify.ParseSeverity(in.Severity); ok {
			occ.Severity = &sev
		}
	}
	return occ
}
