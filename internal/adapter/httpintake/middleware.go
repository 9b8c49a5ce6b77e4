package httpintake

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"errsift/internal/report"
)

// Recovery captures panics raised while serving a request and reports them
// through the handler before answering 500. The classification path itself
// never panics, so a report here means a bug in the adapter or in gin.
func Recovery(h *report.Handler, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				}
				h.Capture(c.Request.Context(), report.Occurrence{
					Operation: "http " + c.Request.Method + " " + c.FullPath(),
					Err:       err,
					Stack:     string(debug.Stack()),
					Endpoint:  c.Request.URL.Path,
				})
				log.Error("request panic",
					slog.String("path", c.Request.URL.Path),
					slog.Any("error", err),
				)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
