package api

import (
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jward/catalog"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RouterOptions toggles optional endpoints.
type RouterOptions struct {
	Pprof bool
}

// NewRouter wires every route onto a fresh gin engine. Set the gin mode
// before calling it.
func NewRouter(q *catalog.QueryBuilder, logger *logrus.Logger, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), gin.Recovery())
	if opts.Pprof {
		pprof.Register(r)
	}

	h := NewHandler(q, logger)
	r.GET("/api/search.json", h.Search)
	r.GET("/api/casinos", h.Casinos)
	r.GET("/api/casinos/top", h.TopCasinos)
	r.GET("/api/casinos/:id", h.Casino)
	r.GET("/api/slots/:slug", h.Slot)
	r.GET("/api/banking/:id", h.Banking)
	r.GET("/api/providers", h.Providers)
	return r
}

// RequestID reuses the caller's X-Request-ID or assigns a new UUID, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog logs one line per request at Info.
func AccessLog(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start),
		}).Info("http request")
	}
}
