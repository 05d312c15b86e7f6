// Package api serves the scrape operations over HTTP.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pevans/mediascrape/facade"
	"github.com/pevans/mediascrape/logger"
)

// Server is the HTTP API over a facade.Service.
type Server struct {
	svc      *facade.Service
	metrics  *Metrics
	gatherer prometheus.Gatherer
	log      logger.Logger
	known    map[string]bool
}

// NewServer creates an API server. Metrics are registered on reg and served
// from it at /metrics; a nil reg gets a fresh registry.
func NewServer(svc *facade.Service, reg *prometheus.Registry, log logger.Logger) *Server {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if log == nil {
		log = logger.NewNop()
	}

	known := map[string]bool{}
	for _, site := range svc.Sites() {
		known[site.Name] = true
	}

	return &Server{
		svc:      svc,
		metrics:  NewMetrics(reg),
		gatherer: reg,
		log:      log,
		known:    known,
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SetupRouter configures the Gin router with all API routes.
func (s *Server) SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	// Add CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	v1.GET("/sites", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sites": s.svc.Sites()})
	})

	site := v1.Group("/sites/:site")
	site.GET("/home", s.handle(facade.OpHome, s.home))
	site.GET("/list", s.handle(facade.OpList, s.list))
	site.GET("/latest", s.handle(facade.OpLatest, s.latest))
	site.GET("/ongoing", s.handle(facade.OpOngoing, s.ongoing))
	site.GET("/search", s.handle(facade.OpSearch, s.search))
	site.GET("/genre/:slug", s.handle(facade.OpGenre, s.byGenre))
	site.GET("/country/:slug", s.handle(facade.OpCountry, s.byCountry))
	site.GET("/year/:year", s.handle(facade.OpYear, s.byYear))
	site.GET("/feature/:slug", s.handle(facade.OpFeature, s.byFeature))
	site.GET("/special/:slug", s.handle(facade.OpSpecial, s.special))
	site.GET("/detail/:slug", s.handle(facade.OpDetail, s.detail))
	site.GET("/series/:slug", s.handle(facade.OpSeries, s.series))
	site.GET("/anime/:slug", s.handle(facade.OpDetail, s.animeDetail))
	site.GET("/episode", s.handle(facade.OpEpisode, s.episode))
	site.GET("/genres", s.handle(facade.OpGenres, s.genres))
	site.GET("/feed", s.handle(facade.OpFeed, s.feed))

	return router
}

// scrapeFunc runs one operation for the site named in the path.
type scrapeFunc func(c *gin.Context, site string) (any, error)

// handle wraps a scrape with metrics, error mapping and the JSON response.
func (s *Server) handle(op string, run scrapeFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		site := c.Param("site")
		start := time.Now()

		result, err := run(c, site)

		s.metrics.observe(s.siteLabel(site), op, outcome(err), time.Since(start))
		if err != nil {
			s.writeError(c, op, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// siteLabel keeps the metric's site label bounded to registered sites.
func (s *Server) siteLabel(site string) string {
	name := strings.ToLower(strings.TrimSpace(site))
	if s.known[name] {
		return name
	}
	return "unknown"
}

func outcome(err error) string {
	var fetchErr *facade.FetchError
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, facade.ErrInvalidInput):
		return outcomeInvalid
	case errors.As(err, &fetchErr):
		return outcomeUpstream
	default:
		return outcomeError
	}
}

func (s *Server) writeError(c *gin.Context, op string, err error) {
	switch outcome(err) {
	case outcomeInvalid:
		c.JSON(http.StatusBadRequest, errorResponse("validation_error", err.Error()))
	case outcomeUpstream:
		s.log.Warn("Upstream fetch failed",
			logger.String("op", op),
			logger.String("site", c.Param("site")),
			logger.Error(err),
		)
		c.JSON(http.StatusBadGateway, errorResponse("upstream_error", err.Error()))
	default:
		s.log.Error("Scrape failed",
			logger.String("op", op),
			logger.String("site", c.Param("site")),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse("internal_error", "Failed to complete scrape"))
	}
}

func errorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// pageParam reads the optional page query parameter, defaulting to 1.
func pageParam(c *gin.Context) (int, error) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, invalidParam("page must be a positive integer")
	}
	return page, nil
}

func invalidParam(message string) error {
	return fmt.Errorf("%w: %s", facade.ErrInvalidInput, message)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.log.Debug("Request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
		)
	}
}
