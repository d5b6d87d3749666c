package router

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"epgsync/internal/app/config"
	"epgsync/internal/app/metrics"
	"epgsync/internal/app/reconcile"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	epgFilePath string
)

func NewEngine(ctx context.Context, conf *config.Config, interval time.Duration) (*gin.Engine, error) {
	// L(): the global logger
	logger = zap.L()

	gin.SetMode(gin.ReleaseMode)

	// Validate the configuration
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	rec := reconcile.New(&http.Client{
		Timeout: 10 * time.Second,
	}, conf)

	// Build the initial playlist caches; a failure here is fatal
	if err := updatePlaylists(ctx, rec); err != nil {
		return nil, err
	}

	// Refresh on a schedule
	Schedule(ctx, rec, interval)

	// Cache the catalog location for the EPG endpoint
	epgFilePath = conf.EpgFile

	r := gin.New()

	// Request logging and panic recovery
	r.Use(ginzap.Ginzap(logger, "", false))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(countRequests())

	// Corrected playlist (fuzzy pass)
	r.GET("/playlist/m3u", GetFixedPlaylist)
	// Clean playlist (override pass)
	r.GET("/playlist/clean", GetCleanPlaylist)
	// The XMLTV catalog the identifiers were resolved against
	r.GET("/epg/xml", GetEPGXML)
	// Prometheus collectors
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r, nil
}

// countRequests feeds the HTTP request counter after each request.
func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.RecordHTTPRequest(c.FullPath(), strconv.Itoa(c.Writer.Status()))
	}
}
