package router

import (
	"context"
	"net/http"
	"sync/atomic"

	"epgsync/internal/app/metrics"
	"epgsync/internal/app/reconcile"

	"github.com/gin-gonic/gin"
)

var (
	// Cached rendered playlists, refreshed by the scheduler
	fixedPtr atomic.Pointer[string]
	cleanPtr atomic.Pointer[string]
)

// GetFixedPlaylist serves the corrected playlist from the fuzzy pass.
func GetFixedPlaylist(c *gin.Context) {
	content := fixedPtr.Load()
	if content == nil || *content == "" {
		c.Status(http.StatusNotFound)
		return
	}
	c.String(http.StatusOK, *content)
}

// GetCleanPlaylist serves the clean playlist from the override pass.
func GetCleanPlaylist(c *gin.Context) {
	content := cleanPtr.Load()
	if content == nil || *content == "" {
		c.Status(http.StatusNotFound)
		return
	}
	c.String(http.StatusOK, *content)
}

// GetEPGXML serves the XMLTV catalog the playlists were resolved against.
func GetEPGXML(c *gin.Context) {
	if epgFilePath == "" {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(epgFilePath)
}

// updatePlaylists re-runs both passes and replaces the cached playlists.
func updatePlaylists(ctx context.Context, rec *reconcile.Reconciler) error {
	fixRes, err := rec.Fix(ctx)
	if err != nil {
		return err
	}
	cleanRes, err := rec.Clean(ctx)
	if err != nil {
		return err
	}

	fixedPtr.Store(&fixRes.Playlist)
	cleanPtr.Store(&cleanRes.Playlist)

	metrics.SetMatchCounts(len(fixRes.Channels), len(fixRes.Matches), len(fixRes.Unmatched))
	metrics.SetResolvedCount(len(cleanRes.Resolved))

	logger.Sugar().Infof("Playlists updated, channels: %d, matched: %d, unmatched: %d, resolved: %d.",
		len(fixRes.Channels), len(fixRes.Matches), len(fixRes.Unmatched), len(cleanRes.Resolved))
	return nil
}
