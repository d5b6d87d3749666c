package cmds

import (
	"errors"
	"fmt"
	"time"

	"epgsync/internal/app/router"

	"github.com/spf13/cobra"
)

var httpConfig HttpConfig

type HttpConfig struct {
	Port     int           `json:"port"`
	Interval time.Duration `json:"interval"`
}

func NewServeCLI() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start an HTTP service that keeps the reconciled playlists refreshed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Refreshing too often hammers the playlist source
			if httpConfig.Interval < 15*time.Minute {
				return errors.New("interval cannot be less than 15 minutes")
			}

			// Create and run the HTTP service
			r, err := router.NewEngine(cmd.Context(), conf, httpConfig.Interval)
			if err != nil {
				return err
			}
			if err = r.Run(fmt.Sprintf(":%d", httpConfig.Port)); err != nil {
				return err
			}

			return nil
		},
	}

	serveCmd.Flags().IntVarP(&httpConfig.Port, "port", "p", 8080, "listen port of the HTTP service")
	serveCmd.Flags().DurationVarP(&httpConfig.Interval, "interval", "i", 24*time.Hour, "refresh interval for the cached playlists, e.g. 24h or 15m")

	return serveCmd
}
