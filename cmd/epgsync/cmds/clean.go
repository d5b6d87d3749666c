package cmds

import (
	"net/http"
	"os"
	"path"
	"time"

	"epgsync/internal/app/reconcile"
	"epgsync/internal/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const cleanFileName = "playlist_clean.m3u"

func NewCleanCLI() *cobra.Command {
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Resolve playlist channels through the curated override table and write a clean playlist.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// L(): the global logger
			logger := zap.L()

			// Validate the configuration
			if err := conf.Validate(); err != nil {
				return err
			}

			rec := reconcile.New(&http.Client{
				Timeout: 10 * time.Second,
			}, conf)

			// Run the override pass
			result, err := rec.Clean(cmd.Context())
			if err != nil {
				return err
			}

			// Create the output file in the configured directory
			outDir := conf.OutputDir
			if outDir == "" {
				if outDir, err = util.ExecutableDir(); err != nil {
					return err
				}
			}
			filePath := path.Join(outDir, cleanFileName)
			file, err := os.Create(filePath)
			if err != nil {
				logger.Error("Failed to create a file.", zap.Error(err))
				return err
			}
			defer file.Close()

			if _, err = file.WriteString(result.Playlist); err != nil {
				logger.Error("Failed to write to file.", zap.Error(err))
				return err
			}

			printCleanSummary(result)

			logger.Sugar().Infof("A total of %d channels have been processed (%d resolved, %d unresolved), written to the file %s.",
				len(result.Channels), len(result.Resolved), len(result.Unresolved), cleanFileName)

			return nil
		},
	}

	return cleanCmd
}
