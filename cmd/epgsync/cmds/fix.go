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

const fixedFileName = "playlist_fixed.m3u"

func NewFixCLI() *cobra.Command {
	fixCmd := &cobra.Command{
		Use:   "fix",
		Short: "Fuzzy-match playlist channels against the EPG catalog and write a corrected playlist.",
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

			// Run the fuzzy pass; retrieval or parse failures abort
			// the run before any output is written
			result, err := rec.Fix(cmd.Context())
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
			filePath := path.Join(outDir, fixedFileName)
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

			printFixSummary(result)

			logger.Sugar().Infof("A total of %d channels have been processed (%d matched, %d unmatched), written to the file %s.",
				len(result.Channels), len(result.Matches), len(result.Unmatched), fixedFileName)

			return nil
		},
	}

	return fixCmd
}
