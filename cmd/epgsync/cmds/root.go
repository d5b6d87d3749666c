package cmds

import (
	"os"
	"path/filepath"

	"epgsync/internal/app/config"
	"epgsync/internal/pkg/logging"
	"epgsync/internal/pkg/util"

	"github.com/spf13/cobra"
)

var (
	cfgFile string

	conf *config.Config
)

func init() {
	cobra.OnInitialize(initConfig)
}

func NewRootCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "epgsync",
		Short:         "Reconcile an M3U playlist against an XMLTV EPG catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(NewFixCLI())
	rootCmd.AddCommand(NewCleanCLI())
	rootCmd.AddCommand(NewServeCLI())
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the YAML configuration file")

	return rootCmd
}

// initConfig loads the configuration file, creating the default one
// beside the executable on first run, then installs the logger.
func initConfig() {
	var err error
	var fPath string

	if cfgFile != "" {
		// Use the configuration file from the command line
		fPath = cfgFile
	} else {
		cfgHome, err := util.ExecutableDir()
		cobra.CheckErr(err)

		fPath = filepath.Join(cfgHome, "config.yml")

		// Write the default configuration file
		if _, err = os.Stat(fPath); os.IsNotExist(err) {
			err = config.CreateDefaultCfg(fPath)
			cobra.CheckErr(err)
		}
	}

	// Read the configuration file
	conf, err = config.Load(fPath)
	cobra.CheckErr(err)

	logCfg := conf.Log
	if logCfg == nil {
		logCfg = &logging.LogConfig{
			Level:      "info",
			FileName:   "epgsync.log",
			MaxSize:    100,
			MaxAge:     30,
			MaxBackups: 10,
		}
	}
	cobra.CheckErr(logging.InitLogger(logCfg))
}
