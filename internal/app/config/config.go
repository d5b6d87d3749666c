package config

import (
	"errors"
	"net/url"
	"os"

	"epgsync/internal/pkg/logging"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	PlaylistURL string            `json:"playlistURL" yaml:"playlistURL"` // required, HTTP source of the playlist
	EpgFile     string            `json:"epgFile" yaml:"epgFile"`         // required, local XMLTV catalog path
	Headers     map[string]string `json:"headers" yaml:"headers"`         // custom HTTP request headers

	OutputDir string `json:"outputDir,omitempty" yaml:"outputDir,omitempty"` // output directory, defaults to the executable dir

	Log *logging.LogConfig `json:"log,omitempty" yaml:"log,omitempty"` // logging settings
}

func (c *Config) Validate() error {
	if c.PlaylistURL == "" || c.EpgFile == "" {
		return errors.New("invalid epgsync config: playlistURL and epgFile are required")
	}

	// L(): the global logger
	logger := zap.L()

	u, err := url.Parse(c.PlaylistURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		logger.Warn("The playlist URL does not look like an HTTP address.", zap.String("playlistURL", c.PlaylistURL))
	}

	return nil
}

func Load(fPath string) (*Config, error) {
	// Read the configuration file
	data, err := os.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func CreateDefaultCfg(fPath string) error {
	// Write the default configuration
	f, err := os.Create(fPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)

	defaultCfg := Config{
		PlaylistURL: "http://127.0.0.1:8000/playlist.m3u",
		EpgFile:     "epg.xml",
		Headers: map[string]string{
			"Accept":     "application/x-mpegurl,audio/x-mpegurl,*/*;q=0.8",
			"User-Agent": "epgsync/1.0",
		},
		Log: &logging.LogConfig{
			Level:      "info",
			FileName:   "epgsync.log",
			MaxSize:    100,
			MaxAge:     30,
			MaxBackups: 10,
			IsStdout:   false,
		},
	}

	return encoder.Encode(&defaultCfg)
}
