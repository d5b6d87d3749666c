package logging

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogConfig struct {
	Level        string `json:"level" yaml:"level"`                 // minimum level: debug, info, warn, error
	FileName     string `json:"file_name" yaml:"fileName"`          // log file location
	MaxSize      int    `json:"max_size" yaml:"maxSize"`            // max size in MB before rotation
	MaxAge       int    `json:"max_age" yaml:"maxAge"`              // max days to retain rotated files
	MaxBackups   int    `json:"max_backups" yaml:"maxBackups"`      // max number of rotated files to keep
	IsStdout     bool   `json:"is_stdout" yaml:"isStdout"`          // also write to stdout
	IsStackTrace bool   `json:"is_stack_trace" yaml:"isStackTrace"` // attach stack traces at error level
}

// InitLogger builds the global zap logger from the log configuration
// and installs it via zap.ReplaceGlobals.
func InitLogger(lCfg *LogConfig) error {
	level, err := zapcore.ParseLevel(lCfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	writeSyncer := getLogWriter(lCfg.FileName, lCfg.MaxSize, lCfg.MaxBackups, lCfg.MaxAge, lCfg.IsStdout)
	encoder := getEncoder()

	core := zapcore.NewCore(encoder, writeSyncer, level)
	var logger *zap.Logger
	if lCfg.IsStackTrace {
		logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	} else {
		logger = zap.New(core, zap.AddCaller())
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// getEncoder sets the JSON encoding of log records.
func getEncoder() zapcore.Encoder {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	encodeConfig.TimeKey = "time"
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewJSONEncoder(encodeConfig)
}

// getLogWriter sets where log records are written, with rotation.
func getLogWriter(filename string, maxsize, maxBackup, maxAge int, isStdout bool) zapcore.WriteSyncer {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxsize,
		MaxAge:     maxAge,
		MaxBackups: maxBackup,
		Compress:   true,
	}
	if isStdout {
		return zapcore.NewMultiWriteSyncer(zapcore.AddSync(lumberJackLogger), zapcore.AddSync(os.Stdout))
	}
	return zapcore.AddSync(lumberJackLogger)
}
