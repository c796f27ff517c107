package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.Logger
	once sync.Once
)

// Init builds the global logger. production selects JSON output at info level,
// anything else a console encoder at debug level.
func Init(env string) {
	once.Do(func() {
		var (
			l   *zap.Logger
			err error
		)
		if env == "production" {
			l, err = zap.NewProduction()
		} else {
			cfg := zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			l, err = cfg.Build()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		log = l
	})
}

// L returns the global logger, falling back to a no-op logger before Init.
func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// Sync flushes buffered entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Info(msg string, fields ...zapcore.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zapcore.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zapcore.Field) { L().Error(msg, fields...) }
func Debug(msg string, fields ...zapcore.Field) { L().Debug(msg, fields...) }
func Fatal(msg string, fields ...zapcore.Field) { L().Fatal(msg, fields...) }
