package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation.
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 30
)

// verbosityLevel maps the number of -v flags to a log level.
func verbosityLevel(verbose int) zapcore.Level {
	switch {
	case verbose <= 0:
		return zapcore.WarnLevel
	case verbose == 1:
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// newLogger returns a logger writing to standard error at the level
// set by verbose and, if file is not empty, JSON entries of all
// levels to file, rotated by size.
func newLogger(verbose int, file string) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = ""
	ec.CallerKey = ""
	if isatty.IsTerminal(os.Stderr.Fd()) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec),
		zapcore.Lock(os.Stderr), verbosityLevel(verbose))
	if file != "" {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
			Compress:   true,
		})
		fc := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			w, zapcore.DebugLevel)
		core = zapcore.NewTee(core, fc)
	}
	return zap.New(core)
}
