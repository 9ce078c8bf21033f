// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// logging.go - Builds the zap logger. Diagnostics go to stderr, and to a
// rotating log file when one is configured, so they never mix with replies
// on stdout.

package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// ParseLevel maps a level name to a zap level. Unknown names mean info.
func ParseLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// New returns a console logger writing to stderr at the given level. When
// file is not empty, JSON lines are also written to a rotating file there.
// The returned close func flushes and closes the file.
func New(levelStr, file string) (*zap.Logger, func() error) {
	return newLogger(levelStr, file, os.Stderr)
}

func newLogger(levelStr, file string, console io.Writer) (*zap.Logger, func() error) {
	level := zap.NewAtomicLevelAt(ParseLevel(levelStr))

	encCfg := zap.NewDevelopmentEncoderConfig()
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(console), level),
	}

	var rotator *lumberjack.Logger
	if file != "" {
		rotator = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			level,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	closeFn := func() error {
		_ = logger.Sync()
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}
	return logger, closeFn
}
