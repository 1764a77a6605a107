// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levelToZapLevel = map[Level]zapcore.Level{
	LevelDebug: zapcore.DebugLevel,
	LevelInfo:  zapcore.InfoLevel,
	LevelWarn:  zapcore.WarnLevel,
	LevelError: zapcore.ErrorLevel,
}

var zapLevelToLevel = map[zapcore.Level]Level{
	zapcore.DebugLevel: LevelDebug,
	zapcore.InfoLevel:  LevelInfo,
	zapcore.WarnLevel:  LevelWarn,
	zapcore.ErrorLevel: LevelError,
}

// NewZapLog creates a console Logger from zap whose caller skip is set to 2.
func NewZapLog(level Level) Logger {
	return NewZapLogWithCallerSkip(level, 2)
}

// NewZapLogWithCallerSkip creates a console Logger from zap.
func NewZapLogWithCallerSkip(level Level, callerSkip int) Logger {
	zapLevel := zap.NewAtomicLevelAt(levelToZapLevel[level])
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		zapLevel,
	)
	return &zapLog{
		level: zapLevel,
		logger: zap.New(
			core,
			zap.AddCallerSkip(callerSkip),
			zap.AddCaller(),
		),
	}
}

// zapLog is a Logger implementation based on zaplogger.
type zapLog struct {
	level  zap.AtomicLevel
	logger *zap.Logger
}

func (l *zapLog) Debug(args ...interface{}) {
	if l.logger.Core().Enabled(zapcore.DebugLevel) {
		l.logger.Sugar().Debug(args...)
	}
}

func (l *zapLog) Debugf(format string, args ...interface{}) {
	if l.logger.Core().Enabled(zapcore.DebugLevel) {
		l.logger.Sugar().Debugf(format, args...)
	}
}

func (l *zapLog) Info(args ...interface{}) {
	if l.logger.Core().Enabled(zapcore.InfoLevel) {
		l.logger.Sugar().Info(args...)
	}
}

func (l *zapLog) Infof(format string, args ...interface{}) {
	if l.logger.Core().Enabled(zapcore.InfoLevel) {
		l.logger.Sugar().Infof(format, args...)
	}
}

func (l *zapLog) Warn(args ...interface{}) {
	if l.logger.Core().Enabled(zapcore.WarnLevel) {
		l.logger.Sugar().Warn(args...)
	}
}

func (l *zapLog) Warnf(format string, args ...interface{}) {
	if l.logger.Core().Enabled(zapcore.WarnLevel) {
		l.logger.Sugar().Warnf(format, args...)
	}
}

func (l *zapLog) Error(args ...interface{}) {
	if l.logger.Core().Enabled(zapcore.ErrorLevel) {
		l.logger.Sugar().Error(args...)
	}
}

func (l *zapLog) Errorf(format string, args ...interface{}) {
	if l.logger.Core().Enabled(zapcore.ErrorLevel) {
		l.logger.Sugar().Errorf(format, args...)
	}
}

// With adds user defined fields to the Logger.
func (l *zapLog) With(fields ...Field) Logger {
	zapFields := make([]zap.Field, len(fields))
	for i := range fields {
		zapFields[i] = zap.Any(fields[i].Key, fields[i].Value)
	}
	return &zapLog{
		level:  l.level,
		logger: l.logger.With(zapFields...),
	}
}

// SetLevel sets the output log level.
func (l *zapLog) SetLevel(level Level) {
	zapLevel, ok := levelToZapLevel[level]
	if !ok {
		return
	}
	l.level.SetLevel(zapLevel)
}

// GetLevel gets the output log level.
func (l *zapLog) GetLevel() Level {
	return zapLevelToLevel[l.level.Level()]
}
