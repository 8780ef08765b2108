// Package logger is the diagnostic log of the generators. Operator-facing messages
// go through package ui; this log records file reads, writes and patch outcomes.
package logger

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface shared by the generators.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

type Config struct {
	Type   string // "zap" or "default"
	Level  string // "debug", "info", "warn", "error"
	Output io.Writer
}

// New builds a Logger from config. Output defaults to stderr so that logs never mix
// with prompts.
func New(config Config) (Logger, error) {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	switch strings.ToLower(config.Type) {
	case "", "zap":
		return newZapLogger(config.Level, out), nil
	case "default":
		return newDefaultLogger(config.Level, out), nil
	default:
		return nil, errors.Errorf("unsupported log type: %s", config.Type)
	}
}

// Nop discards everything.
func Nop() Logger {
	return &ZapLogger{sugaredLogger: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// --- zap ---

type ZapLogger struct {
	sugaredLogger *zap.SugaredLogger
}

func newZapLogger(level string, out io.Writer) *ZapLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l := zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(out)),
		parseLevel(level),
	))
	return &ZapLogger{sugaredLogger: l.Sugar()}
}

func (l *ZapLogger) Debug(args ...interface{}) { l.sugaredLogger.Debug(args...) }
func (l *ZapLogger) Info(args ...interface{})  { l.sugaredLogger.Info(args...) }
func (l *ZapLogger) Warn(args ...interface{})  { l.sugaredLogger.Warn(args...) }
func (l *ZapLogger) Error(args ...interface{}) { l.sugaredLogger.Error(args...) }
func (l *ZapLogger) Debugf(template string, args ...interface{}) {
	l.sugaredLogger.Debugf(template, args...)
}
func (l *ZapLogger) Infof(template string, args ...interface{}) {
	l.sugaredLogger.Infof(template, args...)
}
func (l *ZapLogger) Warnf(template string, args ...interface{}) {
	l.sugaredLogger.Warnf(template, args...)
}
func (l *ZapLogger) Errorf(template string, args ...interface{}) {
	l.sugaredLogger.Errorf(template, args...)
}

// --- standard log ---

type DefaultLogger struct {
	logger *log.Logger
	level  zapcore.Level
}

func newDefaultLogger(level string, out io.Writer) *DefaultLogger {
	return &DefaultLogger{
		logger: log.New(out, "", log.LstdFlags),
		level:  parseLevel(level),
	}
}

func (l *DefaultLogger) println(lvl zapcore.Level, args ...interface{}) {
	if !l.level.Enabled(lvl) {
		return
	}
	l.logger.Println(append([]interface{}{"[" + lvl.CapitalString() + "]"}, args...)...)
}

func (l *DefaultLogger) printf(lvl zapcore.Level, template string, args ...interface{}) {
	if !l.level.Enabled(lvl) {
		return
	}
	l.logger.Printf("["+lvl.CapitalString()+"] "+template, args...)
}

func (l *DefaultLogger) Debug(args ...interface{}) { l.println(zapcore.DebugLevel, args...) }
func (l *DefaultLogger) Info(args ...interface{})  { l.println(zapcore.InfoLevel, args...) }
func (l *DefaultLogger) Warn(args ...interface{})  { l.println(zapcore.WarnLevel, args...) }
func (l *DefaultLogger) Error(args ...interface{}) { l.println(zapcore.ErrorLevel, args...) }
func (l *DefaultLogger) Debugf(template string, args ...interface{}) {
	l.printf(zapcore.DebugLevel, template, args...)
}
func (l *DefaultLogger) Infof(template string, args ...interface{}) {
	l.printf(zapcore.InfoLevel, template, args...)
}
func (l *DefaultLogger) Warnf(template string, args ...interface{}) {
	l.printf(zapcore.WarnLevel, template, args...)
}
func (l *DefaultLogger) Errorf(template string, args ...interface{}) {
	l.printf(zapcore.ErrorLevel, template, args...)
}
