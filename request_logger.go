package gogs

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
)

// RequestLogger is the interface used by [Client] for logging HTTP requests.
// It has the same method set as resty's logger, so the implementation is
// also handed to the underlying resty client. Supply it via
// [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// LogrusLogger adapts a logrus logger or entry.
type LogrusLogger struct {
	log logrus.FieldLogger
}

func NewLogrusLogger(log logrus.FieldLogger) *LogrusLogger {
	return &LogrusLogger{log: log.WithField("component", "gogs-client")}
}

func (l *LogrusLogger) Errorf(format string, v ...any) { l.log.Errorf(format, v...) }
func (l *LogrusLogger) Warnf(format string, v ...any)  { l.log.Warnf(format, v...) }
func (l *LogrusLogger) Debugf(format string, v ...any) { l.log.Debugf(format, v...) }

// HCLogger adapts a go-hclog logger. hclog is key/value oriented, so the
// formatted message becomes the log message.
type HCLogger struct {
	log hclog.Logger
}

func NewHCLogger(log hclog.Logger) *HCLogger {
	return &HCLogger{log: log.Named("gogs-client")}
}

func (l *HCLogger) Errorf(format string, v ...any) { l.log.Error(fmt.Sprintf(format, v...)) }
func (l *HCLogger) Warnf(format string, v ...any)  { l.log.Warn(fmt.Sprintf(format, v...)) }
func (l *HCLogger) Debugf(format string, v ...any) { l.log.Debug(fmt.Sprintf(format, v...)) }
