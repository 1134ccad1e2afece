// Package logger provides the leveled logging utility shared by the workspace packages.
// Messages go to stderr so they never mix with an application's diagnostic output on stdout.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// std is the process-wide logger instance.
var std = newStdLogger()

func newStdLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetLogLevel sets the global log level.
// Valid values are "DEBUG", "INFO", "WARN", "ERROR", "FATAL" (case-insensitive).
// An unknown value falls back to INFO and logs a warning.
func SetLogLevel(level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		std.SetLevel(logrus.DebugLevel)
	case "INFO":
		std.SetLevel(logrus.InfoLevel)
	case "WARN":
		std.SetLevel(logrus.WarnLevel)
	case "ERROR":
		std.SetLevel(logrus.ErrorLevel)
	case "FATAL":
		std.SetLevel(logrus.FatalLevel)
	default:
		std.SetLevel(logrus.InfoLevel)
		std.Warnf("Unknown log level '%s' specified. Defaulting to INFO level.", level)
	}
}

// GetLogLevel returns the current level as an upper-case string.
func GetLogLevel() string {
	if std.GetLevel() == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(std.GetLevel().String())
}

// SetOutput redirects log output. Tests use it to capture messages.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Debugf formats and outputs a DEBUG level log message.
func Debugf(format string, v ...interface{}) {
	std.Debugf(format, v...)
}

// Infof formats and outputs an INFO level log message.
func Infof(format string, v ...interface{}) {
	std.Infof(format, v...)
}

// Warnf formats and outputs a WARN level log message.
func Warnf(format string, v ...interface{}) {
	std.Warnf(format, v...)
}

// Errorf formats and outputs an ERROR level log message.
func Errorf(format string, v ...interface{}) {
	std.Errorf(format, v...)
}

// Fatalf outputs a FATAL level log message and terminates the process with exit code 1.
func Fatalf(format string, v ...interface{}) {
	std.Fatalf(format, v...)
}
