package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"paperwork/internal/config"
)

var Log = &Logger{console: os.Stdout}

// Logger writes structured entries through logrus and echoes a short line
// to the console.
type Logger struct {
	console io.Writer
}

// Init points logrus at a rotating JSON log file and sets its level. The
// returned closer flushes and closes the file.
func (l *Logger) Init(c config.Log) (io.Closer, error) {
	if c.File == "" {
		return nil, fmt.Errorf("log file not configured")
	}

	rotator := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(rotator)
	logrus.SetLevel(ParseLevel(c.Level))

	return rotator, nil
}

// ParseLevel maps the config spelling ("Trace", "Info", ...) to a logrus
// level. Anything unrecognized means Debug.
func ParseLevel(level string) logrus.Level {
	switch level {
	case "Trace":
		return logrus.TraceLevel
	case "Info":
		return logrus.InfoLevel
	case "Warn":
		return logrus.WarnLevel
	case "Error":
		return logrus.ErrorLevel
	case "Fatal":
		return logrus.FatalLevel
	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) echo(level logrus.Level, message string) {
	if l.console == nil || !logrus.IsLevelEnabled(level) {
		return
	}
	fmt.Fprintf(l.console, "%s: %s\n", level, message)
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.echo(logrus.InfoLevel, message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.echo(logrus.ErrorLevel, message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.echo(logrus.DebugLevel, message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.echo(logrus.WarnLevel, message)
}

// Round logs a gameplay message tagged with the round id.
func (l *Logger) Round(roundID, message string) {
	logrus.WithField("round", roundID).Info(message)
	l.echo(logrus.InfoLevel, message)
}

func (l *Logger) Fatal(message string) {
	l.echo(logrus.FatalLevel, message)
	logrus.Fatal(message)
}
