package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Entry so services depend on a single local type
// instead of the logrus package directly.
type Logger struct {
	*logrus.Entry
}

var instance Logger
var once sync.Once

// GetLogger returns the application logger singleton.
func GetLogger() *Logger {
	once.Do(func() {
		instance = Logger{initLogrus()}
	})
	return &instance
}

// WithField returns a logger with an extra field attached.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{l.Entry.WithField(key, value)}
}

// WithFields returns a logger with a set of extra fields attached.
func (l *Logger) WithFields(fields logrus.Fields) *Logger {
	return &Logger{l.Entry.WithFields(fields)}
}

// WithError returns a logger with the error field attached.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.Entry.WithError(err)}
}

func initLogrus() *logrus.Entry {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &logrus.TextFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			filename := path.Base(f.File)
			return fmt.Sprintf("%s()", f.Function), fmt.Sprintf("%s:%d", filename, f.Line)
		},
		DisableColors: false,
		FullTimestamp: true,
	}

	output := io.Writer(os.Stdout)

	// Mirror logs to a file when the directory is writable.
	if err := os.MkdirAll("logs", 0o755); err == nil {
		if file, err := os.OpenFile("logs/all.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			output = io.MultiWriter(os.Stdout, file)
		}
	}

	l.SetOutput(output)
	l.SetLevel(logrus.TraceLevel)

	return logrus.NewEntry(l)
}
