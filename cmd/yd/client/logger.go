package client

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the client logger, quiet unless tracing
var Log = newLogger(io.Discard, false)

// InitLogger setup the global Log on stderr
func InitLogger(trace bool) *logrus.Logger {
	Log = newLogger(os.Stderr, trace)
	return Log
}

func newLogger(out io.Writer, trace bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if trace {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
