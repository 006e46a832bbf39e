package utils

import (
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
)

// LogWriter holds the optional log file output so it can be closed on exit.
type LogWriter struct {
	file *os.File
}

func (lw *LogWriter) Dispose() {
	if lw.file != nil {
		lw.file.Close()
	}
}

// InitLogger configures the global logrus instance from the logging config
// and returns the log writer plus the root logger entry.
func InitLogger() (*LogWriter, logger.FieldLogger) {
	logWriter := &LogWriter{}

	level, err := logger.ParseLevel(Config.Logging.OutputLevel)
	if err != nil {
		level = logger.InfoLevel
	}
	logger.SetLevel(level)

	var output io.Writer = os.Stdout
	if Config.Logging.OutputStderr {
		output = os.Stderr
	}

	if Config.Logging.FilePath != "" {
		file, err := os.OpenFile(Config.Logging.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.WithError(err).Errorf("could not open log file %v, falling back to console only", Config.Logging.FilePath)
		} else {
			logWriter.file = file
			output = io.MultiWriter(output, file)
		}
	}
	logger.SetOutput(output)

	return logWriter, logger.StandardLogger()
}
