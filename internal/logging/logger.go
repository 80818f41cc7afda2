package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

// New builds the process logger. With a non-empty file path, output goes to
// stdout and to an hourly rotated file that keeps one week of history.
func New(level, file string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if file == "" {
		logger.SetOutput(os.Stdout)
		return logger, nil
	}

	writer, err := rotatelogs.New(
		file+".%Y%m%d%H",
		rotatelogs.WithLinkName(file),
		rotatelogs.WithRotationTime(time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("create rotating log file: %w", err)
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, writer))

	return logger, nil
}
