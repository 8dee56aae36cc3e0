package core

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"kotaclean/pkg/constants"
)

// SetupLogger builds the run logger: warnings and errors to stderr,
// everything teed into a rotating audit log under the user cache
// directory so the log never sits inside the tree being cleaned.
func SetupLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		logger.SetOutput(os.Stderr)
		return logger
	}

	audit := &lumberjack.Logger{
		Filename:   filepath.Join(cacheDir, constants.LogDirName, constants.LogFileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	}
	logger.SetOutput(io.MultiWriter(os.Stderr, audit))

	return logger
}
