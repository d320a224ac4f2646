package logger

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger: text output with full timestamps
// at the given level, written to stderr and, when filePath is set, appended to that file.
func Init(levelStr string, filePath string) error {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := log.ParseLevel(levelStr)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	writers := []io.Writer{os.Stderr}
	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		writers = append(writers, file)
	}
	log.SetOutput(io.MultiWriter(writers...))

	return nil
}
