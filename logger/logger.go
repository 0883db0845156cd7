package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/byrax15/snake-gl/parameter"
)

// Options selects the level, format and destination of the game log
type Options struct {
	Level  string // logrus level name, unknown values fall back to info
	Format string // text | json
	File   string // Empty discards output, the terminal is owned by the renderer

	MaxSize    int // Megabytes before rotation, 0 uses parameter.MaxLogSizeMB
	MaxBackups int // Rotated files kept, 0 uses parameter.MaxLogBackups
}

// New builds a logger writing to the configured file, rotated by size
// The returned closer releases the file and is never nil
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if opts.File == "" {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, errors.Wrapf(err, "create log directory for %s", opts.File)
	}

	out := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    orDefault(opts.MaxSize, parameter.MaxLogSizeMB),
		MaxBackups: orDefault(opts.MaxBackups, parameter.MaxLogBackups),
	}
	log.SetOutput(out)
	return log, out, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
