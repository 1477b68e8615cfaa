// Package logging configures the global zerolog logger.
//
// Output goes to stderr (JSON, or console format when Pretty is set) and,
// when a file is configured, also to a lumberjack-rotated log file.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/robalobadob/turdle/apps/go-server/internal/config"
)

// Setup installs the global logger. The returned closer flushes the log file,
// if any; it is safe to call when no file is configured.
func Setup(cfg config.LogConfig) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nopCloser{}, err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	w, closer := writers(cfg, os.Stderr)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return closer, nil
}

// writers builds the log sink for cfg with console output going to stderr.
func writers(cfg config.LogConfig, stderr io.Writer) (io.Writer, io.Closer) {
	var console io.Writer = stderr
	if cfg.Pretty {
		console = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}
	}
	if cfg.File == "" {
		return console, nopCloser{}
	}
	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return zerolog.MultiLevelWriter(console, file), file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
