package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// OutputFile is the rotated log file path; empty logs to stderr only.
	OutputFile string `yaml:"output_file"`
	// MaxSize is the maximum size of a log file in MB before rotation.
	MaxSize int `yaml:"max_size"`
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int `yaml:"max_backups"`
	// MaxAge is the retention of rotated files in days.
	MaxAge int `yaml:"max_age"`
	// Compress controls gzip of rotated files.
	Compress bool `yaml:"compress"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		MaxSize:    20,
		MaxBackups: 5,
		MaxAge:     14,
	}
}

// New builds a logrus logger from cfg. When the TUI owns the terminal the
// caller should set an OutputFile so log lines do not tear the screen.
func New(cfg Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if cfg.OutputFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.OutputFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	} else {
		log.SetOutput(io.Writer(os.Stderr))
	}

	return log
}
