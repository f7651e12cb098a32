// Package global holds the simulator's configuration and logging setup.
package global

import (
	"io"
	"os"

	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/genwun/rby"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// GlobalInit sets up the global zerolog logger from config and hands it to the rby package.
// Logs always go to the rolling log file; they are also printed when stderr is a terminal.
func GlobalInit(config GlobalConfig) error {
	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.TraceLevel
	}

	fileWriter, err := NewRollingFileWriter(config.LogDirectory, "rbysim", config.MaxLogSizeKB*1000, config.MaxLogs)
	if err != nil {
		return err
	}

	writers := []io.Writer{fileWriter}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().Level(level)

	// V(1) and V(2) map to debug and trace
	zerologr.SetMaxV(2)
	rby.SetInternalLogger(zerologr.New(&log.Logger))

	return nil
}
