package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

/*
SetupLogging sets the global log level and writes log events to the given
writer in a human readable format. The level given with the log-level flag
prevails over the one in the configuration file, and the verbose flag over
both.
*/
func (rcc *rootCmdConfig) SetupLogging(w io.Writer) error {
	level := zerolog.WarnLevel
	name := rcc.logLevel
	if name == "" && rcc.file != nil {
		name = rcc.file.LogLevel
	}
	if name != "" {
		var err error
		level, err = zerolog.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("parsing log level: %v", err)
		}
	}
	if rcc.verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
	return nil
}
