// Package internal carries process-wide bootstrap helpers shared by the
// command binaries.
package internal

import (
	"log"
	"os"
)

// InitLogging routes the standard logger to stdout with microsecond
// timestamps. Subsystems prefix their lines ("[playback] ...") instead of
// configuring loggers of their own.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
