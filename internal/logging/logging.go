// Package logging routes the standard logger through a level filter.
//
// Messages are written with a "[LEVEL]" prefix, e.g. log.Printf("[DEBUG] ...").
// Lines without a prefix are always written.
package logging

import (
	"io"
	"log"
	"strings"

	"github.com/hashicorp/logutils"
)

var Levels = []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"}

// Setup points the standard logger at w, dropping messages below level.
// Unknown levels fall back to WARN.
func Setup(level string, w io.Writer) {
	log.SetFlags(0)
	log.SetOutput(NewFilter(level, w))
}

// NewFilter returns a writer that drops log lines below level.
func NewFilter(level string, w io.Writer) *logutils.LevelFilter {
	return &logutils.LevelFilter{
		Levels:   Levels,
		MinLevel: parseLevel(level),
		Writer:   w,
	}
}

func parseLevel(level string) logutils.LogLevel {
	l := logutils.LogLevel(strings.ToUpper(strings.TrimSpace(level)))
	for _, known := range Levels {
		if l == known {
			return l
		}
	}
	return "WARN"
}
