// File: level.go
// Title: Log Level Definitions
// Description: Log levels, their long and short names and parsing from
//              configuration and command line values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-10-12 v0.1.1: Dropped the audit level
// - 2025-10-19 v0.2.0: Level names from one table, parse failures return
//                       structured errors

package log

import (
	"strings"

	dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal // logged before the process exits
)

// levelNames holds the name, short tag and accepted aliases of each level,
// indexed by Level
var levelNames = [...]struct {
	name    string
	short   string
	aliases []string
}{
	LevelTrace: {"trace", "TRC", []string{"trc"}},
	LevelDebug: {"debug", "DBG", []string{"dbg"}},
	LevelInfo:  {"info", "INF", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
	LevelFatal: {"fatal", "FTL", []string{"ftl"}},
}

func (l Level) known() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lower case name of the level
func (l Level) String() string {
	if !l.known() {
		return "unknown"
	}
	return levelNames[l].name
}

// ShortString returns the three letter tag used by the text formatters
func (l Level) ShortString() string {
	if !l.known() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether l passes a logger set to minLevel
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name or alias, ignoring case and surrounding space
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, names := range levelNames {
		if s == names.name {
			return Level(l), nil
		}
		for _, alias := range names.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}

	return DefaultLevel(), parseError("level", level, "trace, debug, info, warn, error or fatal")
}

// parseError reports a log setting that could not be parsed
func parseError(setting, input, expected string) error {
	return dherror.New("invalid log "+setting).
		WithCode(dherror.CodeInvalidInput).
		WithOperation("log.Parse").
		WithDetail("value", input).
		WithDetail("expected", expected)
}

// DefaultLevel is the level of loggers created with New
func DefaultLevel() Level {
	return LevelInfo
}
