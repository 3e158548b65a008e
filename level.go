package steroidslog

import (
	"strings"

	"tlog.app/go/errors"
)

// Level is message severity. Call sites below the logger level are dropped
// before any encoding happens; call sites below the build-time floor
// (minLevel) are eliminated by the compiler.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	}

	return "UNKNOWN"
}

// ParseLevel accepts the forms used by STEROIDSLOG_LEVEL: debug, info,
// warning (or warn), error, in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}

	return 0, errors.New("unknown level: %v", s)
}
