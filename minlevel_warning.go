//go:build steroidslog_warning && !steroidslog_error

package steroidslog

const minLevel = LevelWarning
