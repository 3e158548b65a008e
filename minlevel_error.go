//go:build steroidslog_error

package steroidslog

const minLevel = LevelError
