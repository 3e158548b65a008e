//go:build steroidslog_info && !steroidslog_warning && !steroidslog_error

package steroidslog

const minLevel = LevelInfo
