//go:build !steroidslog_info && !steroidslog_warning && !steroidslog_error

package steroidslog

// minLevel is the build-time severity floor. Branches on it are resolved at
// compile time, so filtered call sites cost nothing: no id, no encode, no
// enqueue. Raise it with the steroidslog_info, steroidslog_warning or
// steroidslog_error build tags.
const minLevel = LevelDebug
