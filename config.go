package steroidslog

import (
	"github.com/ilyakaznacheev/cleanenv"
	"tlog.app/go/errors"
)

type (
	// Config carries the tunables of one Logger. Zero values are filled in
	// from defaults; FromEnv reads the STEROIDSLOG_* variables instead.
	// The backpressure policy and the severity floor are build-time choices
	// and deliberately not here.
	Config struct {
		Capacity      int    `env:"STEROIDSLOG_CAPACITY" env-default:"1024" env-description:"per-producer ring capacity, power of two"`
		BatchSize     int    `env:"STEROIDSLOG_BATCH" env-default:"64" env-description:"records per producer per poll pass"`
		MaxMessageLen int    `env:"STEROIDSLOG_MAXLEN" env-default:"256" env-description:"rendered message cap, bytes"`
		Level         string `env:"STEROIDSLOG_LEVEL" env-default:"debug" env-description:"runtime severity filter"`
		Caller        bool   `env:"STEROIDSLOG_CALLER" env-default:"false" env-description:"annotate messages with file:line"`
	}

	// Option tweaks a Logger at construction.
	Option func(l *Logger)
)

func DefaultConfig() Config {
	return Config{
		Capacity:      1024,
		BatchSize:     64,
		MaxMessageLen: 256,
		Level:         "debug",
	}
}

// FromEnv builds a Config from the environment.
func FromEnv() (c Config, err error) {
	err = cleanenv.ReadEnv(&c)
	if err != nil {
		return c, errors.Wrap(err, "read env")
	}

	return c, nil
}

func (c Config) Validate() error {
	if c.Capacity < 2 || c.Capacity&(c.Capacity-1) != 0 {
		return errors.New("capacity must be a power of two >= 2: %v", c.Capacity)
	}

	if c.BatchSize < 1 {
		return errors.New("batch size must be positive: %v", c.BatchSize)
	}

	if c.MaxMessageLen < 16 {
		return errors.New("max message length too small: %v", c.MaxMessageLen)
	}

	if _, err := ParseLevel(c.Level); err != nil {
		return errors.Wrap(err, "level")
	}

	return nil
}

func WithConfig(c Config) Option {
	return func(l *Logger) { l.cfg = c }
}

func WithCapacity(n int) Option {
	return func(l *Logger) { l.cfg.Capacity = n }
}

func WithBatchSize(n int) Option {
	return func(l *Logger) { l.cfg.BatchSize = n }
}

func WithMaxMessageLen(n int) Option {
	return func(l *Logger) { l.cfg.MaxMessageLen = n }
}

func WithLevel(lvl Level) Option {
	return func(l *Logger) { l.cfg.Level = lvl.String() }
}

func WithCaller(on bool) Option {
	return func(l *Logger) { l.cfg.Caller = on }
}
