package log

import (
	"github.com/zhangel/go-configure/log/encoder"
	"github.com/zhangel/go-configure/log/level"
	"github.com/zhangel/go-configure/log/logger"
	"github.com/zhangel/go-configure/log/writer"
)

type Options struct {
	encoder    encoder.Encoder
	writer     writer.Writer
	minLevelOp func(logger.Logger) logger.Logger
}

type Option func(*Options) error

func WithEncoder(encoder encoder.Encoder) Option {
	return func(opts *Options) error {
		opts.encoder = encoder
		return nil
	}
}

func WithWriter(writer writer.Writer) Option {
	return func(opts *Options) error {
		opts.writer = writer
		return nil
	}
}

func WithMinLevel(minLevel level.Level) Option {
	return func(opts *Options) error {
		opts.minLevelOp = func(l logger.Logger) logger.Logger {
			return l.WithLevel(minLevel)
		}
		return nil
	}
}

// WithLevelName is WithMinLevel for a level taken from settings.
func WithLevelName(name string) Option {
	return func(opts *Options) error {
		minLevel, err := level.ParseLevel(name)
		if err != nil {
			return err
		}
		return WithMinLevel(minLevel)(opts)
	}
}
