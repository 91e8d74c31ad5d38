package log

import (
	"io"

	"github.com/zhangel/go-configure/log/encoder"
	"github.com/zhangel/go-configure/log/level"
	"github.com/zhangel/go-configure/log/logger"
	"github.com/zhangel/go-configure/log/writer"
)

// NewConsoleLogger logs to stdout or stderr. Options are applied after the
// console encoder and writer.
func NewConsoleLogger(stdout bool, opt ...Option) func() (logger.Logger, error) {
	return func() (logger.Logger, error) {
		w, err := writer.NewConsoleWriter(stdout)
		if err != nil {
			return nil, err
		}
		return NewLogger(append([]Option{
			WithEncoder(encoder.NewSimpleTextEncoder(" ", true)),
			WithWriter(w),
		}, opt...)...)
	}
}

// NewStreamLogger logs to w, dropping entries below minLevel.
func NewStreamLogger(w io.Writer, minLevel level.Level) logger.Logger {
	l, _ := NewLogger(
		WithEncoder(encoder.NewSimpleTextEncoder(" ", true)),
		WithWriter(writer.NewStreamWriter(w)),
		WithMinLevel(minLevel),
	)
	return l
}
