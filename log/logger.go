package log

import (
	"errors"

	"github.com/zhangel/go-configure/log/logger"
)

type _Logger struct {
	opts Options
}

func (s *_Logger) Close() error {
	if s.opts.writer != nil {
		return s.opts.writer.Close()
	}
	return nil
}

func NewLogger(opts ...Option) (logger.Logger, error) {
	log := &_Logger{}
	for _, o := range opts {
		if err := o(&log.opts); err != nil {
			return nil, err
		}
	}
	if log.opts.encoder == nil {
		return nil, errors.New("no log encoder available")
	}

	if log.opts.writer == nil {
		return nil, errors.New("no log writer available")
	}

	var logger logger.Logger = newEntry(log)
	if log.opts.minLevelOp != nil {
		logger = log.opts.minLevelOp(logger)
	}
	return logger, nil
}
