package log

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/zhangel/go-configure/lifecycle"
	"github.com/zhangel/go-configure/log/entry"
	"github.com/zhangel/go-configure/log/fields"
	"github.com/zhangel/go-configure/log/level"
	"github.com/zhangel/go-configure/log/logger"
)

type _Entry struct {
	logger   *_Logger
	ctx      context.Context
	minLevel *uint32
	entry.Entry
}

func newEntry(logger *_Logger) *_Entry {
	minLevel := uint32(level.TraceLevel)
	return &_Entry{
		logger:   logger,
		minLevel: &minLevel,
		Entry: entry.Entry{
			Fields: fields.Fields{},
		},
	}
}

func (s *_Entry) derive() *_Entry {
	e := newEntry(s.logger)
	e.Fields = append(e.Fields, s.Fields...)
	e.ctx = s.ctx
	e.minLevel = s.minLevel
	return e
}

func (s *_Entry) isLevelEnabled(l level.Level) bool {
	return l == level.FatalLevel || l >= level.Level(atomic.LoadUint32(s.minLevel))
}

func (s _Entry) write(level level.Level, msg string) {
	s.Time = time.Now()
	s.Caller = GetCaller(true)
	s.Level = level
	s.Msg = msg
	if s.ctx != nil {
		for _, provider := range providers() {
			s.Fields = append(s.Fields, provider(s.ctx)...)
		}
	}
	if marshaled, err := s.logger.opts.encoder.Encode(&s.Entry); err == nil && len(marshaled) > 0 {
		_ = s.logger.opts.writer.Write(marshaled)
	}
}

func (s *_Entry) logF(level level.Level, format string, args ...interface{}) {
	if !s.isLevelEnabled(level) {
		return
	}
	s.write(level, fmt.Sprintf(format, args...))
}

func (s *_Entry) log(level level.Level, args ...interface{}) {
	if !s.isLevelEnabled(level) {
		return
	}
	s.write(level, fmt.Sprint(args...))
}

func (c *_Entry) LogLevel() level.Level {
	return level.Level(atomic.LoadUint32(c.minLevel))
}

func (c *_Entry) Close() error {
	return c.logger.Close()
}

func (c *_Entry) WithLevel(level level.Level) logger.Logger {
	e := c.derive()
	minLevelU32 := uint32(level)
	e.minLevel = &minLevelU32
	return e
}

func (c *_Entry) WithFields(fields fields.Fields) logger.Logger {
	e := c.derive()
	e.Fields = append(e.Fields, fields...)
	return e
}

func (c *_Entry) WithField(key string, value interface{}) logger.Logger {
	return c.WithFields(fields.Fields{fields.Field{K: key, V: value}})
}

func (c *_Entry) WithContext(ctx context.Context) logger.Logger {
	e := c.derive()
	e.ctx = ctx
	return e
}

func (s *_Entry) Fatal(args ...interface{}) {
	s.log(level.FatalLevel, args...)
	lifecycle.Exit(1)
}

func (s *_Entry) Fatalf(format string, args ...interface{}) {
	s.logF(level.FatalLevel, format, args...)
	lifecycle.Exit(1)
}

func (s *_Entry) Info(args ...interface{})  { s.log(level.InfoLevel, args...) }
func (s *_Entry) Trace(args ...interface{}) { s.log(level.TraceLevel, args...) }
func (s *_Entry) Warn(args ...interface{})  { s.log(level.WarnLevel, args...) }
func (s *_Entry) Debug(args ...interface{}) { s.log(level.DebugLevel, args...) }
func (s *_Entry) Error(args ...interface{}) { s.log(level.ErrorLevel, args...) }

func (s *_Entry) Errorf(format string, args ...interface{}) {
	s.logF(level.ErrorLevel, format, args...)
}

func (s *_Entry) Warnf(format string, args ...interface{}) {
	s.logF(level.WarnLevel, format, args...)
}

func (s *_Entry) Infof(format string, args ...interface{}) {
	s.logF(level.InfoLevel, format, args...)
}

func (s *_Entry) Tracef(format string, args ...interface{}) {
	s.logF(level.TraceLevel, format, args...)
}

func (s *_Entry) Debugf(format string, args ...interface{}) {
	s.logF(level.DebugLevel, format, args...)
}
