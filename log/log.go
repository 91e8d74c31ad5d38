package log

import (
	"context"
	"sync"

	"github.com/zhangel/go-configure/log/fields"
	"github.com/zhangel/go-configure/log/level"
	"github.com/zhangel/go-configure/log/logger"
)

var (
	ctxFieldProviders []CtxFieldProvider
	defaultLogger     logger.Logger
	mutex             sync.RWMutex
)

type CtxFieldProvider func(ctx context.Context) fields.Fields

// RegisterCtxFieldProvider adds fields taken from the context of WithContext loggers.
func RegisterCtxFieldProvider(provider CtxFieldProvider) {
	mutex.Lock()
	defer mutex.Unlock()
	ctxFieldProviders = append(ctxFieldProviders, provider)
}

func DefaultLogger() logger.Logger {
	mutex.RLock()
	l := defaultLogger
	mutex.RUnlock()
	if l != nil {
		return l
	}

	// 默认输出到标准错误，只打印警告及以上
	l, _ = NewConsoleLogger(false)()
	l = l.WithLevel(level.WarnLevel)

	mutex.Lock()
	defer mutex.Unlock()
	if defaultLogger == nil {
		defaultLogger = l
	}
	return defaultLogger
}

func SetDefaultLogger(l logger.Logger) {
	mutex.Lock()
	defer mutex.Unlock()
	defaultLogger = l
}

func providers() []CtxFieldProvider {
	mutex.RLock()
	defer mutex.RUnlock()
	return ctxFieldProviders
}
