package log

import (
	"runtime"
	"strings"
	"sync"
)

var (
	packageName string
	once        sync.Once
)

func GetPackageName(p string) string {
	for {
		lastPeriod := strings.LastIndex(p, ".")
		lastSlash := strings.LastIndex(p, "/")
		if lastPeriod > lastSlash {
			p = p[:lastPeriod]
		} else {
			break
		}
	}
	return p
}

// GetCaller returns the first frame outside this package.
func GetCaller(skipLogFunc bool) *runtime.Frame {
	pcs := make([]uintptr, 16)
	depth := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:depth])
	once.Do(func() {
		packageName = GetPackageName(runtime.FuncForPC(pcs[0]).Name())
	})

	for f, again := frames.Next(); again; f, again = frames.Next() {
		if !skipLogFunc || GetPackageName(f.Function) != packageName {
			return &f
		}
	}
	return nil
}
