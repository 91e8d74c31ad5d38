package lifecycle

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/ahmetb/go-linq/v3"
)

var (
	cl           = &lifeCycle{}
	hooksTimeout = 30 * time.Second

	exitMu   sync.RWMutex
	exitFunc = os.Exit
)

type hookFunc struct {
	opts *Options
	fn   func(context.Context)
}

type lifeCycle struct {
	mu            sync.RWMutex
	onceFinalize  sync.Once
	finalizeHooks []hookFunc
}

func LifeCycle() *lifeCycle {
	return cl
}

// Exit runs the finalize hooks once and terminates the process.
func Exit(code int) {
	LifeCycle().Finalize()

	exitMu.RLock()
	exit := exitFunc
	exitMu.RUnlock()
	exit(code)
}

// SetExitFunc replaces os.Exit and returns a func restoring the previous one.
func SetExitFunc(fn func(int)) (restore func()) {
	exitMu.Lock()
	defer exitMu.Unlock()
	prev := exitFunc
	exitFunc = fn
	return func() {
		exitMu.Lock()
		defer exitMu.Unlock()
		exitFunc = prev
	}
}

func OnFinalize(fn func(context.Context), opt ...Option) {
	LifeCycle().OnFinalize(fn, opt...)
}

func (l *lifeCycle) OnFinalize(fn func(context.Context), opt ...Option) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.finalizeHooks = append(l.finalizeHooks, hookFunc{opts: generateOptions(opt...), fn: fn})
}

func (l *lifeCycle) Finalize() {
	l.onceFinalize.Do(func() {
		l.mu.RLock()
		finalizeHooks := make([]hookFunc, len(l.finalizeHooks))
		copy(finalizeHooks, l.finalizeHooks)
		l.mu.RUnlock()
		runHooks(hooksTimeout, finalizeHooks)
	})
}

func (h *hookFunc) run(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.fn(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// runHooks runs groups of equal priority one after another, highest first.
// Hooks inside a group run concurrently.
func runHooks(timeout time.Duration, hooks []hookFunc) {
	rootCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	linq.From(hooks).
		GroupByT(func(hook hookFunc) int32 { return hook.opts.priority },
			func(hook hookFunc) hookFunc { return hook }).
		OrderByDescendingT(func(group linq.Group) int32 { return group.Key.(int32) }).
		ForEachT(func(group linq.Group) {
			wg := sync.WaitGroup{}
			wg.Add(len(group.Group))
			for _, h := range group.Group {
				go func(hook hookFunc) {
					defer wg.Done()
					ctx, cancel := context.WithTimeout(rootCtx, hook.opts.timeout)
					defer cancel()
					hook.run(ctx)
				}(h.(hookFunc))
			}
			wg.Wait()
		})
}
