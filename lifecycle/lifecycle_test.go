package lifecycle

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunHooksByPriority(t *testing.T) {
	var mu sync.Mutex
	var order []string
	record := func(name string) func(context.Context) {
		return func(context.Context) {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	hooks := []hookFunc{
		{opts: generateOptions(WithName("low"), WithPriority(-1)), fn: record("low")},
		{opts: generateOptions(WithName("high"), WithPriority(10)), fn: record("high")},
		{opts: generateOptions(WithName("default")), fn: record("default")},
	}
	runHooks(time.Second, hooks)

	assert.Equal(t, []string{"high", "default", "low"}, order)
}

func TestRunHooksTimeout(t *testing.T) {
	started := time.Now()
	hooks := []hookFunc{
		{opts: generateOptions(WithTimeout(10 * time.Millisecond)), fn: func(ctx context.Context) {
			time.Sleep(time.Second)
		}},
	}
	runHooks(time.Second, hooks)

	assert.Less(t, int64(time.Since(started)), int64(500*time.Millisecond))
}

func TestExitRunsFinalizeOnce(t *testing.T) {
	var codes []int
	restore := SetExitFunc(func(code int) { codes = append(codes, code) })
	defer restore()

	calls := 0
	OnFinalize(func(context.Context) { calls++ })

	Exit(2)
	Exit(0)

	assert.Equal(t, []int{2, 0}, codes)
	assert.Equal(t, 1, calls)
}
