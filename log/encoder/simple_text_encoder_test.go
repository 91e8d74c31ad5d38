package encoder

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zhangel/go-configure/log/entry"
	"github.com/zhangel/go-configure/log/fields"
	"github.com/zhangel/go-configure/log/level"
)

func TestSimpleTextEncoder(t *testing.T) {
	e := &entry.Entry{
		Fields: fields.Fields{{K: "section", V: "workflow"}, {K: "pass", V: 2}},
		Time:   time.Date(2021, 3, 4, 5, 6, 7, 8000, time.UTC),
		Level:  level.InfoLevel,
		Caller: &runtime.Frame{File: "/src/configure/resolver.go", Line: 42},
		Msg:    "reparse",
	}

	out, err := NewSimpleTextEncoder(" ", true).Encode(e)
	assert.NoError(t, err)
	assert.Equal(t, "2021-03-04 05:06:07.000008 [INFO] <resolver.go:42> section:workflow pass:2 msg:reparse", string(out))

	out, err = NewSimpleTextEncoder("|", false).Encode(e)
	assert.NoError(t, err)
	assert.Equal(t, "section:workflow|pass:2|msg:reparse", string(out))
}
