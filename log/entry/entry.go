package entry

import (
	"runtime"
	"time"

	"github.com/zhangel/go-configure/log/fields"
	"github.com/zhangel/go-configure/log/level"
)

type Entry struct {
	Fields fields.Fields
	Time   time.Time
	Level  level.Level
	Caller *runtime.Frame
	Msg    string
}
