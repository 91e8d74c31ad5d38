package encoder

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zhangel/go-configure/log/entry"
)

type SimpleTextEncoder struct {
	sep            string
	withFixedParts bool
}

func NewSimpleTextEncoder(sep string, withFixedParts bool) *SimpleTextEncoder {
	return &SimpleTextEncoder{sep, withFixedParts}
}

func (s *SimpleTextEncoder) Encode(entry *entry.Entry) ([]byte, error) {
	var logItem []string
	if s.withFixedParts {
		logItem = append(logItem, entry.Time.Format("2006-01-02 15:04:05.000000"))
		logItem = append(logItem, fmt.Sprintf("[%s]", entry.Level.String()))
		if entry.Caller != nil {
			_, fileName := filepath.Split(entry.Caller.File)
			logItem = append(logItem, fmt.Sprintf("<%s:%d>", fileName, entry.Caller.Line))
		}
	}
	for _, field := range entry.Fields {
		logItem = append(logItem, fmt.Sprintf("%s:%v", field.K, field.V))
	}
	logItem = append(logItem, fmt.Sprintf("msg:%s", entry.Msg))
	return []byte(strings.Join(logItem, s.sep)), nil
}
