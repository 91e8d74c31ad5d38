package encoder

import (
	"github.com/zhangel/go-configure/log/entry"
)

type Encoder interface {
	Encode(entry *entry.Entry) ([]byte, error)
}
