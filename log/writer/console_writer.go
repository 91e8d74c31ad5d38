package writer

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type ConsoleWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleWriter(stdout bool) (*ConsoleWriter, error) {
	if stdout {
		return &ConsoleWriter{w: os.Stdout}, nil
	} else {
		return &ConsoleWriter{w: os.Stderr}, nil
	}
}

// NewStreamWriter writes log lines to an arbitrary stream.
func NewStreamWriter(w io.Writer) *ConsoleWriter {
	return &ConsoleWriter{w: w}
}

func (c *ConsoleWriter) Write(bytes []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.w, string(bytes))
	return err
}

func (c *ConsoleWriter) Close() error {
	return nil
}
