package shell

import (
	"bytes"
	"strings"
	"sync"

	"go.trai.ch/emforge/internal/core/ports"
)

type logLevel int

const (
	levelInfo logLevel = iota
	levelWarn
)

// logWriter forwards process output to the logger one complete line at a
// time. Writes may carry partial lines, so it buffers until a newline and
// Flush drains the remainder when the process exits.
type logWriter struct {
	mu     sync.Mutex
	logger ports.Logger
	level  logLevel
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush logs any remaining partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	if w.level == levelWarn {
		w.logger.Warn(msg)
		return
	}
	w.logger.Info(msg)
}
