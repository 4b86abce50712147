package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// LogFileName is the file created under the log directory.
const LogFileName = "demo.log"

// maxLines caps the in-memory history shown by the debug overlay.
const maxLines = 64

// Logger writes leveled lines to stdout and (optionally) logs/demo.log, and keeps the
// most recent lines in memory for on-screen display.
type Logger struct {
	entry *logrus.Entry
	hook  *historyHook
	file  *logFile
}

// logFile is shared by a logger and its children.
type logFile struct {
	mu     sync.Mutex
	f      *os.File
	stdout io.Writer
}

// Options configures New. Empty Dir disables the log file.
type Options struct {
	Level  string
	Dir    string
	Output io.Writer
}

// New returns a Logger. An unknown level falls back to info.
func New(opts Options) (*Logger, error) {
	l := logrus.New()
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetFormatter(&SimpleFormatter{TimestampFormat: "2006/01/02 15:04:05.000000"})

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	lf := &logFile{stdout: out}
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("logger: create %s: %w", opts.Dir, err)
		}
		path := filepath.Join(opts.Dir, LogFileName)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("logger: open %s: %w", path, err)
		}
		lf.f = f
		out = io.MultiWriter(out, f)
	}
	l.SetOutput(out)

	hook := &historyHook{}
	l.AddHook(hook)
	return &Logger{entry: logrus.NewEntry(l), hook: hook, file: lf}, nil
}

// Close closes the log file, if any. Later lines still go to the other output.
// Safe to call more than once and from any child logger.
func (l *Logger) Close() error {
	l.file.mu.Lock()
	defer l.file.mu.Unlock()
	if l.file.f == nil {
		return nil
	}
	l.entry.Logger.SetOutput(l.file.stdout)
	err := l.file.f.Close()
	l.file.f = nil
	return err
}

// Discard returns a Logger that records history but writes nowhere. Used by tests.
func Discard() *Logger {
	l, _ := New(Options{Level: "debug", Output: io.Discard})
	return l
}

// With returns a child logger that adds key=value to every line.
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value), hook: l.hook, file: l.file}
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Lines returns a copy of the most recent lines, oldest first.
func (l *Logger) Lines() []string {
	return l.hook.lines()
}

// historyHook keeps the last maxLines messages as "[LVL] msg".
type historyHook struct {
	mu  sync.Mutex
	buf []string
}

func (h *historyHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *historyHook) Fire(e *logrus.Entry) error {
	line := fmt.Sprintf("[%s] %s", levelTag(e.Level), e.Message)
	h.mu.Lock()
	h.buf = append(h.buf, line)
	if len(h.buf) > maxLines {
		h.buf = h.buf[len(h.buf)-maxLines:]
	}
	h.mu.Unlock()
	return nil
}

func (h *historyHook) lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.buf))
	copy(out, h.buf)
	return out
}

func levelTag(lvl logrus.Level) string {
	s := strings.ToUpper(lvl.String())
	if len(s) > 3 {
		s = s[:3]
	}
	return s
}

// SimpleFormatter prints "2006/01/02 15:04:05.000000 [INF] message key=value".
type SimpleFormatter struct {
	TimestampFormat string
}

// Format implements logrus.Formatter.
func (f *SimpleFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := e.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}
	ts := f.TimestampFormat
	if ts == "" {
		ts = "2006/01/02 15:04:05"
	}
	b.WriteString(e.Time.Format(ts))
	fmt.Fprintf(b, " [%s] %s", levelTag(e.Level), e.Message)
	if len(e.Data) > 0 {
		keys := make([]string, 0, len(e.Data))
		for k := range e.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%v", k, e.Data[k])
		}
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
