package frameloop

import (
	"fmt"
	"runtime/debug"

	"scene-demo/internal/logger"
)

// Stats counts ticks since start.
type Stats struct {
	Ticks    uint64
	Failures uint64
	// LastError is the most recent tick failure, or "" if none.
	LastError string
}

// Loop runs one tick per host frame: dispatch once, then draw once.
// A failing tick is logged and counted; the next tick runs as usual.
type Loop struct {
	before   []func()
	dispatch func()
	draw     func() error
	log      *logger.Logger
	stats    Stats
}

// New returns a loop. draw may return an error to mark the frame as failed.
func New(dispatch func(), draw func() error, log *logger.Logger) *Loop {
	return &Loop{dispatch: dispatch, draw: draw, log: log}
}

// Before registers work that runs at the start of every tick, ahead of dispatch
// (e.g. delivering finished asset loads).
func (l *Loop) Before(fn func()) {
	l.before = append(l.before, fn)
}

// Stats returns a copy of the counters.
func (l *Loop) Stats() Stats {
	return l.stats
}

// Tick runs one frame and reports whether it succeeded. It never panics.
func (l *Loop) Tick() bool {
	l.stats.Ticks++
	err := l.run()
	if err == nil {
		return true
	}
	l.stats.Failures++
	l.stats.LastError = err.Error()
	l.log.With("tick", l.stats.Ticks).Errorf("frame failed: %v", err)
	return false
}

func (l *Loop) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			l.log.Debugf("%s", debug.Stack())
		}
	}()
	for _, fn := range l.before {
		fn()
	}
	if l.dispatch != nil {
		l.dispatch()
	}
	if l.draw != nil {
		return l.draw()
	}
	return nil
}
