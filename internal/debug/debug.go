package debug

import (
	"fmt"
	"runtime"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
	maxLogLines    = 8
	maxLogRunes    = 160
)

// Info is what the overlay reports. Filled by the caller every frame.
type Info struct {
	Ticks     uint64
	Failures  uint64
	Objects   int
	Labels    int
	Skipped   uint64
	LastError string
}

// Overlay draws FPS, frame counters and recent log lines in screen space.
// Everything is off by default.
type Overlay struct {
	ShowFPS bool
	ShowLog bool

	info     func() Info
	logLines func() []string

	frameCount uint32
	lines      []string
	mem        runtime.MemStats
}

// New returns an overlay fed by info and logLines; either may be nil.
func New(info func() Info, logLines func() []string) *Overlay {
	return &Overlay{info: info, logLines: logLines}
}

// Draw renders enabled sections. Call after the 3D pass.
func (o *Overlay) Draw() {
	if !o.ShowFPS && !o.ShowLog {
		return
	}
	o.frameCount++
	if o.frameCount%updateInterval == 1 || o.lines == nil {
		o.lines = o.status()
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, line := range o.lines {
		w := rl.MeasureText(line, fontSize)
		rl.DrawText(line, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}

	if !o.ShowLog || o.logLines == nil {
		return
	}
	logs := o.logLines()
	if len(logs) > maxLogLines {
		logs = logs[len(logs)-maxLogLines:]
	}
	y = int32(rl.GetScreenHeight()) - int32(len(logs))*lineHeight - padding
	for _, line := range logs {
		rl.DrawText(truncate(line, maxLogRunes), padding, y, fontSize, rl.LightGray)
		y += lineHeight
	}
}

func (o *Overlay) status() []string {
	out := make([]string, 0, 4)
	if !o.ShowFPS {
		return out
	}
	out = append(out, fmt.Sprintf("FPS: %d", rl.GetFPS()))
	runtime.ReadMemStats(&o.mem)
	out = append(out, fmt.Sprintf("Mem: %.2f MiB", float64(o.mem.Alloc)/(1024*1024)))
	if o.info != nil {
		in := o.info()
		out = append(out,
			fmt.Sprintf("Ticks: %d  Failed: %d", in.Ticks, in.Failures),
			fmt.Sprintf("Objects: %d  Labels: %d  Skipped: %d", in.Objects, in.Labels, in.Skipped),
		)
		if in.LastError != "" {
			out = append(out, "Last error: "+in.LastError)
		}
	}
	return out
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}
