package graphics

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// WindowOptions configures the host surface.
type WindowOptions struct {
	Width      int32
	Height     int32
	Title      string
	FPS        int32
	Fullscreen bool
	Background colorful.Color
}

// Run opens the window and calls frame once per display frame, between BeginDrawing and
// EndDrawing with the background already cleared. It returns when the window is closed
// or ctx is cancelled.
func Run(ctx context.Context, opts WindowOptions, frame func()) {
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), opts.Title)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
		rl.InitWindow(opts.Width, opts.Height, opts.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // close via window button or signal
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(fps)

	bg := color(opts.Background)
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return
		}
		rl.BeginDrawing()
		rl.ClearBackground(bg)
		frame()
		rl.EndDrawing()
	}
}
