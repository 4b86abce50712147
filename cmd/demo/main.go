package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"scene-demo/internal/app"
	"scene-demo/internal/assets"
	"scene-demo/internal/config"
	"scene-demo/internal/debug"
	"scene-demo/internal/frameloop"
	"scene-demo/internal/graphics"
	"scene-demo/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "scene YAML file (default $SCENE_CONFIG, then "+config.DefaultPath+")")
	envPath := flag.String("env", ".env", "dotenv file with SCENE_* overrides")
	flag.Parse()

	if err := run(*configPath, *envPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, envPath string) error {
	if err := config.LoadDotEnv(envPath); err != nil {
		return err
	}
	if configPath == "" {
		configPath = os.Getenv(config.EnvConfigPath)
	}
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return err
	}

	log, err := logger.New(logger.Options{Level: cfg.Logging.Level, Dir: cfg.Logging.Dir})
	if err != nil {
		return err
	}
	defer log.Close()
	log.Infof("using scene %s", configPath)

	sc, err := app.Build(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cam := graphics.NewCamera(cfg.Camera.Fov, cfg.Camera.Position.Vec(), cfg.Camera.Target.Vec())
	renderer := graphics.NewRenderer(sc.Registry, cam)
	loop := frameloop.New(func() { sc.Dispatcher.Apply(sc.Registry) }, renderer.Draw, log)

	overlay := debug.New(func() debug.Info {
		st := loop.Stats()
		objects, labels := sc.Registry.Len()
		return debug.Info{
			Ticks:     st.Ticks,
			Failures:  st.Failures,
			LastError: st.LastError,
			Objects:   objects,
			Labels:    labels,
			Skipped:   sc.Dispatcher.Skipped(),
		}
	}, log.Lines)
	overlay.ShowFPS = cfg.Debug.ShowFPS
	overlay.ShowLog = cfg.Debug.ShowLog
	renderer.AddOverlay(overlay.Draw)

	if sc.Model != nil {
		loader := assets.NewLoader(graphics.UploadModel, cfg.Model.CacheDir, log)
		loop.Before(func() { loader.Poll() })
		loader.Load(ctx, cfg.Model.Source, func(r assets.Loaded) {
			if err := graphics.AttachModel(sc.Model, r.Handle, cfg.Model.Clip); err != nil {
				log.Errorf("%v", err)
				return
			}
			log.Infof("model %q ready with %d animation(s)", sc.Model.Name, graphics.ClipCount(r.Handle))
		}, nil)
	}

	graphics.Run(ctx, graphics.WindowOptions{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		FPS:        cfg.Window.FPS,
		Fullscreen: cfg.Window.Fullscreen,
		Background: cfg.Window.Background.Color,
	}, func() { loop.Tick() })

	st := loop.Stats()
	log.Infof("stopped after %d ticks (%d failed)", st.Ticks, st.Failures)
	return nil
}
