// Package app turns a scene config into live elements and directives. It has no GPU
// dependencies so the whole setup can be exercised without a window.
package app

import (
	"fmt"

	"scene-demo/internal/animation"
	"scene-demo/internal/config"
	"scene-demo/internal/logger"
	"scene-demo/internal/scene"
	"scene-demo/internal/text"
	"scene-demo/internal/transform"
)

// Scene is everything the frame loop needs.
type Scene struct {
	Registry   *scene.Registry
	Dispatcher *animation.Dispatcher
	// Model is the placeholder for the optional rigged model, nil when no source is configured.
	Model *scene.Object
}

// Build creates objects, labels, the model placeholder and directives from cfg.
// Directives that name an unknown mesh are logged and dropped; directives naming an
// unknown label are kept and simply never resolve.
func Build(cfg config.Config, log *logger.Logger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s := &Scene{
		Registry:   scene.NewRegistry(),
		Dispatcher: animation.NewDispatcher(),
	}

	for _, oc := range cfg.Objects {
		var o *scene.Object
		switch oc.Kind {
		case "cube":
			o = scene.NewCube(oc.Name, oc.Size.Vec(), oc.Color.Color)
		case "line":
			pts := make([]transform.Vec3, len(oc.Points))
			for i, p := range oc.Points {
				pts[i] = p.Vec()
			}
			o = scene.NewLine(oc.Name, pts, oc.Color.Color)
		}
		o.Transform.Position = oc.Position.Vec()
		id := s.Registry.Add(o)
		log.Debugf("added %s %q as #%d", o.Kind, o.Name, id)
	}

	for _, lc := range cfg.Labels {
		tc := text.Config{
			ID:       lc.ID,
			Text:     lc.Text,
			FontSize: lc.FontSize,
			Position: lc.Position.Vec(),
			MaxWidth: lc.MaxWidth,
			Font:     lc.Font,
		}
		if lc.Color != nil {
			c := lc.Color.Color
			tc.Color = &c
		}
		id := s.Registry.AddLabel(text.New(tc))
		log.Debugf("added label %q", id)
	}

	if cfg.Model.Source != "" {
		name := cfg.Model.Name
		if name == "" {
			name = "model"
		}
		m := scene.NewModel(name)
		m.Transform.Position = cfg.Model.Position.Vec()
		if sc := cfg.Model.Scale; sc > 0 {
			m.Transform.Scale = transform.V(sc, sc, sc)
		}
		s.Registry.Add(m)
		s.Model = m
	}

	for i, dc := range cfg.Directives {
		ref, ok := s.resolveTarget(dc)
		if !ok {
			log.Warnf("directive %d: no mesh named %q, dropped", i, dc.Mesh)
			continue
		}
		s.Dispatcher.Add(animation.Directive{
			Target:   ref,
			Rotation: delta(dc.Rotation),
			Position: delta(dc.Position),
		})
	}
	objects, labels := s.Registry.Len()
	log.Infof("scene ready: %d objects, %d labels, %d directives", objects, labels, s.Dispatcher.Len())
	return s, nil
}

func (s *Scene) resolveTarget(dc config.Directive) (animation.Ref, bool) {
	if dc.Label != "" {
		return animation.TextRef(dc.Label), true
	}
	id, ok := s.Registry.IDByName(dc.Mesh)
	if !ok {
		return animation.Ref{}, false
	}
	return animation.MeshRef(id), true
}

func delta(a config.Axes) animation.Delta {
	var d animation.Delta
	if a.X != nil {
		d = d.WithX(*a.X)
	}
	if a.Y != nil {
		d = d.WithY(*a.Y)
	}
	if a.Z != nil {
		d = d.WithZ(*a.Z)
	}
	return d
}
