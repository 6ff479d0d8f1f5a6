package main

import (
	"context"
	"fmt"
	"io"

	"github.com/vcrobe/userwidgets/document"
	"github.com/vcrobe/userwidgets/internal/app"
	"github.com/vcrobe/userwidgets/internal/app/components"
	"github.com/vcrobe/userwidgets/internal/config"
	"github.com/vcrobe/userwidgets/router"
	"github.com/vcrobe/userwidgets/runtime"
)

type session struct {
	cfg      *config.Config
	router   *router.Router
	renderer *runtime.RendererImpl
	title    *document.Recorder
}

func newSession(cfg *config.Config, baseURL string, out io.Writer) *session {
	title := document.NewRecorder()
	title.OnSet = func(t string) {
		fmt.Fprintf(out, "title: %s\n", t)
	}

	r := router.New(nil)
	app.RegisterRoutes(r, app.NewDeps(cfg, baseURL, title))

	return &session{
		cfg:      cfg,
		router:   r,
		renderer: runtime.NewRenderer(r, &runtime.HTMLTarget{W: out}),
		title:    title,
	}
}

func (s *session) run(ctx context.Context) error {
	if err := app.Mount(s.router, s.renderer, app.HomePath); err != nil {
		return err
	}
	home, err := current[*components.Home](s)
	if err != nil {
		return err
	}
	if err := home.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for home: %w", err)
	}

	for _i := 0; _i < s.cfg.Widgets.Clicks; _i++ {
		home.Counter().Increment()
	}
	for _i := 0; _i < s.cfg.Widgets.Toggles; _i++ {
		home.Status().ToggleStatus()
	}
	s.renderer.Flush()

	for _, id := range s.cfg.Widgets.DetailUserIDs {
		if err := s.router.Navigate(components.UserPath(id)); err != nil {
			return err
		}
		detail, err := current[*components.UserDetail](s)
		if err != nil {
			return err
		}
		if err := detail.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for user %d: %w", id, err)
		}
	}
	s.renderer.Flush()
	return nil
}

// current returns the mounted page once pending renders have finished.
func current[T runtime.Component](s *session) (T, error) {
	s.renderer.Flush()
	page, ok := s.renderer.CurrentComponent().(T)
	if !ok {
		return page, fmt.Errorf("unexpected page %T at %s", s.renderer.CurrentComponent(), s.router.CurrentPath())
	}
	return page, nil
}
