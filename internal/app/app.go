// Package app registers the widget pages with the router.
package app

import (
	"strconv"

	"github.com/vcrobe/userwidgets/console"
	"github.com/vcrobe/userwidgets/document"
	"github.com/vcrobe/userwidgets/internal/app/components"
	"github.com/vcrobe/userwidgets/internal/config"
	"github.com/vcrobe/userwidgets/router"
	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/userapi"
)

// Route patterns.
const (
	HomePath       = "/"
	UserDetailPath = "/users/{id}"
)

// Deps are the collaborators injected into the pages.
type Deps struct {
	Greeting      string
	Profile       components.UserSource
	Status        components.UserSource
	ProfileUserID int
	StatusUserID  int
	Title         document.TitleSink
}

// NewDeps builds the user clients described by cfg against baseURL.
func NewDeps(cfg *config.Config, baseURL string, title document.TitleSink) Deps {
	timeout := userapi.WithTimeout(cfg.API.Timeout)
	return Deps{
		Greeting:      cfg.Widgets.Greeting,
		Profile:       userapi.New(baseURL, userapi.WithPath(cfg.API.ProfilePath), timeout),
		Status:        userapi.New(baseURL, userapi.WithPath(cfg.API.StatusPath), timeout),
		ProfileUserID: cfg.Widgets.ProfileUserID,
		StatusUserID:  cfg.Widgets.StatusUserID,
		Title:         title,
	}
}

// RegisterRoutes maps "/" to Home, "/users/{id}" to UserDetail and unknown paths to NotFound.
func RegisterRoutes(r *router.Router, d Deps) {
	r.Handle(HomePath, func(params map[string]string) runtime.Component {
		return &components.Home{
			Greeting:      d.Greeting,
			Users:         d.Profile,
			StatusUsers:   d.Status,
			ProfileUserID: d.ProfileUserID,
			StatusUserID:  d.StatusUserID,
			Title:         d.Title,
		}
	})

	r.Handle(UserDetailPath, func(params map[string]string) runtime.Component {
		id, err := strconv.Atoi(params["id"])
		if err != nil {
			console.Warn("Error parsing {id} parameter in route `/users/{id}`: ", err.Error())
		}
		return &components.UserDetail{Users: d.Profile, UserID: id}
	})

	r.HandleNotFound(func(params map[string]string) runtime.Component {
		return &components.NotFound{Path: params["path"]}
	})
}

// Mount starts r at path, rendering each route change into renderer.
func Mount(r *router.Router, renderer *runtime.RendererImpl, path string) error {
	return r.Start(renderer.SetCurrentComponent, path)
}
