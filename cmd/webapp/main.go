//go:build js && wasm

// Command webapp mounts the user widgets into the page's #app element.
package main

import (
	"github.com/vcrobe/userwidgets/console"
	"github.com/vcrobe/userwidgets/document"
	"github.com/vcrobe/userwidgets/internal/app"
	"github.com/vcrobe/userwidgets/internal/config"
	"github.com/vcrobe/userwidgets/router"
	"github.com/vcrobe/userwidgets/runtime"
)

func main() {
	cfg := config.Default()

	// 1. Router bound to the browser history
	history := &router.BrowserHistory{}
	appRouter := router.New(history)
	app.RegisterRoutes(appRouter, app.NewDeps(cfg, cfg.API.BaseURL, document.Browser{}))

	// 2. Renderer mounting into #app, with the router as its NavigationManager
	renderer := runtime.NewRenderer(appRouter, runtime.DOMTarget{Selector: "#app"})

	// 3. Back/forward buttons re-resolve the location without a new history entry
	history.Listen(func(path string) {
		if err := appRouter.Replace(path); err != nil {
			console.Error("popstate navigation failed:", err.Error())
		}
	})

	// 4. First render from the current URL
	if err := app.Mount(appRouter, renderer, history.Location()); err != nil {
		panic("Error starting router: " + err.Error())
	}

	// Keep the Go program running
	select {}
}
