// userdemo drives the user widgets natively: it mounts the home page, clicks the
// counter, toggles the status, then opens the detail page for each configured user.
// Every changed render is printed as one line of HTML and every title write as
// "title: ...".
//
// With -twin it serves a fake user API on loopback and points the widgets at it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vcrobe/userwidgets/console"
	"github.com/vcrobe/userwidgets/internal/config"
	"github.com/vcrobe/userwidgets/internal/usertwin"
)

func main() {
	cfg, err := config.Parse("userdemo", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := cfg.NewLogger()
	console.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		log.Fatalf("session failed: %v", err)
	}
}

// run plays the session against cfg.API.BaseURL, or against an embedded twin
// when cfg.Twin.Enabled. The twin is shut down once the session ends.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	g, ctx := errgroup.WithContext(ctx)
	twinCtx, stopTwin := context.WithCancel(ctx)
	defer stopTwin()

	baseURL := cfg.API.BaseURL
	if cfg.Twin.Enabled {
		twin, err := usertwin.Open(cfg.Twin.SeedFile, cfg.Twin.Latency, logger)
		if err != nil {
			return err
		}
		ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", cfg.Twin.Port))
		if err != nil {
			return fmt.Errorf("listening for twin: %w", err)
		}
		baseURL = "http://" + ln.Addr().String()
		g.Go(func() error {
			return twin.Serve(twinCtx, ln)
		})
	}

	g.Go(func() error {
		defer stopTwin()
		logger.Info("starting session", "api", baseURL)
		return newSession(cfg, baseURL, out).run(ctx)
	})
	return g.Wait()
}
