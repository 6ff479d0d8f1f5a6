// usertwin serves a fake of the user API the widgets read from.
//
// It answers GET /users/{id} (404 with {} when absent) and GET /user/{id}
// (200 with null when absent), plus admin routes under /admin for reseeding
// users and injecting per-user latency.
// Default port: 12120
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/vcrobe/userwidgets/console"
	"github.com/vcrobe/userwidgets/internal/config"
	"github.com/vcrobe/userwidgets/internal/usertwin"
)

const defaultPort = 12120

func main() {
	cfg, err := config.Parse("usertwin", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.Twin.Port == 0 {
		cfg.Twin.Port = defaultPort
	}

	logger := cfg.NewLogger()
	console.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	twin, err := usertwin.Open(cfg.Twin.SeedFile, cfg.Twin.Latency, logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Twin.Port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", cfg.Twin.Port, err)
	}

	logger.Info("usertwin ready",
		"port", cfg.Twin.Port,
		"latency", cfg.Twin.Latency.String(),
	)
	return twin.Serve(ctx, ln)
}
