package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hooky/internal/randutil"
	"github.com/lox/hooky/internal/server"
	"github.com/lox/hooky/internal/store"
)

var CLI struct {
	Config   string `short:"c" long:"config" default:"hooky-server.hcl" help:"Path to HCL configuration file"`
	Addr     string `short:"a" long:"addr" help:"Server address to bind to (overrides config)"`
	LogLevel string `short:"l" long:"log-level" help:"Log level (overrides config)"`
	Seed     int64  `short:"s" long:"seed" help:"Seed the game RNG for reproducible runs"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Load configuration
	cfg, err := server.LoadServerConfig(CLI.Config)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		ctx.Exit(1)
	}

	// Apply command line overrides
	if CLI.Addr != "" {
		cfg.Server.Address = CLI.Addr
	}
	if CLI.LogLevel != "" {
		cfg.Server.LogLevel = CLI.LogLevel
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		ctx.Exit(1)
	}

	// Setup logging
	logger := log.New(os.Stderr)
	switch cfg.Server.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	roster, err := cfg.Roster()
	if err != nil {
		fmt.Printf("Invalid bot roster: %v\n", err)
		ctx.Exit(1)
	}

	logger.Info("Starting Hooky Server",
		"addr", cfg.GetServerAddress(),
		"bots", len(roster))

	rng := randutil.NewLockedFromTime()
	if CLI.Seed != 0 {
		rng = randutil.NewLocked(CLI.Seed)
	}

	// Create WebSocket server
	wsServer := server.NewServer(cfg.GetServerAddress(), logger)

	// Create game service
	gameStore := store.New(logger)
	gameService := server.NewGameService(gameStore, wsServer, logger, rng, roster, quartz.NewReal())
	wsServer.SetGameService(gameService)

	// Run the server until it fails or a shutdown signal arrives
	g, gctx := errgroup.WithContext(context.Background())
	g.Go(wsServer.Start)
	g.Go(func() error {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case sig := <-c:
			logger.Info("Shutting down server...", "signal", sig)
			return wsServer.Stop()
		case <-gctx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server failed", "error", err)
		ctx.Exit(1)
	}
}
