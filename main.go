package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/random"
	"github.com/danielhkuo/quickly-spin/router"
	"github.com/danielhkuo/quickly-spin/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.SlogLevel())

	// Seed 0 means crypto randomness; anything else replays the same winners
	picker := random.FromSeed(cfg.Seed)
	if cfg.Seed != 0 {
		slog.Warn("using seeded picker, spins are reproducible", "seed", cfg.Seed)
	}

	// In-memory wheel sessions
	st := store.New(store.Config{
		MaxWheels:  cfg.MaxWheels,
		MaxOptions: cfg.MaxOptions,
		Spin:       cfg.SpinConfig(),
		Duration:   cfg.AnimationDuration(),
	}, picker)

	// Create router
	mux := router.NewRouter(st, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"num_full_spins", cfg.NumFullSpins,
		"animation_duration_ms", cfg.AnimationDurationMs,
		"pointer_position_deg", cfg.PointerPositionDeg,
	)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
