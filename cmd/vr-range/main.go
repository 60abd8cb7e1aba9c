package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/config"
	"github.com/lixenwraith/vr-range/status"
)

const (
	logDir      = "logs"
	logFileName = "vr-range.log"
	maxLogSize  = 10 * 1024 * 1024
)

var debugFlag = flag.Bool("debug", false, "Write logs to logs/vr-range.log and show the status line")

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVR-RANGE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	reg := status.NewRegistry()

	sound := audio.NewSoundManager(cfg.Audio(), reg, logger)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the range runs silent
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sound.Cleanup()

	app, err := NewApp(AppOptions{
		Config: cfg,
		Screen: screen,
		Player: sound,
		Status: reg,
		Logger: logger,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := app.Run(ctx)
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Exited with error: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("shutdown", "summary", reg.Summary())
}

// setupLogging routes log and slog output to a rotating file in debug mode and discards it otherwise
// The terminal belongs to the HUD, so nothing may write to stdout or stderr while running
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vr-range-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	// slog.SetDefault redirects the log package through the handler, so set log's writer afterwards
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
