package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"shelter-registry/internal/adapters/shelterapi"
	"shelter-registry/internal/platform/cache"
	"shelter-registry/internal/platform/config"
	"shelter-registry/internal/platform/logger"
	"shelter-registry/internal/shelterform"
	"shelter-registry/internal/tui"
)

// El TUI ocupa stdout, así que el log va a archivo salvo que LOG_FILE diga otra cosa.
const defaultLogFile = "shelterform.log"

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "YAML config file (optional)")
	plain := flag.Bool("plain", false, "use line prompts instead of the full-screen form")
	flag.Parse()

	if err := run(*configPath, *plain); err != nil {
		fmt.Fprintf(os.Stderr, "shelterform: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, plain bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logFile := strings.TrimSpace(cfg.Log.File)
	if logFile == "" {
		logFile = defaultLogFile
	}
	lg := logger.New(logger.Options{
		Level:       logger.ParseLevel(cfg.Log.Level),
		Format:      logger.ParseFormat(cfg.Log.Format),
		App:         cfg.App,
		OutputPaths: []string{logFile},
	})
	defer func() { _ = logger.Sync(lg) }()

	client, err := shelterapi.New(shelterapi.Config{
		BaseURL:     cfg.Client.BaseURL,
		Timeout:     cfg.Client.Timeout,
		Token:       cfg.Client.Token,
		DebugUserID: cfg.Client.DebugUserID,
	})
	if err != nil {
		return err
	}

	store := cache.New(cfg.Client.CacheTTL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lg.Info("shelterform started", map[string]any{
		"api":   cfg.Client.BaseURL,
		"plain": plain,
	})

	if plain {
		wf := shelterform.New(client, tui.PrintNotifier(os.Stdout),
			shelterform.WithInvalidator(store.Clear))
		return tui.RunPlain(ctx, wf)
	}

	toasts := shelterform.NewChanNotifier(8)
	wf := shelterform.New(client, toasts, shelterform.WithInvalidator(store.Clear))

	return tui.Run(ctx, tui.Deps{
		Workflow: wf,
		Toasts:   toasts,
		Shelters: client,
		Cache:    store,
		Log:      lg,
	})
}
