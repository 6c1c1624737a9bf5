// Command hearsay is the transcript correction server. It repairs
// mistranscribed proper nouns in speech-to-text output against a
// user-supplied dictionary and exposes the pipeline over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hearsay-tools/hearsay/internal/api"
	"github.com/hearsay-tools/hearsay/internal/config"
	"github.com/hearsay-tools/hearsay/internal/health"
	"github.com/hearsay-tools/hearsay/internal/observe"
	"github.com/hearsay-tools/hearsay/internal/transcript"
)

func main() {
	os.Exit(run())
}

// serverState bundles everything derived from one config + dictionary load.
// Hot reloads swap the whole state atomically.
type serverState struct {
	corrector  *transcript.Corrector
	dictionary []string
	handler    http.Handler
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// ── Load configuration ────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "hearsay: config file %q not found\n", *configPath)
		} else {
			fmt.Fprintf(os.Stderr, "hearsay: %v\n", err)
		}
		return 1
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	level := new(slog.LevelVar)
	level.Set(slogLevel(cfg.Server.LogLevel))
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("hearsay starting",
		"config", *configPath,
		"listen_addr", cfg.Server.ListenAddr,
		"log_level", cfg.Server.LogLevel,
		"dictionary", cfg.Dictionary.Path,
	)

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName: "hearsay",
	})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	// ── Correction state ──────────────────────────────────────────────────────
	state, err := buildState(cfg)
	if err != nil {
		slog.Error("failed to build correction state", "err", err)
		return 1
	}
	var current atomic.Pointer[serverState]
	current.Store(state)

	// ── Config hot reload ─────────────────────────────────────────────────────
	watcher, err := config.NewWatcher(*configPath, func(old, new *config.Config) {
		d := config.Diff(old, new)
		if d.Empty() {
			return
		}
		if d.LogLevelChanged {
			level.Set(slogLevel(d.NewLogLevel))
			slog.Info("log level changed", "level", d.NewLogLevel)
		}
		if d.CorrectionChanged || d.DictionaryPathChanged {
			next, err := buildState(new)
			if err != nil {
				slog.Warn("config reload: keeping previous correction state", "err", err)
				return
			}
			current.Store(next)
			slog.Info("correction state rebuilt",
				"dictionary_entries", len(next.dictionary),
			)
		}
	})
	if err != nil {
		slog.Error("failed to start config watcher", "err", err)
		return 1
	}
	defer watcher.Stop()

	// ── HTTP routes ───────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.Handle("/v1/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current.Load().handler.ServeHTTP(w, r)
	}))

	checks := health.New(
		health.Checker{Name: "dictionary", Check: func(context.Context) error {
			if len(current.Load().dictionary) == 0 {
				return errors.New("dictionary is empty")
			}
			return nil
		}},
		health.PipelineChecker(pipelineFunc(func(ctx context.Context, text string, dictionary []string) (*transcript.Result, error) {
			return current.Load().corrector.Correct(ctx, text, dictionary)
		})),
	)
	checks.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := observe.Middleware(observe.DefaultMetrics())(mux)

	server := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// ── Serve ─────────────────────────────────────────────────────────────────
	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Server.ListenAddr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "err", err)
			return 1
		}
	case <-ctx.Done():
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	slog.Info("shutdown signal received, stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

// buildState loads the dictionary and assembles the corrector and API handler
// for one configuration.
func buildState(cfg *config.Config) (*serverState, error) {
	dictionary, err := config.LoadDictionary(cfg.Dictionary.Path)
	if err != nil {
		return nil, err
	}
	if len(dictionary) == 0 {
		slog.Warn("dictionary is empty; nothing will be corrected", "path", cfg.Dictionary.Path)
	}

	corr := cfg.Correction
	tc := transcript.Config{
		Sensitivity:          corr.Sensitivity,
		MaxCorrections:       corr.MaxCorrectionsPerText,
		PreserveOriginalCase: corr.PreserveOriginalCase != nil && *corr.PreserveOriginalCase,
		Timeout:              corr.Timeout(),
	}
	corrector := transcript.NewCorrector(
		transcript.WithConfig(tc),
		transcript.WithCacheSize(corr.CacheSize),
		transcript.WithBruteForceLimit(corr.BruteForceLimit),
		transcript.WithVariations(corr.EnableVariations == nil || *corr.EnableVariations),
		transcript.WithNoiseNormalization(corr.EnableNoiseNormalization),
	)

	return &serverState{
		corrector:  corrector,
		dictionary: dictionary,
		handler:    api.New(corrector, dictionary, tc).Handler(),
	}, nil
}

// pipelineFunc adapts a function to the [transcript.Pipeline] interface.
type pipelineFunc func(ctx context.Context, text string, dictionary []string) (*transcript.Result, error)

func (f pipelineFunc) Correct(ctx context.Context, text string, dictionary []string) (*transcript.Result, error) {
	return f(ctx, text, dictionary)
}

// slogLevel maps a config log level onto slog's scale.
func slogLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogDebug:
		return slog.LevelDebug
	case config.LogWarn:
		return slog.LevelWarn
	case config.LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
