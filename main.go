package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wonderlens/config"
	"wonderlens/generator"
	"wonderlens/server"
	"wonderlens/store"
)

func main() {
	configPath := flag.String("config", "", "path to config.json (optional; env vars override)")
	addr := flag.String("addr", "", "http listen address (overrides config server_addr / PORT)")
	verbose := flag.Bool("v", false, "enable debug logs")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ServerAddr = *addr
	}

	logger, err := buildLogger(cfg, *verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())
	logger.Info("document store ready",
		zap.String("driver", cfg.Store.Driver),
		zap.String("database", st.Name()),
	)

	llm, err := buildLLM(cfg)
	if err != nil {
		return err
	}
	if llm == nil {
		logger.Info("no llm credential configured; mantra and oracle use fallback templates")
	} else {
		logger.Info("llm provider enabled",
			zap.String("provider", cfg.LLM.Provider),
			zap.String("model", cfg.LLM.Model),
			zap.Duration("timeout", time.Duration(cfg.LLM.Timeout)),
		)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := generator.NewMetrics(reg)
	if err != nil {
		return err
	}

	gen := generator.New(llm,
		generator.WithTimeout(time.Duration(cfg.LLM.Timeout)),
		generator.WithLogger(logger.Named("generator")),
		generator.WithMetrics(metrics),
	)
	srv, err := server.New(gen, st, server.Options{
		Logger:         logger.Named("http"),
		Registry:       reg,
		DatabaseURLSet: cfg.Store.DatabaseURL != "",
	})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting web server", zap.String("addr", cfg.ServerAddr))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 15*time.Second)
	defer stop()
	return httpSrv.Shutdown(shutdownCtx)
}

func buildLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	if verbose || cfg.IsDevelopment() {
		zc := zap.NewDevelopmentConfig()
		if !verbose && cfg.LogLevel != "debug" {
			zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
		return zc.Build()
	}
	zc := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return store.OpenMongo(connectCtx, cfg.Store.DatabaseURL, cfg.Store.DatabaseName)
	case config.DriverSQLite:
		return store.OpenSQLite(cfg.Store.DataDir)
	default:
		return nil, fmt.Errorf("store driver %s not supported", cfg.Store.Driver)
	}
}

// buildLLM returns nil when no credential is configured, which selects the
// fallback templates.
func buildLLM(cfg *config.Config) (generator.LLMClient, error) {
	if !cfg.LLMEnabled() {
		return nil, nil
	}
	return generator.NewLLM(generator.LLMSettings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	})
}
