// Package main is the entry point for the roster web server. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/member-roster/internal/adapters/flash"
	adapthttp "github.com/jsamuelsen11/member-roster/internal/adapters/http"
	"github.com/jsamuelsen11/member-roster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/member-roster/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/member-roster/internal/adapters/http/view"
	"github.com/jsamuelsen11/member-roster/internal/adapters/storage"
	"github.com/jsamuelsen11/member-roster/internal/app"
	"github.com/jsamuelsen11/member-roster/internal/platform/config"
	"github.com/jsamuelsen11/member-roster/internal/platform/health"
	"github.com/jsamuelsen11/member-roster/internal/platform/logging"
	"github.com/jsamuelsen11/member-roster/internal/platform/telemetry"
	"github.com/jsamuelsen11/member-roster/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(config.DefaultDotEnvPath); err != nil {
		return err
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph, opening the store
	// and flash backends).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	backend := do.MustInvoke[storage.Backend](injector)
	defer closeLogged(logger, "member store", backend.Close)

	fb := do.MustInvoke[*flashBackend](injector)
	defer closeLogged(logger, "flash backend", fb.close)

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(backend)
	if checker, ok := fb.FlashStore.(ports.HealthChecker); ok {
		registry.Register(checker)
	}

	logger.Info("roster ready",
		slog.String("profile", profile),
		slog.String("store_driver", cfg.Store.Driver),
		slog.String("flash_backend", cfg.Flash.Backend),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// flashBackend pairs the configured FlashStore with the func that releases
// its connection.
type flashBackend struct {
	ports.FlashStore
	close func() error
}

func closeLogged(logger *slog.Logger, what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error("failed to close "+what, slog.Any("error", err))
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (storage.Backend, error) {
		backend, err := storage.Open(ctx, cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("opening member store: %w", err)
		}
		return backend, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MemberStore, error) {
		backend := do.MustInvoke[storage.Backend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return storage.NewInstrumented(backend, cfg.Store.Driver, metrics), nil
	})

	do.Provide(injector, func(_ do.Injector) (*flashBackend, error) {
		store, closeFn, err := flash.Open(ctx, cfg.Flash)
		if err != nil {
			return nil, fmt.Errorf("opening flash backend: %w", err)
		}
		return &flashBackend{FlashStore: store, close: closeFn}, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MemberService, error) {
		store := do.MustInvoke[ports.MemberStore](i)
		return app.NewMemberService(store, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*view.Renderer, error) {
		return view.New()
	})

	do.Provide(injector, func(i do.Injector) (*handlers.MemberHandler, error) {
		svc := do.MustInvoke[ports.MemberService](i)
		fb := do.MustInvoke[*flashBackend](i)
		views := do.MustInvoke[*view.Renderer](i)
		return handlers.NewMemberHandler(svc, fb.FlashStore, views), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.MemberAPIHandler, error) {
		svc := do.MustInvoke[ports.MemberService](i)
		return handlers.NewMemberAPIHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		memberH := do.MustInvoke[*handlers.MemberHandler](i)
		apiH := do.MustInvoke[*handlers.MemberAPIHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		fb := do.MustInvoke[*flashBackend](i)

		stack := middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.MethodOverride(),
			middleware.Flash(fb.FlashStore),
		)
		return adapthttp.NewRouter(memberH, apiH, healthH, stack), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
