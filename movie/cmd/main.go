package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/mkvy/videoclub/movie/internal/controller/movie"
	"github.com/mkvy/videoclub/movie/internal/events/kafka"
	grpchandler "github.com/mkvy/videoclub/movie/internal/handler/grpc"
	httphandler "github.com/mkvy/videoclub/movie/internal/handler/http"
	"github.com/mkvy/videoclub/movie/internal/repository/memory"
	"github.com/mkvy/videoclub/pkg/discovery"
	"github.com/mkvy/videoclub/pkg/discovery/consul"
	memoryregistry "github.com/mkvy/videoclub/pkg/discovery/memory"
	"github.com/mkvy/videoclub/pkg/limiter"
	"github.com/mkvy/videoclub/pkg/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const serviceName = "movie"

func main() {
	configPath := flag.String("config", "./movie/configs/base.yaml", "path to the yaml configuration")
	flag.Parse()

	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout"}
	logger, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.String("path", *configPath), zap.Error(err))
	}
	logger.Info("Starting the movie service", zap.Int("port", cfg.API.Port), zap.Int("grpcPort", cfg.GRPC.Port))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tp *tracesdk.TracerProvider
	if cfg.Jaeger.URL != "" {
		if tp, err = tracing.NewJaegerProvider(cfg.Jaeger.URL, serviceName); err != nil {
			logger.Fatal("Failed to initialize Jaeger provider", zap.Error(err))
		}
	} else {
		tp = tracing.NewNoopProvider(serviceName)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shut down tracer provider", zap.Error(err))
		}
	}()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	var registry discovery.Registry
	if cfg.Registry.Address != "" {
		if registry, err = consul.NewRegistry(cfg.Registry.Address); err != nil {
			logger.Fatal("Failed to create consul registry", zap.Error(err))
		}
	} else {
		registry = memoryregistry.NewRegistry()
	}
	instanceID := discovery.GenerateInstanceID(serviceName)
	if err := registry.Register(ctx, instanceID, serviceName, fmt.Sprintf("localhost:%d", cfg.API.Port)); err != nil {
		logger.Fatal("Failed to register service", zap.Error(err))
	}
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := registry.ReportHealthyState(instanceID, serviceName); err != nil {
					logger.Error("Failed to report healthy state", zap.Error(err))
				}
			}
		}
	}()
	defer registry.Deregister(context.Background(), instanceID, serviceName)

	repo := memory.New(cfg.seedMovies()...)
	var ctrl *movie.Controller
	if cfg.Kafka.Brokers != "" {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
		if err != nil {
			logger.Fatal("Failed to create kafka publisher", zap.Error(err))
		}
		defer publisher.Close()
		ctrl = movie.New(repo, publisher, logger)

		ingester, err := kafka.NewIngester(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.IngestTopic, logger)
		if err != nil {
			logger.Fatal("Failed to create kafka ingester", zap.Error(err))
		}
		go func() {
			if err := ctrl.StartIngestion(ctx, ingester); err != nil {
				logger.Error("Movie ingestion stopped", zap.Error(err))
			}
		}()
	} else {
		ctrl = movie.New(repo, nil, logger)
	}

	h := httphandler.New(ctrl, logger)
	mux := http.NewServeMux()
	h.Register(mux)
	httpSrv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.API.Port),
		Handler: httphandler.Chain(mux,
			httphandler.Trace(tp.Tracer(serviceName)),
			httphandler.Logging(logger),
			httphandler.Recover(logger),
			httphandler.RateLimit(limiter.New(cfg.API.RateLimit, cfg.API.Burst)),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	grpcSrv := grpchandler.New(serviceName, limiter.New(cfg.API.RateLimit, cfg.API.Burst))
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
	if err != nil {
		logger.Fatal("Failed to listen", zap.Error(err))
	}
	go func() {
		if err := grpcSrv.Server().Serve(lis); err != nil {
			logger.Error("gRPC server stopped", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s := <-sigChan
		logger.Info("Attempting graceful shutdown", zap.String("signal", s.String()))
		h.SetReady(false)
		grpcSrv.SetServing(false)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down the HTTP server", zap.Error(err))
		}
		grpcSrv.GracefulStop()
		cancel()
		logger.Info("Gracefully stopped the movie service")
	}()
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to serve HTTP", zap.Error(err))
	}
	wg.Wait()
}
