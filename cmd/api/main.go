package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-goblet/internal/adapter"
	"github.com/feral-file/ff-goblet/internal/api/middleware"
	"github.com/feral-file/ff-goblet/internal/api/rest"
	"github.com/feral-file/ff-goblet/internal/api/server"
	"github.com/feral-file/ff-goblet/internal/config"
	"github.com/feral-file/ff-goblet/internal/gemstone"
	"github.com/feral-file/ff-goblet/internal/goblet"
	"github.com/feral-file/ff-goblet/internal/logger"
	"github.com/feral-file/ff-goblet/internal/messaging"
	"github.com/feral-file/ff-goblet/internal/metrics"
	"github.com/feral-file/ff-goblet/internal/providers/jetstream"
	"github.com/feral-file/ff-goblet/internal/registry"
	"github.com/feral-file/ff-goblet/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Service:         "goblet-api",
		Environment:     cfg.Environment,
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "goblet-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	// Match GOMAXPROCS to the container CPU quota
	if _, err := maxprocs.Set(maxprocs.Logger(logger.Default().Sugar().Infof)); err != nil {
		logger.WarnCtx(ctx, "Failed to set GOMAXPROCS", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Starting Goblet API")

	// Connect to database
	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN(), cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}

	if cfg.Database.Driver != store.DriverSQLite {
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
	}

	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Connect to NATS JetStream, events are only persisted when no URL is configured
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			CreateStream:   cfg.NATS.CreateStream,
			PublishTimeout: cfg.NATS.PublishTimeout,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, ledger events will not be published")
		publisher = messaging.NewNopPublisher()
	}
	defer publisher.Close()

	// Initialize metrics
	var (
		m       *metrics.Metrics
		promReg *prometheus.Registry
	)
	if cfg.MetricsEnabled {
		promReg = prometheus.NewRegistry()
		promReg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(promReg)
	}

	admin := common.HexToAddress(cfg.AdminAddress)
	epoch, err := cfg.Goblet.ParseEpoch()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid goblet epoch", zap.Error(err))
	}

	// Initialize the ledgers
	ledger := gemstone.NewLedger(gemstone.Config{
		AdminAddress:  admin,
		UnredeemedCID: cfg.Gemstone.UnredeemedCID,
		RedeemedCID:   cfg.Gemstone.RedeemedCID,
	}, dataStore, clock, publisher, m)
	if err := ledger.Init(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to initialize gemstone ledger", zap.Error(err))
	}

	// Seed the whitelist
	if cfg.WhitelistPath != "" {
		entries, err := registry.NewWhitelistLoader(adapter.NewFileSystem(), jsonAdapter).Load(cfg.WhitelistPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load whitelist", zap.Error(err), zap.String("path", cfg.WhitelistPath))
		}
		if _, _, err := registry.SeedWhitelist(ctx, ledger, admin, entries); err != nil {
			logger.FatalCtx(ctx, "Failed to seed whitelist", zap.Error(err))
		}
	}

	minter := goblet.NewMinter(goblet.Config{
		AdminAddress: admin,
		DefaultCID:   cfg.Goblet.DefaultCID,
		YearWindow:   cfg.Goblet.YearWindow,
		Epoch:        epoch,
	}, dataStore, clock, publisher, m)
	deployedAt, err := minter.Deploy(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to deploy goblet minter", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Goblet minter ready",
		zap.String("admin", admin.Hex()),
		zap.Time("epoch", deployedAt),
		zap.Duration("year_window", cfg.Goblet.YearWindow),
	)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			Issuer:       cfg.Auth.Issuer,
		},
	}

	// Create and start server
	handler := rest.NewHandler(cfg.Debug, ledger, minter, dataStore)
	var gatherer prometheus.Gatherer
	if promReg != nil {
		gatherer = promReg
	}
	srv := server.New(serverConfig, handler, m, gatherer)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	case <-publisher.CloseChan():
		logger.WarnCtx(ctx, "Event publisher closed")
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
