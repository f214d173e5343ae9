package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-goblet/internal/adapter"
	"github.com/feral-file/ff-goblet/internal/config"
	"github.com/feral-file/ff-goblet/internal/logger"
	"github.com/feral-file/ff-goblet/internal/metadata"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	outputDir  = flag.String("out", "", "Output directory, overrides output_dir")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadMetadataGenConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	err = logger.Initialize(logger.Config{
		Service:     "goblet-metadata-gen",
		Environment: cfg.Environment,
		Debug:       cfg.Debug,
		SentryDSN:   cfg.SentryDSN,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := metadata.NewGenerator(metadata.Config{
		OutputDir: cfg.OutputDir,
		Workers:   cfg.Worker.WorkerPoolSize,
		Goblet: metadata.GobletTemplate{
			Description:          cfg.Goblet.Description,
			ExternalURL:          cfg.Goblet.ExternalURL,
			ImageCID:             cfg.Goblet.ImageCID,
			SellerFeeBasisPoints: cfg.Goblet.SellerFeeBasisPoints,
		},
		Gemstone: metadata.GemstoneTemplate{
			ExternalURL:          cfg.Gemstone.ExternalURL,
			ImageCID:             cfg.Gemstone.ImageCID,
			SellerFeeBasisPoints: cfg.Gemstone.SellerFeeBasisPoints,
		},
	}, adapter.NewFileSystem(), adapter.NewJSON(), adapter.NewJCS())

	summary, err := gen.Generate(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("output_dir", cfg.OutputDir))
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}

	logger.Info("Metadata generation finished",
		zap.Int("goblets", summary.Goblets),
		zap.Int("gemstones", summary.Gemstones),
	)
}
