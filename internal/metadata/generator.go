package metadata

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-goblet/internal/adapter"
	"github.com/feral-file/ff-goblet/internal/domain"
	"github.com/feral-file/ff-goblet/internal/logger"
)

// Output directories under Config.OutputDir, one per published CID
const (
	GOBLET_DIR              = "goblet"
	GEMSTONE_UNREDEEMED_DIR = "gemstone-unredeemed"
	GEMSTONE_REDEEMED_DIR   = "gemstone-redeemed"
)

// Config holds the generator configuration
type Config struct {
	OutputDir string
	Workers   int
	Goblet    GobletTemplate
	Gemstone  GemstoneTemplate
}

// Summary reports the documents written by a run
type Summary struct {
	Goblets   int
	Gemstones int
}

// Generator writes the goblet and gemstone metadata sets
type Generator interface {
	// Generate writes every document, canonicalised, and returns how many were written
	Generate(ctx context.Context) (*Summary, error)
}

type generator struct {
	config Config
	fs     adapter.FileSystem
	json   adapter.JSON
	jcs    adapter.JCS
}

// NewGenerator creates a metadata generator
func NewGenerator(cfg Config, fs adapter.FileSystem, json adapter.JSON, jcs adapter.JCS) Generator {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &generator{
		config: cfg,
		fs:     fs,
		json:   json,
		jcs:    jcs,
	}
}

// job is one document to write
type job struct {
	path     string
	document Document
	goblet   bool
}

// Generate writes every document using a bounded worker pool
func (g *generator) Generate(ctx context.Context) (*Summary, error) {
	jobs, err := g.jobs()
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{GOBLET_DIR, GEMSTONE_UNREDEEMED_DIR, GEMSTONE_REDEEMED_DIR} {
		if err := g.fs.MkdirAll(filepath.Join(g.config.OutputDir, dir), 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	logger.InfoCtx(ctx, "Generating metadata documents",
		zap.String("output_dir", g.config.OutputDir),
		zap.Int("documents", len(jobs)),
		zap.Int("workers", g.config.Workers),
	)

	pool := pond.NewPool(g.config.Workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	var goblets, gemstones atomic.Int32
	group := pool.NewGroup()
	for _, j := range jobs {
		group.SubmitErr(func() error {
			if err := g.write(j.path, j.document); err != nil {
				return err
			}
			if j.goblet {
				goblets.Add(1)
			} else {
				gemstones.Add(1)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Goblets:   int(goblets.Load()),
		Gemstones: int(gemstones.Load()),
	}

	logger.InfoCtx(ctx, "Metadata documents generated",
		zap.Int("goblets", summary.Goblets),
		zap.Int("gemstones", summary.Gemstones),
	)

	return summary, nil
}

// jobs lists every document of the three sets
func (g *generator) jobs() ([]job, error) {
	jobs := make([]job, 0, domain.GOBLET_MAX_SUPPLY+2*domain.GEM_TYPE_COUNT*domain.GEM_SLOTS_PER_TYPE)

	for id := uint64(1); id <= domain.GOBLET_MAX_SUPPLY; id++ {
		name := fmt.Sprintf("%d_%d.json", id, domain.GobletCalendarYear(id))
		jobs = append(jobs, job{
			path:     filepath.Join(g.config.OutputDir, GOBLET_DIR, name),
			document: GobletDocument(g.config.Goblet, id),
			goblet:   true,
		})
	}

	for _, gemType := range domain.AllGemTypes() {
		for id := gemType.FirstTokenID(); id <= gemType.LastTokenID(); id++ {
			name := domain.GemstoneMetadataName(id) + ".json"
			for _, redeemed := range []bool{false, true} {
				doc, err := GemstoneDocument(g.config.Gemstone, id, redeemed)
				if err != nil {
					return nil, err
				}
				dir := GEMSTONE_UNREDEEMED_DIR
				if redeemed {
					dir = GEMSTONE_REDEEMED_DIR
				}
				jobs = append(jobs, job{
					path:     filepath.Join(g.config.OutputDir, dir, name),
					document: doc,
				})
			}
		}
	}

	return jobs, nil
}

// write canonicalises a document and writes it, removing partial files on failure
func (g *generator) write(path string, doc Document) error {
	data, err := g.json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", path, err)
	}

	canonical, err := g.jcs.Transform(data)
	if err != nil {
		return fmt.Errorf("failed to canonicalize document %s: %w", path, err)
	}

	f, err := g.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.Write(canonical); err != nil {
		_ = f.Close()
		_ = g.fs.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		_ = g.fs.Remove(path)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
