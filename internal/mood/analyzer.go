package mood

import (
	"image"
	"io"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// minAccentColors is the palette size below which prominentcolor is skipped.
const minAccentColors = 3

// Config controls sampling and clustering.
type Config struct {
	SampleCount  int
	ClusterCount int
	Iterations   int
}

// DefaultConfig returns the standard analysis settings.
func DefaultConfig() Config {
	return Config{
		SampleCount:  DefaultSampleCount,
		ClusterCount: DefaultClusterCount,
		Iterations:   DefaultIterations,
	}
}

// Analyzer runs the sample, cluster, score and present pipeline.
// It is safe for concurrent use.
type Analyzer struct {
	cfg    Config
	logger *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for non-fatal extraction failures.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// NewAnalyzer creates an Analyzer. A nil src uses a time-seeded source.
// Zero config fields fall back to the defaults.
func NewAnalyzer(cfg Config, src rand.Source, opts ...Option) *Analyzer {
	if cfg.SampleCount <= 0 {
		cfg.SampleCount = DefaultSampleCount
	}
	if cfg.ClusterCount <= 0 {
		cfg.ClusterCount = DefaultClusterCount
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = DefaultIterations
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}

	a := &Analyzer{
		cfg:    cfg,
		logger: zap.NewNop(),
		rng:    rand.New(src),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze decodes an image stream and returns its mood result.
func (a *Analyzer) Analyze(r io.Reader) (*Result, error) {
	return a.AnalyzeWithSamples(r, a.cfg.SampleCount)
}

// AnalyzeWithSamples is Analyze with a per-call sample count.
// A non-positive count uses the configured one.
func (a *Analyzer) AnalyzeWithSamples(r io.Reader, sampleCount int) (*Result, error) {
	img, err := DecodeImage(r)
	if err != nil {
		return nil, err
	}
	return a.analyze(img, sampleCount)
}

// AnalyzeImage returns the mood result for an already decoded image.
func (a *Analyzer) AnalyzeImage(img image.Image) (*Result, error) {
	return a.analyze(img, a.cfg.SampleCount)
}

func (a *Analyzer) analyze(img image.Image, sampleCount int) (*Result, error) {
	if sampleCount <= 0 {
		sampleCount = a.cfg.SampleCount
	}
	small := Downscale(img)
	samples, err := SamplePixels(small, sampleCount)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	dominant := DominantColors(samples, a.cfg.ClusterCount, a.cfg.Iterations, a.rng)
	scores := ScoreColors(dominant, a.rng)
	a.mu.Unlock()

	result := Present(scores, dominant)

	palette, err := ExtractPalette(samples, a.cfg.ClusterCount)
	if err != nil {
		a.logger.Debug("palette extraction failed", zap.Error(err))
	}
	result.Palette = palette

	if len(palette) < minAccentColors {
		// Flat images have no accent beyond their one colour.
		if len(palette) > 0 {
			result.AccentColor = palette[0].Color
		}
	} else {
		accent, err := AccentColor(small)
		if err != nil {
			a.logger.Debug("accent extraction failed", zap.Error(err))
		}
		result.AccentColor = accent
	}

	a.logger.Debug("mood analyzed",
		zap.Int("samples", len(samples)),
		zap.String("primary", string(result.PrimaryMood)),
	)

	return result, nil
}
