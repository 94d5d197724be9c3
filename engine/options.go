package engine

import (
	"io"
	"log"
)

// ============================================================================
// ENGINE OPTIONS - Functional options for Execute()
// ============================================================================

const (
	// DefaultCategoryLimit caps emitted categories for high-cardinality columns.
	DefaultCategoryLimit = 50
	// DefaultMaxBins caps histogram bins.
	DefaultMaxBins = 20
)

// DefaultPalette is the qualitative palette used for per-category colors.
var DefaultPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Solid colors for single-color datasets.
const (
	DefaultFillColor            = "rgba(59, 130, 246, 0.5)"
	DefaultBorderColor          = "rgb(59, 130, 246)"
	DefaultHistogramFillColor   = "rgba(16, 185, 129, 0.5)"
	DefaultHistogramBorderColor = "rgb(16, 185, 129)"
)

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Palette       []string
	CategoryLimit int
	MaxBins       int

	FillColor            string
	BorderColor          string
	HistogramFillColor   string
	HistogramBorderColor string

	Logger *log.Logger
}

// WithPalette sets the per-category palette (pie charts). Colors are reused
// cyclically when there are more categories than colors. An empty palette
// keeps the default.
func WithPalette(colors []string) Option {
	return func(c *config) {
		if len(colors) > 0 {
			c.Palette = append([]string(nil), colors...)
		}
	}
}

// WithCategoryLimit caps the number of categories emitted. n <= 0 keeps the
// default.
func WithCategoryLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.CategoryLimit = n
		}
	}
}

// WithMaxBins caps the number of histogram bins. n <= 0 keeps the default.
func WithMaxBins(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.MaxBins = n
		}
	}
}

// WithSolidColors sets fill and border for bar, line and scatter datasets.
func WithSolidColors(fill, border string) Option {
	return func(c *config) {
		if fill != "" {
			c.FillColor = fill
		}
		if border != "" {
			c.BorderColor = border
		}
	}
}

// WithHistogramColors sets fill and border for histogram datasets.
func WithHistogramColors(fill, border string) Option {
	return func(c *config) {
		if fill != "" {
			c.HistogramFillColor = fill
		}
		if border != "" {
			c.HistogramBorderColor = border
		}
	}
}

// WithLogger routes engine log lines to l. A nil logger silences them.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		c.Logger = l
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Palette:              DefaultPalette,
		CategoryLimit:        DefaultCategoryLimit,
		MaxBins:              DefaultMaxBins,
		FillColor:            DefaultFillColor,
		BorderColor:          DefaultBorderColor,
		HistogramFillColor:   DefaultHistogramFillColor,
		HistogramBorderColor: DefaultHistogramBorderColor,
		Logger:               log.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
