package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/DalgoT4D/DalgoLite-sub001/config"
	"github.com/DalgoT4D/DalgoLite-sub001/engine"
	"github.com/DalgoT4D/DalgoLite-sub001/helpers"
	"github.com/DalgoT4D/DalgoLite-sub001/render"
	"github.com/DalgoT4D/DalgoLite-sub001/schema"
)

// ============================================================================
// DALGOLITE CLI - Chart series for any table
// ============================================================================

const version = "0.3.0"

const usageText = `DalgoLite - chart series for any table

Usage:
  dalgolite --file sales.csv --chart bar --x region --y amount --agg sum
  dalgolite --file sales.csv --chart histogram --x amount --format html --out hist.html
  dalgolite --sqlite sales.db --query "SELECT * FROM sales" --x region --format csv
  dalgolite --config dashboard.yaml --dashboard --format html --out dashboard.html
  dalgolite --file sales.csv --spec '{"chartType":"pie","xColumn":"region"}'
  dalgolite --file sales.csv --describe --format pretty

Flags:
`

const usageFooter = `
Environment:
  DALGOLITE_PALETTE          Comma-separated pie palette
  DALGOLITE_CATEGORY_LIMIT   Max categories per chart (default 50)
  DALGOLITE_MAX_BINS         Max histogram bins (default 20)
  DALGOLITE_QUIET            Silence run logs (true/false)

Formats:
  json      Full JSON output (default)
  pretty    Pretty-printed JSON
  text      One-line summary per chart
  csv       Label + value columns (ready for Sheets/Excel)
  html      Interactive ECharts page
`

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if errors.Is(err, errUsage) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err != nil {
		fatalf("%v", err)
	}
}

// options holds parsed command-line flags.
type options struct {
	configPath string
	file       string
	sqlite     string
	query      string
	dashboard  bool
	describe   bool
	format     string
	outFile    string

	spec          engine.ChartSpec
	specJSON      string
	filters       filterFlag
	palette       string
	categoryLimit int
	maxBins       int
	quiet         bool
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	o := &options{filters: filterFlag{}}
	fs := flag.NewFlagSet("dalgolite", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// ── Flags ─────────────────────────────────────────────────────────────
	fs.StringVar(&o.configPath, "config", "", "Path to YAML/JSON config (palette, limits, dashboard charts)")
	fs.StringVar(&o.file, "file", "", "Path to data file (.csv, .json, .db, .sqlite)")
	fs.StringVar(&o.sqlite, "sqlite", "", "Path to SQLite database (use with --query)")
	fs.StringVar(&o.query, "query", "", "SQL query for SQLite sources")
	fs.BoolVar(&o.dashboard, "dashboard", false, "Run every chart from the config file")
	fs.BoolVar(&o.describe, "describe", false, "Print the column profile and exit")
	fs.StringVar(&o.format, "format", "json", "Output format: json, pretty, text, csv, html")
	fs.StringVar(&o.outFile, "out", "", "Write output to file instead of stdout")

	chartType := fs.String("chart", "bar", "Chart type: bar, line, pie, scatter, histogram")
	fs.StringVar(&o.spec.XColumn, "x", "", "Category (or histogram) column")
	fs.StringVar(&o.spec.YColumn, "y", "", "Value column (optional)")
	agg := fs.String("agg", "", "Aggregation: count, sum, avg, min, max, median")
	fs.StringVar(&o.spec.Title, "title", "", "Chart title")
	fs.Var(o.filters, "filter", "Row filter column=v1,v2 (repeatable)")
	fs.StringVar(&o.specJSON, "spec", "", "Chart spec as JSON (replaces --chart/--x/--y/--agg/--filter)")

	fs.StringVar(&o.palette, "palette", "", "Comma-separated pie palette")
	fs.IntVar(&o.categoryLimit, "category-limit", 0, "Max categories per chart")
	fs.IntVar(&o.maxBins, "max-bins", 0, "Max histogram bins")
	fs.BoolVar(&o.quiet, "quiet", false, "Silence run logs")
	showVersion := fs.Bool("version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
		fmt.Fprint(stderr, usageFooter)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if *showVersion {
		return nil, fs, nil
	}
	if !validFormat(o.format) {
		return nil, nil, fmt.Errorf("%w: unknown format %q (want json, pretty, text, csv, html)", errUsage, o.format)
	}

	o.spec.ChartType = engine.ChartType(*chartType)
	o.spec.Aggregation = engine.Aggregation(*agg)
	if len(o.filters) > 0 {
		o.spec.Filters = o.filters
	}
	return o, fs, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o == nil {
		fmt.Fprintf(stdout, "dalgolite %s\n", version)
		return nil
	}

	// ── Config: defaults < file < env < flags ─────────────────────────────
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return err
	}
	applyFlagOverrides(fs, o, &cfg)

	logger := log.New(stderr, "", log.LstdFlags)
	if cfg.Quiet {
		logger.SetOutput(io.Discard)
	}

	// ── Read data ─────────────────────────────────────────────────────────
	table, err := loadTable(ctx, o, cfg)
	if err != nil {
		return err
	}
	logger.Printf("📥 Loaded %d rows × %d columns", len(table.Rows), len(table.Columns))

	view := table.View()
	profile := schema.ProfileTable(view, schema.ProfileOptions{
		Name:          cfg.Source.File,
		CategoryLimit: cfg.CategoryLimit,
	})

	// ── Describe mode ─────────────────────────────────────────────────────
	if o.describe {
		writer, closeOut, err := openOutput(o.outFile, stdout)
		if err != nil {
			return err
		}
		defer closeOut()
		if o.format == "text" {
			writeProfileText(writer, profile)
			return nil
		}
		return writeJSON(writer, profile, o.format)
	}

	// ── Charts ────────────────────────────────────────────────────────────
	charts, err := selectCharts(o, cfg)
	if err != nil {
		return err
	}

	results := make([]chartOutput, 0, len(charts))
	for i, chart := range charts {
		for _, w := range profile.Check(chart.ChartSpec) {
			logger.Printf("⚠️ %s: %s", chart.DisplayName(i), w.Message)
		}
		series, err := engine.Execute(chart.ChartSpec, view, cfg.EngineOptions(logger)...)
		if err != nil {
			return fmt.Errorf("%s: %w", chart.DisplayName(i), err)
		}
		results = append(results, chartOutput{
			Name:    chart.DisplayName(i),
			Spec:    engine.NormalizeChartSpec(chart.ChartSpec),
			Series:  series,
			Summary: engine.Summarize(series),
		})
	}

	// ── Render output ─────────────────────────────────────────────────────
	// The output file is only created once every chart has computed.
	writer, closeOut, err := openOutput(o.outFile, stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	switch o.format {
	case "csv":
		err = writeCSV(writer, results)
	case "text":
		writeText(writer, results)
	case "html":
		err = writeHTML(writer, cfg.Dashboard, results)
	case "json", "pretty":
		if len(results) == 1 && !o.dashboard {
			err = writeJSON(writer, results[0], o.format)
		} else {
			err = writeJSON(writer, results, o.format)
		}
	}
	if err != nil {
		return err
	}
	if o.outFile != "" {
		logger.Printf("📄 %s written to %s", strings.ToUpper(o.format), o.outFile)
	}
	return nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func validFormat(format string) bool {
	switch format {
	case "json", "pretty", "text", "csv", "html":
		return true
	}
	return false
}

// applyFlagOverrides copies flags the user set explicitly onto cfg, so a
// flag left at its default never masks a config file or env value.
func applyFlagOverrides(fs *flag.FlagSet, o *options, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "palette":
			var palette []string
			for _, c := range strings.Split(o.palette, ",") {
				if c = strings.TrimSpace(c); c != "" {
					palette = append(palette, c)
				}
			}
			if len(palette) > 0 {
				cfg.Palette = palette
			}
		case "category-limit":
			cfg.CategoryLimit = o.categoryLimit
		case "max-bins":
			cfg.MaxBins = o.maxBins
		case "quiet":
			cfg.Quiet = o.quiet
		case "file":
			cfg.Source.File = o.file
		case "sqlite":
			cfg.Source.File = o.sqlite
		case "query":
			cfg.Source.Query = o.query
		}
	})
}

func loadTable(ctx context.Context, o *options, cfg config.Config) (engine.Table, error) {
	if cfg.Source.File == "" {
		return engine.Table{}, fmt.Errorf("%w: --file or --sqlite is required", errUsage)
	}
	if o.sqlite != "" {
		return helpers.LoadSQLite(ctx, o.sqlite, cfg.Source.Query)
	}
	return helpers.LoadFile(ctx, cfg.Source.File, cfg.Source.Query)
}

func selectCharts(o *options, cfg config.Config) ([]config.NamedChart, error) {
	if o.dashboard {
		if len(cfg.Charts) == 0 {
			return nil, fmt.Errorf("%w: --dashboard needs charts in --config", errUsage)
		}
		return cfg.Charts, nil
	}
	if o.specJSON != "" {
		spec, err := engine.ParseChartSpec(o.specJSON)
		if err != nil {
			return nil, err
		}
		return []config.NamedChart{{ChartSpec: spec}}, nil
	}
	if strings.TrimSpace(o.spec.XColumn) == "" {
		return nil, fmt.Errorf("%w: --x is required (or use --dashboard / --describe)", errUsage)
	}
	return []config.NamedChart{{ChartSpec: o.spec}}, nil
}

// ============================================================================
// OUTPUT TYPES
// ============================================================================

type chartOutput struct {
	Name    string                `json:"name"`
	Spec    engine.ChartSpec      `json:"spec"`
	Series  *engine.Series        `json:"series"`
	Summary *engine.SeriesSummary `json:"summary"`
}

// filterFlag collects repeatable --filter column=v1,v2 values.
type filterFlag map[string][]string

func (f filterFlag) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + strings.Join(f[k], ",")
	}
	return strings.Join(parts, " ")
}

func (f filterFlag) Set(value string) error {
	column, values, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(column) == "" {
		return fmt.Errorf("filter %q: want column=value[,value...]", value)
	}
	f[column] = append(f[column], strings.Split(values, ",")...)
	return nil
}

// ============================================================================
// CSV OUTPUT - Sheets-ready label/value columns
// ============================================================================

func writeCSV(w io.Writer, results []chartOutput) error {
	cw := csv.NewWriter(w)
	for i, r := range results {
		if i > 0 {
			cw.Write(nil)
		}
		if len(results) > 1 {
			cw.Write([]string{"# " + r.Name})
		}
		table := engine.BuildTable(r.Series, r.Spec.XColumn)
		cw.Write(table.Header())
		for _, row := range table.Rows {
			cw.Write(row)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ============================================================================
// TEXT / HTML / JSON OUTPUT
// ============================================================================

func writeText(w io.Writer, results []chartOutput) {
	for _, r := range results {
		if len(results) > 1 {
			fmt.Fprintf(w, "%s: %s\n", r.Name, r.Summary.Reply)
			continue
		}
		fmt.Fprintln(w, r.Summary.Reply)
	}
}

func writeHTML(w io.Writer, title string, results []chartOutput) error {
	if len(results) == 1 {
		return render.WriteHTML(w, results[0].Series)
	}
	series := make([]*engine.Series, len(results))
	for i, r := range results {
		series[i] = r.Series
	}
	return render.WriteDashboard(w, title, series)
}

func writeProfileText(w io.Writer, p *schema.Profile) {
	fmt.Fprintf(w, "%d rows, %d columns\n", p.Rows, len(p.Columns))
	for _, c := range p.Columns {
		fmt.Fprintf(w, "  %-20s %-12s %5d distinct  %s\n",
			c.Name, c.Kind, c.Distinct, strings.Join(c.SampleValues, ", "))
	}
}

func writeJSON(w io.Writer, v any, format string) error {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
