package schema

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DalgoT4D/DalgoLite-sub001/engine"
)

// ============================================================================
// PROFILING - Heuristic column classification
// ============================================================================
// Inspects a table view and describes each column. No configuration needed.
//
// Per column:
//   1. Collect non-empty keys (same trimming rules the aggregator uses)
//   2. Numeric ratio -> kind (numeric, categorical, empty)
//   3. Distinct count -> cardinality hint
//   4. Pattern matching on samples -> temporal hint
// ============================================================================

// numericThreshold is the share of parseable values that makes a column numeric.
const numericThreshold = 0.8

// maxSamples caps SampleValues per column.
const maxSamples = 10

// ProfileOptions controls profiling.
type ProfileOptions struct {
	SampleSize    int    // Max rows to inspect (0 = all)
	CategoryLimit int    // Cap used for truncation warnings. Default: engine.DefaultCategoryLimit
	Name          string // Table name for display
}

// DefaultProfileOptions returns sensible defaults.
func DefaultProfileOptions() ProfileOptions {
	return ProfileOptions{CategoryLimit: engine.DefaultCategoryLimit}
}

// ProfileTable inspects a view and returns one ColumnProfile per column.
func ProfileTable(view engine.TableView, opts ...ProfileOptions) *Profile {
	opt := DefaultProfileOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.CategoryLimit <= 0 {
		opt.CategoryLimit = engine.DefaultCategoryLimit
	}

	sampled := view.Len()
	if opt.SampleSize > 0 && opt.SampleSize < sampled {
		sampled = opt.SampleSize
	}

	columns := view.Columns()
	profile := &Profile{
		Name:          opt.Name,
		Rows:          view.Len(),
		Sampled:       sampled,
		CategoryLimit: opt.CategoryLimit,
		Columns:       make([]ColumnProfile, len(columns)),
	}
	for i, name := range columns {
		profile.Columns[i] = analyzeColumn(view, name, i, sampled, opt.CategoryLimit)
	}
	return profile
}

// analyzeColumn inspects all sampled values in a column and classifies it.
// Columns with more than categoryLimit distinct values are "high" cardinality.
func analyzeColumn(view engine.TableView, name string, index, sampled, categoryLimit int) ColumnProfile {
	col := ColumnProfile{
		Name:        name,
		DisplayName: toDisplayName(name),
		Index:       index,
		Kind:        KindEmpty,
	}

	uniqueSet := make(map[string]bool)
	numeric := 0
	for row := 0; row < sampled; row++ {
		cell := view.Cell(row, index)
		key, ok := cell.Key()
		if !ok {
			continue
		}
		col.NonEmpty++
		uniqueSet[key] = true
		if _, ok := engine.ParseNumeric(cell); ok {
			numeric++
		}
	}

	col.Distinct = len(uniqueSet)
	col.SampleValues = collectSamples(uniqueSet, maxSamples)
	if col.NonEmpty == 0 {
		return col
	}

	col.NumericRatio = float64(numeric) / float64(col.NonEmpty)
	if col.NumericRatio >= numericThreshold {
		col.Kind = KindNumeric
	} else {
		col.Kind = KindCategorical
		col.IsTemporal, col.TemporalFormat = detectTemporalPattern(col.SampleValues)
	}

	col.UniquePerRow = col.Distinct == col.NonEmpty && col.NonEmpty > 10

	switch {
	case col.Distinct <= 10:
		col.CardinalityHint = "low"
	case col.Distinct <= categoryLimit:
		col.CardinalityHint = "medium"
	default:
		col.CardinalityHint = "high"
	}

	return col
}

// ============================================================================
// SPECIAL PATTERN DETECTION
// ============================================================================

var temporalPatterns = []struct {
	re     *regexp.Regexp
	format string
}{
	{regexp.MustCompile(`^[A-Z][a-z]{2}-\d{4}$`), "MMM-yyyy"}, // Jan-2026
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "yyyy-MM"},          // 2026-01
	{regexp.MustCompile(`^Q[1-4]-\d{4}$`), "QN-yyyy"},         // Q1-2026
	{regexp.MustCompile(`^Q[1-4]\s+\d{4}$`), "QN yyyy"},       // Q1 2026
	{regexp.MustCompile(`^[A-Z][a-z]+ \d{4}$`), "MMMM yyyy"},  // January 2026
}

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// detectTemporalPattern checks if samples look like dates, months or quarters.
// At least 80% of samples must match one pattern.
func detectTemporalPattern(samples []string) (bool, string) {
	if len(samples) == 0 {
		return false, ""
	}

	for _, pattern := range temporalPatterns {
		if matchRatio(samples, pattern.re.MatchString) >= numericThreshold {
			return true, pattern.format
		}
	}
	if matchRatio(samples, isDate) >= numericThreshold {
		return true, "date"
	}
	return false, ""
}

func matchRatio(samples []string, match func(string) bool) float64 {
	matches := 0
	for _, s := range samples {
		if match(strings.TrimSpace(s)) {
			matches++
		}
	}
	return float64(matches) / float64(len(samples))
}

func isDate(s string) bool {
	for _, layout := range dateFormats {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// ============================================================================
// STRING UTILITIES
// ============================================================================

// toDisplayName cleans a header for human display.
// "story_points" -> "Story Points", "émission_totale" -> "Émission Totale"
func toDisplayName(s string) string {
	if strings.Contains(s, " ") {
		return strings.TrimSpace(s)
	}

	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return cases.Title(language.Und).String(strings.Join(strings.Fields(s), " "))
}

// collectSamples picks up to max representative values.
func collectSamples(uniqueSet map[string]bool, max int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}

	// Sort for deterministic output
	sort.Strings(samples)

	if len(samples) > max {
		samples = samples[:max]
	}
	return samples
}
