package engine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ============================================================================
// SPEC PARSER - Extracts a ChartSpec from pasted JSON
// ============================================================================
// Hosts receive chart specs from form posts, clipboard pastes and chat
// messages; the latter often arrive wrapped in a markdown code fence.
// ============================================================================

// ParseChartSpec decodes a JSON chart spec, tolerating a surrounding
// ```json fence, and returns it normalized and validated.
func ParseChartSpec(text string) (ChartSpec, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var spec ChartSpec
	if err := json.Unmarshal([]byte(text), &spec); err != nil {
		return ChartSpec{}, fmt.Errorf("failed to parse chart spec: %w (input: %.200s)", err, text)
	}

	spec = NormalizeChartSpec(spec)
	if err := ValidateChartSpec(spec); err != nil {
		return ChartSpec{}, err
	}
	return spec, nil
}
