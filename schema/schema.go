package schema

// ============================================================================
// SCHEMA - Describes the shape of a loaded table
// ============================================================================
// Profiles are inferred from the data itself. The CLI prints them for
// --describe, and Check uses them to warn about chart specs that will run
// but produce a poor chart.
// ============================================================================

// Kind classifies a column by the values it holds.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
	KindEmpty       Kind = "empty"
)

// Profile describes every column of a table.
type Profile struct {
	Name          string          `json:"name,omitempty" yaml:"name,omitempty"`
	Rows          int             `json:"rows" yaml:"rows"`
	Sampled       int             `json:"sampled" yaml:"sampled"`
	CategoryLimit int             `json:"categoryLimit" yaml:"categoryLimit"`
	Columns       []ColumnProfile `json:"columns" yaml:"columns"`
}

// ColumnProfile describes a single column.
type ColumnProfile struct {
	Name         string   `json:"name" yaml:"name"`
	DisplayName  string   `json:"displayName" yaml:"displayName"`
	Index        int      `json:"index" yaml:"index"`
	Kind         Kind     `json:"kind" yaml:"kind"`
	NonEmpty     int      `json:"nonEmpty" yaml:"nonEmpty"`
	Distinct     int      `json:"distinct" yaml:"distinct"`
	NumericRatio float64  `json:"numericRatio" yaml:"numericRatio"`
	SampleValues []string `json:"sampleValues" yaml:"sampleValues"`

	CardinalityHint string `json:"cardinalityHint,omitempty" yaml:"cardinalityHint,omitempty"` // "low", "medium", "high"
	IsTemporal      bool   `json:"isTemporal,omitempty" yaml:"isTemporal,omitempty"`
	TemporalFormat  string `json:"temporalFormat,omitempty" yaml:"temporalFormat,omitempty"`
	UniquePerRow    bool   `json:"uniquePerRow,omitempty" yaml:"uniquePerRow,omitempty"` // likely an identifier
}

// Warning is a non-blocking note about a chart spec.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Column  string `json:"column,omitempty" yaml:"column,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// Warning codes.
const (
	WarnMissingColumn     = "missing_column"
	WarnNonNumericY       = "non_numeric_y"
	WarnNonNumericBins    = "non_numeric_histogram"
	WarnCategoryTruncated = "category_truncated"
	WarnIdentifierX       = "identifier_x"
)

// Column returns the profile for a named column, or nil.
func (p *Profile) Column(name string) *ColumnProfile {
	if p == nil {
		return nil
	}
	for i := range p.Columns {
		if p.Columns[i].Name == name {
			return &p.Columns[i]
		}
	}
	return nil
}

// NumericColumns returns the names of numeric columns in table order.
func (p *Profile) NumericColumns() []string {
	return p.columnsOfKind(KindNumeric)
}

// CategoricalColumns returns the names of categorical columns in table order.
func (p *Profile) CategoricalColumns() []string {
	return p.columnsOfKind(KindCategorical)
}

func (p *Profile) columnsOfKind(kind Kind) []string {
	var names []string
	for _, c := range p.Columns {
		if c.Kind == kind {
			names = append(names, c.Name)
		}
	}
	return names
}
