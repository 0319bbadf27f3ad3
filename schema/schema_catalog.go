package schema

// CatalogRow is one indicator line of the framework catalog. Blank strand,
// substrand and outcome cells inherit the value of the previous row.
type CatalogRow struct {
	Dimension            string `yaml:"dimension" json:"dimension,omitempty"`
	Strand               string `yaml:"strand" json:"strand,omitempty"`
	StrandName           string `yaml:"strand_name" json:"strandName,omitempty"`
	Substrand            string `yaml:"substrand" json:"substrand,omitempty"`
	SubstrandName        string `yaml:"substrand_name" json:"substrandName,omitempty"`
	Outcome              string `yaml:"outcome" json:"outcome,omitempty"`
	OutcomeDescription   string `yaml:"outcome_description" json:"outcomeDescription,omitempty"`
	Indicator            string `yaml:"indicator" json:"indicator"`
	IndicatorDescription string `yaml:"indicator_description" json:"indicatorDescription,omitempty"`
}

// CustomGraphOutcome is one bar of a custom graph: an outcome scored from a
// fixed list of indicator codes.
type CustomGraphOutcome struct {
	Code       string   `yaml:"code" json:"code"`
	Indicators []string `yaml:"indicators" json:"indicators"`
}

// CustomGraph is a named, dimension-specific outcome view.
type CustomGraph struct {
	Name      string               `yaml:"name" json:"name"`
	Title     string               `yaml:"title" json:"title"`
	Dimension string               `yaml:"dimension" json:"dimension"`
	Outcomes  []CustomGraphOutcome `yaml:"outcomes" json:"outcomes"`
}

// CustomGraphBar is a scored outcome of a custom graph.
type CustomGraphBar struct {
	Code   string `json:"code"`
	Score  int    `json:"score"`
	Values []int  `json:"values"`
}

// CustomGraphResult is a scored custom graph.
type CustomGraphResult struct {
	Name      string           `json:"name"`
	Title     string           `json:"title"`
	Dimension string           `json:"dimension"`
	Bars      []CustomGraphBar `json:"bars"`
}
