// Package schema has models, constants and labels for all parts of schoolscore.
package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

// DataPoint is one raw observation for an indicator from a single source.
type DataPoint struct {
	Source string         `json:"source"`
	Value  IndicatorValue `json:"value"`
}

// IndicatorScore is the binary score of one indicator, or ScoreNA when no
// counted data point exists.
type IndicatorScore int

// Indicator score values.
const (
	ScoreNA  IndicatorScore = -1
	ScoreNo  IndicatorScore = 0
	ScoreYes IndicatorScore = 1
)

// String renders the score the way reports show it.
func (s IndicatorScore) String() string {
	if s == ScoreNA {
		return "NA"
	}
	return fmt.Sprintf("%d", int(s))
}

// MarshalJSON encodes ScoreNA as the string "NA" and other scores as numbers.
func (s IndicatorScore) MarshalJSON() ([]byte, error) {
	if s == ScoreNA {
		return []byte(`"NA"`), nil
	}
	return json.Marshal(int(s))
}

// UnmarshalJSON accepts either "NA" or a number.
func (s *IndicatorScore) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		if text == "NA" {
			*s = ScoreNA
			return nil
		}
		return fmt.Errorf("invalid indicator score %q", text)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = IndicatorScore(n)
	return nil
}

// IndicatorResult is the normalized score of one indicator.
type IndicatorResult struct {
	Score      IndicatorScore `json:"score"`
	Breakdown  string         `json:"breakdown"`
	Sources    []string       `json:"sources"`
	Achieved   int            `json:"achieved"`
	Total      int            `json:"total"`
	Percentage *int           `json:"percentage,omitempty"`
	DataPoints []DataPoint    `json:"dataPoints"`
}

// Indicator is the leaf of the framework hierarchy.
type Indicator struct {
	Code        string          `json:"code"`
	Description string          `json:"description,omitempty"`
	Score       IndicatorScore  `json:"score"`
	Excluded    bool            `json:"excluded"`
	Result      IndicatorResult `json:"result"`
	Comment     string          `json:"comment,omitempty"`
}

// OutcomeBreakdown holds the counted indicator totals behind an outcome score.
type OutcomeBreakdown struct {
	Total      int `json:"total"`
	Achieved   int `json:"achieved"`
	Percentage int `json:"percentage"`
}

// OutcomeResult is the 0-3 score of a set of indicators.
type OutcomeResult struct {
	Score      int              `json:"score"`
	Breakdown  OutcomeBreakdown `json:"breakdown"`
	Indicators []Indicator      `json:"indicators"`
}

// Distribution counts outcomes at each score level.
type Distribution struct {
	Score0 int `json:"score0"`
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
	Score3 int `json:"score3"`
	Total  int `json:"total"`
}

// Outcome groups indicators and carries the derived 0-3 score.
type Outcome struct {
	Code        string           `json:"code"`
	Description string           `json:"description,omitempty"`
	Score       int              `json:"score"`
	Grade       Grade            `json:"grade"`
	Breakdown   OutcomeBreakdown `json:"breakdown"`
	Indicators  []Indicator      `json:"indicators"`
}

// Substrand groups outcomes and carries a score distribution.
type Substrand struct {
	Code         string       `json:"code"`
	Name         string       `json:"name,omitempty"`
	Percentage   int          `json:"percentage"`
	Distribution Distribution `json:"distribution"`
	Outcomes     []Outcome    `json:"outcomes"`
}

// Strand is the top of the framework hierarchy within a dimension.
type Strand struct {
	Code         string       `json:"code"`
	Name         string       `json:"name,omitempty"`
	Percentage   int          `json:"percentage"`
	Distribution Distribution `json:"distribution"`
	Substrands   []Substrand  `json:"substrands"`
}

// OutcomeRef points to an outcome from a summary list.
type OutcomeRef struct {
	Strand      string `json:"strand"`
	Substrand   string `json:"substrand"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Score       int    `json:"score"`
}

// Report is the full score tree of one school for one dimension.
type Report struct {
	SchoolID       string       `json:"schoolId"`
	Dimension      string       `json:"dimension,omitempty"`
	GeneratedAt    time.Time    `json:"generatedAt"`
	Percentage     int          `json:"percentage"`
	Grade          Grade        `json:"grade"`
	CompletionRate int          `json:"completionRate"`
	Distribution   Distribution `json:"distribution"`
	Strands        []Strand     `json:"strands"`
	Strengths      []OutcomeRef `json:"strengths"`
	HelpNeeded     []OutcomeRef `json:"helpNeeded"`
}
