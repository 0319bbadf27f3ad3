package schema

import "time"

// IndicatorScoreRow is a checklist answer held by the remote store.
type IndicatorScoreRow struct {
	SchoolID      string         `json:"schoolId"`
	IndicatorCode string         `json:"indicatorCode"`
	Value         IndicatorValue `json:"value"`
	Source        string         `json:"source"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// LTScoreRow is a multi-column leading-teacher value held by the remote store.
type LTScoreRow struct {
	SchoolID      string    `json:"schoolId"`
	IndicatorCode string    `json:"indicatorCode"`
	Column        string    `json:"column"`
	Value         string    `json:"value"`
	Source        string    `json:"source"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LTScoreWrite is one entry of a batched LT score upsert.
type LTScoreWrite struct {
	IndicatorCode string `json:"indicatorCode"`
	Column        string `json:"column"`
	Value         string `json:"value"`
	Source        string `json:"source"`
}

// SurveyResponse is a single 1-3 rating of one indicator by one respondent.
type SurveyResponse struct {
	ID            string           `json:"id"`
	SchoolID      string           `json:"schoolId"`
	Kind          SurveyKind       `json:"kind"`
	RespondentID  string           `json:"respondentId"`
	IndicatorCode string           `json:"indicatorCode"`
	Rating        int              `json:"rating"`
	Online        bool             `json:"online"`
	Status        RespondentStatus `json:"status,omitempty"`
	SubmittedAt   time.Time        `json:"submittedAt"`
}

// RatingTally counts survey ratings for one indicator.
type RatingTally struct {
	VeryGood int `json:"vGood"`
	Good     int `json:"good"`
	NotGood  int `json:"notGood"`
	Total    int `json:"total"`
}

// ScoreView is the merged input for building a report: remote values with
// pending local values layered on top.
type ScoreView struct {
	Checklist map[string][]DataPoint       // indicator code -> checklist data points
	LTScores  map[string]map[string]string // indicator code -> column -> remote value
	PendingLT map[string]map[string]string // indicator code -> column -> pending value
	Comments  map[string]string            // indicator code -> effective comment
}
