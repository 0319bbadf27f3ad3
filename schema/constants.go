package schema

// Custom string types for type safety.
type (
	// IndicatorValue is a checklist answer: yes, no, nr or empty for null.
	IndicatorValue string

	// Grade is the four-level outcome grade used by the dashboard view.
	Grade string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for a store.
	DatabaseBackend string

	// SurveyKind identifies a stakeholder survey.
	SurveyKind string

	// RespondentStatus is the moderation status of a survey respondent.
	RespondentStatus string
)

// Checklist answers.
const (
	YesValue  IndicatorValue = "yes"
	NoValue   IndicatorValue = "no"
	NRValue   IndicatorValue = "nr"
	NullValue IndicatorValue = ""
)

// LT column values as stored.
const (
	LTYes = "1"
	LTNo  = "0"
	LTNA  = "NA"
)

// All grades, best first.
const (
	GradeFA Grade = "FA" // fully achieved
	GradeMA Grade = "MA" // mostly achieved
	GradeA  Grade = "A"  // achieved
	GradeNS Grade = "NS" // not sufficient
	GradeNR Grade = "NR" // not reviewed
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All survey kinds supported.
const (
	ParentSurvey  SurveyKind = "parent"
	StudentSurvey SurveyKind = "student"
	TeacherSurvey SurveyKind = "teacher"
)

// Respondent moderation states. An empty status means not yet reviewed.
const (
	AcceptedStatus RespondentStatus = "accepted"
	RejectedStatus RespondentStatus = "rejected"
	UnsetStatus    RespondentStatus = ""
)

// Survey ratings.
const (
	RatingNotGood  = 1
	RatingGood     = 2
	RatingVeryGood = 3
)

// ChecklistSource is the source recorded for checklist values with no explicit source.
const ChecklistSource = "Checklist"

// LTColumns lists the leading-teacher observer columns in display order.
var LTColumns = []string{"LT1", "LT2", "LT3", "LT4", "LT5", "LT6", "LT7", "LT8", "LT9", "LT10"}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidSurveyKinds lists all valid survey kinds.
var ValidSurveyKinds = map[SurveyKind]struct{}{
	ParentSurvey:  {},
	StudentSurvey: {},
	TeacherSurvey: {},
}

// Dimension describes one of the five review dimensions.
type Dimension struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Dimensions lists the review dimensions in order.
var Dimensions = []Dimension{
	{ID: "D1", Name: "Inclusivity"},
	{ID: "D2", Name: "Teaching & Learning"},
	{ID: "D3", Name: "Health & Safety"},
	{ID: "D4", Name: "Community"},
	{ID: "D5", Name: "Leadership"},
}
