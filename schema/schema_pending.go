package schema

// PendingScore is an unsynced LT score edit.
type PendingScore struct {
	Value     string `json:"value"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// PendingComment is an unsynced comment edit.
type PendingComment struct {
	Comment   string `json:"comment"`
	Timestamp int64  `json:"timestamp"`
}

// PendingScores maps indicator code -> column -> pending edit.
type PendingScores map[string]map[string]PendingScore

// PendingComments maps indicator code -> pending comment.
type PendingComments map[string]PendingComment

// PendingEntry is a flattened pending score edit.
type PendingEntry struct {
	IndicatorCode string `json:"indicatorCode"`
	Column        string `json:"column"`
	Value         string `json:"value"`
	Source        string `json:"source"`
	Timestamp     int64  `json:"timestamp"`
}
