// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/schoolscore/schema"
)

// StoreManager defines the interface for managing the local cache and the remote store.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetLocalCache() LocalCache
	GetRemoteStore() RemoteStore
}

// LocalCache defines the interface for the durable local key-value cache
// that backs pending changes between sessions.
type LocalCache interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Delete(key string) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// RemoteStore defines the persistent, school-scoped score store.
type RemoteStore interface {
	// --- Reads ---

	// GetIndicatorScores returns every checklist score row recorded for a school.
	GetIndicatorScores(ctx context.Context, schoolID string) ([]schema.IndicatorScoreRow, error)

	// GetLTScores returns every leading-teacher column value recorded for a school.
	GetLTScores(ctx context.Context, schoolID string) ([]schema.LTScoreRow, error)

	// GetComments returns indicator comments keyed by indicator code.
	GetComments(ctx context.Context, schoolID string) (map[string]string, error)

	// GetIndicatorDataPoints returns checklist data points for a single indicator.
	GetIndicatorDataPoints(ctx context.Context, schoolID, indicatorCode string) ([]schema.DataPoint, error)

	// --- Writes ---

	// UpsertIndicatorScore writes a checklist score, unique per (school, indicator, source).
	UpsertIndicatorScore(ctx context.Context, schoolID, indicatorCode string, value schema.IndicatorValue, source string) error

	// UpsertLTScore writes one LT column value, unique per (school, indicator, column).
	UpsertLTScore(ctx context.Context, schoolID, indicatorCode, column, value, source string) error

	// BatchUpsertLTScores writes all values in one transaction. Either every row lands or none does.
	BatchUpsertLTScores(ctx context.Context, schoolID string, writes []schema.LTScoreWrite) error

	// UpsertComment writes an indicator comment. An empty comment deletes it.
	UpsertComment(ctx context.Context, schoolID, indicatorCode, comment string) error

	// --- Settings ---

	GetSetting(ctx context.Context, key string) (any, bool, error)
	SetSetting(ctx context.Context, key string, value any) error

	// --- Surveys ---

	SubmitSurveyResponse(ctx context.Context, response schema.SurveyResponse) error
	ListSurveyResponses(ctx context.Context, schoolID string, kind schema.SurveyKind) ([]schema.SurveyResponse, error)
	SetRespondentStatus(ctx context.Context, schoolID string, kind schema.SurveyKind, respondentID string, status schema.RespondentStatus) error

	// GetStatus returns status information about the remote store.
	GetStatus() (schema.RemoteStatus, error)

	// Close closes the underlying connection.
	Close() error
}
