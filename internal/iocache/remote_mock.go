package iocache

import (
	"context"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/mock"
)

// MockRemoteStore is a mock implementation of RemoteStore for testing.
type MockRemoteStore struct {
	mock.Mock
}

var _ contract.RemoteStore = &MockRemoteStore{} // Compile-time check

// GetIndicatorScores implements the RemoteStore interface.
func (m *MockRemoteStore) GetIndicatorScores(ctx context.Context, schoolID string) ([]schema.IndicatorScoreRow, error) {
	args := m.Called(ctx, schoolID)
	rows, _ := args.Get(0).([]schema.IndicatorScoreRow)
	return rows, args.Error(1)
}

// GetLTScores implements the RemoteStore interface.
func (m *MockRemoteStore) GetLTScores(ctx context.Context, schoolID string) ([]schema.LTScoreRow, error) {
	args := m.Called(ctx, schoolID)
	rows, _ := args.Get(0).([]schema.LTScoreRow)
	return rows, args.Error(1)
}

// GetComments implements the RemoteStore interface.
func (m *MockRemoteStore) GetComments(ctx context.Context, schoolID string) (map[string]string, error) {
	args := m.Called(ctx, schoolID)
	comments, _ := args.Get(0).(map[string]string)
	return comments, args.Error(1)
}

// GetIndicatorDataPoints implements the RemoteStore interface.
func (m *MockRemoteStore) GetIndicatorDataPoints(ctx context.Context, schoolID, indicatorCode string) ([]schema.DataPoint, error) {
	args := m.Called(ctx, schoolID, indicatorCode)
	points, _ := args.Get(0).([]schema.DataPoint)
	return points, args.Error(1)
}

// UpsertIndicatorScore implements the RemoteStore interface.
func (m *MockRemoteStore) UpsertIndicatorScore(ctx context.Context, schoolID, indicatorCode string, value schema.IndicatorValue, source string) error {
	args := m.Called(ctx, schoolID, indicatorCode, value, source)
	return args.Error(0)
}

// UpsertLTScore implements the RemoteStore interface.
func (m *MockRemoteStore) UpsertLTScore(ctx context.Context, schoolID, indicatorCode, column, value, source string) error {
	args := m.Called(ctx, schoolID, indicatorCode, column, value, source)
	return args.Error(0)
}

// BatchUpsertLTScores implements the RemoteStore interface.
func (m *MockRemoteStore) BatchUpsertLTScores(ctx context.Context, schoolID string, writes []schema.LTScoreWrite) error {
	args := m.Called(ctx, schoolID, writes)
	return args.Error(0)
}

// UpsertComment implements the RemoteStore interface.
func (m *MockRemoteStore) UpsertComment(ctx context.Context, schoolID, indicatorCode, comment string) error {
	args := m.Called(ctx, schoolID, indicatorCode, comment)
	return args.Error(0)
}

// GetSetting implements the RemoteStore interface.
func (m *MockRemoteStore) GetSetting(ctx context.Context, key string) (any, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0), args.Bool(1), args.Error(2)
}

// SetSetting implements the RemoteStore interface.
func (m *MockRemoteStore) SetSetting(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// SubmitSurveyResponse implements the RemoteStore interface.
func (m *MockRemoteStore) SubmitSurveyResponse(ctx context.Context, response schema.SurveyResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

// ListSurveyResponses implements the RemoteStore interface.
func (m *MockRemoteStore) ListSurveyResponses(ctx context.Context, schoolID string, kind schema.SurveyKind) ([]schema.SurveyResponse, error) {
	args := m.Called(ctx, schoolID, kind)
	responses, _ := args.Get(0).([]schema.SurveyResponse)
	return responses, args.Error(1)
}

// SetRespondentStatus implements the RemoteStore interface.
func (m *MockRemoteStore) SetRespondentStatus(ctx context.Context, schoolID string, kind schema.SurveyKind, respondentID string, status schema.RespondentStatus) error {
	args := m.Called(ctx, schoolID, kind, respondentID, status)
	return args.Error(0)
}

// GetStatus implements the RemoteStore interface.
func (m *MockRemoteStore) GetStatus() (schema.RemoteStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RemoteStatus), args.Error(1)
}

// Close implements the RemoteStore interface.
func (m *MockRemoteStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
