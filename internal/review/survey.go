package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/huangsam/schoolscore/core"
	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
)

// ParseSurveyKind validates a survey kind name.
func ParseSurveyKind(raw string) (schema.SurveyKind, error) {
	kind := schema.SurveyKind(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := schema.ValidSurveyKinds[kind]; !ok {
		return "", contract.NewValidationError("kind", fmt.Sprintf("unknown survey kind %q. must be parent, student, teacher", raw))
	}
	return kind, nil
}

// SurveyEnabled reports whether online submissions are open for a survey kind.
// A missing setting means closed.
func (s *Service) SurveyEnabled(ctx context.Context, kind schema.SurveyKind) (bool, error) {
	value, ok, err := s.remote.GetSetting(ctx, schema.SurveySettingKey(kind))
	if err != nil || !ok {
		return false, err
	}
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return contract.ParseBoolString(v)
	case float64:
		return v != 0, nil
	}
	return false, fmt.Errorf("setting %s has unexpected type %T", schema.SurveySettingKey(kind), value)
}

// SetSurveyEnabled opens or closes online submissions for a survey kind.
func (s *Service) SetSurveyEnabled(ctx context.Context, kind schema.SurveyKind, enabled bool) error {
	return s.remote.SetSetting(ctx, schema.SurveySettingKey(kind), enabled)
}

// SubmitSurvey validates and stores one rating. Online responses are refused
// while the survey gate is closed, and get a generated respondent id when
// none is supplied.
func (s *Service) SubmitSurvey(ctx context.Context, response schema.SurveyResponse) (schema.SurveyResponse, error) {
	if _, ok := schema.ValidSurveyKinds[response.Kind]; !ok {
		return response, contract.NewValidationError("kind", fmt.Sprintf("unknown survey kind %q", response.Kind))
	}
	code, err := contract.SanitizeIndicatorCode(response.IndicatorCode)
	if err != nil {
		return response, err
	}
	response.IndicatorCode = code
	if response.Rating < schema.RatingNotGood || response.Rating > schema.RatingVeryGood {
		return response, contract.NewValidationError("rating", fmt.Sprintf("rating must be 1, 2 or 3 (received %d)", response.Rating))
	}
	if response.SchoolID == "" {
		response.SchoolID = s.cfg.SchoolID
	}

	response.RespondentID = strings.TrimSpace(response.RespondentID)
	if response.Online {
		enabled, err := s.SurveyEnabled(ctx, response.Kind)
		if err != nil {
			return response, err
		}
		if !enabled {
			return response, contract.ErrSurveyDisabled
		}
		if response.RespondentID == "" {
			response.RespondentID = uuid.NewString()
		}
	}
	if response.RespondentID == "" {
		return response, contract.NewValidationError("respondent", "respondent is required")
	}

	if err := s.remote.SubmitSurveyResponse(ctx, response); err != nil {
		return response, fmt.Errorf("submit survey response: %w", err)
	}
	return response, nil
}

// SurveyTally counts the ratings of a survey kind. Online responses count
// only while the survey gate is open.
func (s *Service) SurveyTally(ctx context.Context, kind schema.SurveyKind) (map[string]schema.RatingTally, error) {
	enabled, err := s.SurveyEnabled(ctx, kind)
	if err != nil {
		return nil, err
	}
	responses, err := s.remote.ListSurveyResponses(ctx, s.cfg.SchoolID, kind)
	if err != nil {
		return nil, fmt.Errorf("list survey responses: %w", err)
	}
	return core.TallySurvey(responses, enabled), nil
}

// SetRespondentStatus accepts or rejects every response of one respondent.
func (s *Service) SetRespondentStatus(ctx context.Context, kind schema.SurveyKind, respondentID string, status schema.RespondentStatus) error {
	switch status {
	case schema.AcceptedStatus, schema.RejectedStatus, schema.UnsetStatus:
	default:
		return contract.NewValidationError("status", fmt.Sprintf("unknown respondent status %q. must be accepted, rejected or empty", status))
	}
	return s.remote.SetRespondentStatus(ctx, s.cfg.SchoolID, kind, respondentID, status)
}
