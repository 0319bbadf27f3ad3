package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeLabel(t *testing.T) {
	tests := []struct {
		grade    Grade
		expected string
	}{
		{GradeFA, "Fully Achieved"},
		{GradeMA, "Mostly Achieved"},
		{GradeA, "Achieved"},
		{GradeNS, "Not Sufficient"},
		{GradeNR, "Not Reviewed"},
		{Grade("XX"), "Not Reviewed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.grade), func(t *testing.T) {
			assert.Equal(t, tt.expected, GradeLabel(tt.grade))
		})
	}
}

func TestOutcomeSymbol(t *testing.T) {
	assert.Equal(t, "●●●", OutcomeSymbol(3))
	assert.Equal(t, "●●○", OutcomeSymbol(2))
	assert.Equal(t, "●○○", OutcomeSymbol(1))
	assert.Equal(t, "○○○", OutcomeSymbol(0))
	assert.Equal(t, "○○○", OutcomeSymbol(-4))
}

func TestIsLTColumn(t *testing.T) {
	assert.True(t, IsLTColumn("LT1"))
	assert.True(t, IsLTColumn("LT10"))
	assert.False(t, IsLTColumn("LT11"))
	assert.False(t, IsLTColumn("lt1"))
}

func TestFindDimension(t *testing.T) {
	d, ok := FindDimension("D2")
	require.True(t, ok)
	assert.Equal(t, "Teaching & Learning", d.Name)

	_, ok = FindDimension("D9")
	assert.False(t, ok)
}

func TestIndicatorScoreJSON(t *testing.T) {
	tests := []struct {
		name  string
		score IndicatorScore
		json  string
	}{
		{"yes", ScoreYes, "1"},
		{"no", ScoreNo, "0"},
		{"not applicable", ScoreNA, `"NA"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.score)
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(data))

			var decoded IndicatorScore
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.score, decoded)
		})
	}

	var bad IndicatorScore
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &bad))
}

func TestSurveySettingKey(t *testing.T) {
	assert.Equal(t, "parentSurveyEnabled", SurveySettingKey(ParentSurvey))
	assert.Equal(t, "studentSurveyEnabled", SurveySettingKey(StudentSurvey))
}
