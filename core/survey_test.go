package core

import (
	"testing"

	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestTallySurvey(t *testing.T) {
	responses := []schema.SurveyResponse{
		{RespondentID: "p1", IndicatorCode: "401", Rating: 3},
		{RespondentID: "p2", IndicatorCode: "401", Rating: 2, Status: schema.AcceptedStatus},
		{RespondentID: "p3", IndicatorCode: "401", Rating: 1, Status: schema.RejectedStatus},
		{RespondentID: "p4", IndicatorCode: "401", Rating: 1, Online: true},
		{RespondentID: "p1", IndicatorCode: "402", Rating: 1},
		{RespondentID: "p2", IndicatorCode: "402", Rating: 4},
	}

	t.Run("online excluded", func(t *testing.T) {
		tallies := TallySurvey(responses, false)
		assert.Equal(t, schema.RatingTally{VeryGood: 1, Good: 1, Total: 2}, tallies["401"])
		assert.Equal(t, schema.RatingTally{NotGood: 1, Total: 1}, tallies["402"])
	})

	t.Run("online included", func(t *testing.T) {
		tallies := TallySurvey(responses, true)
		assert.Equal(t, schema.RatingTally{VeryGood: 1, Good: 1, NotGood: 1, Total: 3}, tallies["401"])
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, TallySurvey(nil, true))
	})
}
