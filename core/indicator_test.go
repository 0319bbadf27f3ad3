package core

import (
	"testing"

	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dp(source string, value schema.IndicatorValue) schema.DataPoint {
	return schema.DataPoint{Source: source, Value: value}
}

func TestScoreIndicator(t *testing.T) {
	tests := []struct {
		name       string
		points     []schema.DataPoint
		threshold  int
		score      schema.IndicatorScore
		achieved   int
		total      int
		percentage int
		breakdown  string
		sources    []string
	}{
		{
			name:       "half yes meets threshold",
			points:     []schema.DataPoint{dp("LT1", schema.YesValue), dp("LT2", schema.NoValue)},
			threshold:  50,
			score:      schema.ScoreYes,
			achieved:   1,
			total:      2,
			percentage: 50,
			breakdown:  "1/2 = 50%",
			sources:    []string{"LT1", "LT2"},
		},
		{
			name:       "one third misses threshold",
			points:     []schema.DataPoint{dp("LT1", schema.YesValue), dp("LT2", schema.NoValue), dp("LT3", schema.NoValue)},
			threshold:  50,
			score:      schema.ScoreNo,
			achieved:   1,
			total:      3,
			percentage: 33,
			breakdown:  "1/3 = 33%",
			sources:    []string{"LT1", "LT2", "LT3"},
		},
		{
			name:       "half yes misses stricter threshold",
			points:     []schema.DataPoint{dp("LT1", schema.YesValue), dp("LT2", schema.NoValue)},
			threshold:  60,
			score:      schema.ScoreNo,
			achieved:   1,
			total:      2,
			percentage: 50,
			breakdown:  "1/2 = 50%",
			sources:    []string{"LT1", "LT2"},
		},
		{
			name:       "nr and null are not counted",
			points:     []schema.DataPoint{dp("LT1", schema.YesValue), dp("LT2", schema.NRValue), dp("Principal", schema.NullValue)},
			threshold:  50,
			score:      schema.ScoreYes,
			achieved:   1,
			total:      1,
			percentage: 100,
			breakdown:  "1/1 = 100%",
			sources:    []string{"LT1"},
		},
		{
			name:       "repeated source counts every point once listed",
			points:     []schema.DataPoint{dp("LT1", schema.YesValue), dp("LT1", schema.YesValue), dp("LT2", schema.NoValue)},
			threshold:  50,
			score:      schema.ScoreYes,
			achieved:   2,
			total:      3,
			percentage: 67,
			breakdown:  "2/3 = 67%",
			sources:    []string{"LT1", "LT2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreIndicator(tt.points, tt.threshold)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.achieved, result.Achieved)
			assert.Equal(t, tt.total, result.Total)
			assert.Equal(t, tt.breakdown, result.Breakdown)
			assert.Equal(t, tt.sources, result.Sources)
			require.NotNil(t, result.Percentage)
			assert.Equal(t, tt.percentage, *result.Percentage)
			assert.Equal(t, tt.points, result.DataPoints)
		})
	}
}

func TestScoreIndicatorNoData(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		result := ScoreIndicator(nil, DefaultIndicatorThreshold)
		assert.Equal(t, schema.ScoreNA, result.Score)
		assert.Equal(t, 0, result.Achieved)
		assert.Equal(t, 0, result.Total)
		assert.Nil(t, result.Percentage)
		assert.Equal(t, "No data", result.Breakdown)
		assert.Empty(t, result.Sources)
		assert.NotNil(t, result.DataPoints)
	})

	t.Run("only uncounted values", func(t *testing.T) {
		points := []schema.DataPoint{dp("LT1", schema.NRValue), dp("LT2", schema.NullValue)}
		result := ScoreIndicator(points, DefaultIndicatorThreshold)
		assert.Equal(t, schema.ScoreNA, result.Score)
		assert.Equal(t, "No valid data points", result.Breakdown)
		assert.Nil(t, result.Percentage)
		assert.Len(t, result.DataPoints, 2)
	})
}

func TestScoreIndicatorDoesNotAliasInput(t *testing.T) {
	points := []schema.DataPoint{dp("LT1", schema.YesValue)}
	result := ScoreIndicator(points, DefaultIndicatorThreshold)
	result.DataPoints[0].Value = schema.NoValue
	assert.Equal(t, schema.YesValue, points[0].Value)
}

func BenchmarkScoreIndicator(b *testing.B) {
	points := make([]schema.DataPoint, 0, len(schema.LTColumns))
	for i, col := range schema.LTColumns {
		v := schema.YesValue
		if i%3 == 0 {
			v = schema.NoValue
		}
		points = append(points, dp(col, v))
	}
	for b.Loop() {
		ScoreIndicator(points, DefaultIndicatorThreshold)
	}
}
