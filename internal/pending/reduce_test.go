package pending

import (
	"testing"
	"time"

	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	t.Run("nil state is rebuilt", func(t *testing.T) {
		next := Reduce(nil, SetSyncing{Syncing: true})
		require.NotNil(t, next)
		assert.NotNil(t, next.LTScores)
		assert.NotNil(t, next.Comments)
		assert.True(t, next.IsSyncing)
	})

	t.Run("malformed state is rebuilt", func(t *testing.T) {
		next := Reduce(&State{}, SetPendingComment{IndicatorCode: "1.1.1.1", Comment: "x"})
		assert.NotNil(t, next.LTScores)
		assert.Equal(t, "x", next.Comments["1.1.1.1"].Comment)
	})

	t.Run("nil action returns a copy", func(t *testing.T) {
		next := Reduce(nil, nil)
		assert.Equal(t, NewState(), next)
	})

	t.Run("input is never mutated", func(t *testing.T) {
		start := Reduce(nil, SetPendingScore{IndicatorCode: "2.1", Column: "LT1", Value: "1", Source: "LT", Timestamp: 1})
		before := start.Clone()

		_ = Reduce(start, SetPendingScore{IndicatorCode: "2.1", Column: "LT1", Value: "0", Source: "LT", Timestamp: 2})
		_ = Reduce(start, ClearAllPending{})

		assert.Equal(t, before, start)
	})
}

func TestReduceSetPendingScore(t *testing.T) {
	tests := []struct {
		name     string
		action   SetPendingScore
		expected schema.PendingScores
	}{
		{
			name:     "insert",
			action:   SetPendingScore{IndicatorCode: "2.1", Column: "LT1", Value: "1", Source: "LT", Timestamp: 5},
			expected: schema.PendingScores{"2.1": {"LT1": {Value: "1", Source: "LT", Timestamp: 5}}},
		},
		{
			name:     "empty code is a no-op",
			action:   SetPendingScore{Column: "LT1", Value: "1", Source: "LT"},
			expected: schema.PendingScores{},
		},
		{
			name:     "empty column is a no-op",
			action:   SetPendingScore{IndicatorCode: "2.1", Value: "1", Source: "LT"},
			expected: schema.PendingScores{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Reduce(NewState(), tt.action)
			assert.Equal(t, tt.expected, next.LTScores)
		})
	}

	t.Run("overwrite same column", func(t *testing.T) {
		s := Reduce(nil, SetPendingScore{IndicatorCode: "2.1", Column: "LT1", Value: "1", Source: "LT", Timestamp: 1})
		s = Reduce(s, SetPendingScore{IndicatorCode: "2.1", Column: "LT1", Value: "0", Source: "LT", Timestamp: 2})
		assert.Equal(t, schema.PendingScore{Value: "0", Source: "LT", Timestamp: 2}, s.LTScores["2.1"]["LT1"])
		assert.Equal(t, 1, s.Count())
	})
}

func TestReduceClearForSource(t *testing.T) {
	s := NewState()
	s = Reduce(s, SetPendingScore{IndicatorCode: "2.1", Column: "LT1", Value: "1", Source: "LT"})
	s = Reduce(s, SetPendingScore{IndicatorCode: "2.1", Column: "LT2", Value: "0", Source: "Principal"})
	s = Reduce(s, SetPendingScore{IndicatorCode: "2.2", Column: "LT1", Value: "1", Source: "LT"})
	s = Reduce(s, SetPendingComment{IndicatorCode: "2.1", Comment: "keep me"})

	s = Reduce(s, ClearForSource{Source: "LT"})

	assert.Equal(t, schema.PendingScores{"2.1": {"LT2": {Value: "0", Source: "Principal"}}}, s.LTScores)
	_, ok := s.LTScores["2.2"]
	assert.False(t, ok, "empty indicator entries are pruned")
	assert.Equal(t, "keep me", s.Comments["2.1"].Comment, "comments are untouched")

	s = Reduce(s, ClearForSource{Source: "nobody"})
	assert.Len(t, s.LTScores, 1)
}

func TestReduceClearing(t *testing.T) {
	s := Reduce(nil, SetPendingScore{IndicatorCode: "2.1", Column: "LT1", Value: "1", Source: "LT"})
	s = Reduce(s, SetPendingComment{IndicatorCode: "2.1", Comment: "c"})

	onlyScores := Reduce(s, ClearComments{})
	assert.Empty(t, onlyScores.Comments)
	assert.Len(t, onlyScores.LTScores, 1)

	empty := Reduce(s, ClearAllPending{})
	assert.Empty(t, empty.Comments)
	assert.Empty(t, empty.LTScores)
	assert.Equal(t, 0, empty.Count())
}

func TestReduceStatusFlags(t *testing.T) {
	start := Reduce(nil, SetPendingScore{IndicatorCode: "2.1", Column: "LT1", Value: "1", Source: "LT"})
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s := Reduce(start, SetSyncing{Syncing: true})
	s = Reduce(s, SetError{Message: "boom"})
	s = Reduce(s, SetLastSync{Time: when})

	assert.True(t, s.IsSyncing)
	assert.Equal(t, "boom", s.Error)
	require.NotNil(t, s.LastSyncTime)
	assert.True(t, when.Equal(*s.LastSyncTime))
	assert.Equal(t, start.LTScores, s.LTScores, "status flags do not touch pending data")

	s = Reduce(s, SetError{})
	assert.Empty(t, s.Error)
}

func TestReduceClearSynced(t *testing.T) {
	start := NewState()
	start.LTScores = schema.PendingScores{
		"2.1": {
			"LT1": {Value: "1", Source: "LT", Timestamp: 10},
			"LT2": {Value: "0", Source: "LT", Timestamp: 20},
		},
		"2.2": {"LT1": {Value: "NA", Source: "LT", Timestamp: 10}},
	}
	start.Comments = schema.PendingComments{
		"2.1": {Comment: "pushed", Timestamp: 10},
		"2.2": {Comment: "edited", Timestamp: 30},
	}

	next := Reduce(start, ClearSynced{
		Scores: []schema.PendingEntry{
			{IndicatorCode: "2.1", Column: "LT1", Value: "1", Source: "LT", Timestamp: 10},
			{IndicatorCode: "2.1", Column: "LT2", Value: "1", Source: "LT", Timestamp: 20},
			{IndicatorCode: "2.2", Column: "LT1", Value: "NA", Source: "LT", Timestamp: 10},
			{IndicatorCode: "9.9", Column: "LT1", Value: "1", Source: "LT", Timestamp: 10},
		},
		Comments: schema.PendingComments{
			"2.1": {Comment: "pushed", Timestamp: 10},
			"2.2": {Comment: "edited", Timestamp: 15},
		},
	})

	assert.Equal(t, schema.PendingScores{
		"2.1": {"LT2": {Value: "0", Source: "LT", Timestamp: 20}},
	}, next.LTScores)
	assert.Equal(t, schema.PendingComments{"2.2": {Comment: "edited", Timestamp: 30}}, next.Comments)
}
