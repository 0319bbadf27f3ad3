package core

import (
	"testing"

	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeLTValue(t *testing.T) {
	tests := map[string]schema.IndicatorValue{
		"1":     schema.YesValue,
		"yes":   schema.YesValue,
		"TRUE":  schema.YesValue,
		"0":     schema.NoValue,
		" no ":  schema.NoValue,
		"false": schema.NoValue,
		"NA":    schema.NRValue,
		"nr":    schema.NRValue,
		"n/a":   schema.NRValue,
		"":      schema.NullValue,
		"maybe": schema.NullValue,
	}
	for raw, expected := range tests {
		assert.Equal(t, expected, NormalizeLTValue(raw), "raw %q", raw)
	}
}

func TestNormalizeIndicatorValue(t *testing.T) {
	tests := map[string]schema.IndicatorValue{
		"✓":    schema.YesValue,
		"Yes":  schema.YesValue,
		"Y":    schema.YesValue,
		"✗":    schema.NoValue,
		"N":    schema.NoValue,
		"NR":   schema.NRValue,
		"-":    schema.NullValue,
		"":     schema.NullValue,
		"0.75": schema.YesValue,
		"0.2":  schema.NoValue,
		"abc":  schema.NullValue,
	}
	for raw, expected := range tests {
		assert.Equal(t, expected, NormalizeIndicatorValue(raw), "raw %q", raw)
	}
}

func TestCollectDataPoints(t *testing.T) {
	view := schema.ScoreView{
		Checklist: map[string][]schema.DataPoint{
			"1": {{Source: "", Value: schema.YesValue}, {Source: "Principal", Value: schema.NoValue}},
		},
		LTScores: map[string]map[string]string{
			"1": {"LT1": "1", "LT2": "0", "LT3": "NA"},
		},
		PendingLT: map[string]map[string]string{
			"1": {"LT2": "1", "LT3": "", "LT5": "0"},
		},
	}

	points := CollectDataPoints("1", view)
	assert.Equal(t, []schema.DataPoint{
		{Source: "LT1", Value: schema.YesValue},
		{Source: "LT2", Value: schema.YesValue},
		{Source: "LT3", Value: schema.NRValue},
		{Source: "LT5", Value: schema.NoValue},
		{Source: "Checklist", Value: schema.YesValue},
		{Source: "Principal", Value: schema.NoValue},
	}, points)

	assert.Empty(t, CollectDataPoints("missing", view))
}
