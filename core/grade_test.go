package core

import (
	"testing"

	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestGradeFromPercentage(t *testing.T) {
	th := DefaultGradeThresholds()
	tests := []struct {
		pct      float64
		expected schema.Grade
	}{
		{100, schema.GradeFA},
		{90, schema.GradeFA},
		{89.9, schema.GradeMA},
		{70, schema.GradeMA},
		{69.99, schema.GradeA},
		{50, schema.GradeA},
		{49.9, schema.GradeNS},
		{0, schema.GradeNS},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, GradeFromPercentage(tt.pct, th), "pct %v", tt.pct)
	}
}

func TestCalculateOutcomeScore(t *testing.T) {
	values := map[string]schema.IndicatorValue{
		"1": schema.YesValue, "2": schema.YesValue, "3": schema.YesValue,
		"4": schema.YesValue, "5": schema.YesValue, "6": schema.YesValue,
		"7": schema.YesValue, "8": schema.YesValue, "9": schema.YesValue,
		"10": schema.NoValue, "11": schema.NoValue, "12": schema.NoValue,
		"13": schema.NRValue,
	}
	th := DefaultGradeThresholds()

	tests := []struct {
		name     string
		codes    []string
		expected schema.Grade
	}{
		{"empty", nil, schema.GradeNR},
		{"only unscored", []string{"13", "missing"}, schema.GradeNR},
		{"ninety percent", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, schema.GradeFA},
		{"eight of nine is unrounded", []string{"1", "2", "3", "4", "5", "6", "7", "8", "10"}, schema.GradeMA},
		{"seventy percent", []string{"1", "2", "3", "4", "5", "6", "7", "10", "11", "12"}, schema.GradeMA},
		{"half", []string{"1", "10", "13"}, schema.GradeA},
		{"two of five", []string{"1", "2", "10", "11", "12"}, schema.GradeNS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateOutcomeScore(tt.codes, values, th))
		})
	}
}
