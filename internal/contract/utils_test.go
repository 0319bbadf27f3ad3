package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorGrade(t *testing.T) {
	tests := []struct {
		grade schema.Grade
		label string
	}{
		{schema.GradeFA, "Fully Achieved"},
		{schema.GradeMA, "Mostly Achieved"},
		{schema.GradeA, "Achieved"},
		{schema.GradeNS, "Not Sufficient"},
		{schema.GradeNR, "Not Reviewed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.grade), func(t *testing.T) {
			assert.Equal(t, tt.label, GetPlainGrade(tt.grade))
			// Should contain the plain label
			assert.Contains(t, GetColorGrade(tt.grade), tt.label)
		})
	}
}

func TestGetColorSymbol(t *testing.T) {
	for score := range 4 {
		assert.Contains(t, GetColorSymbol(score), schema.OutcomeSymbol(score))
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestDBFilePaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	local := GetLocalCacheDBFilePath()
	remote := GetRemoteDBFilePath()

	assert.Contains(t, local, ".schoolscore_local.db")
	assert.Contains(t, remote, ".schoolscore_remote.db")
	assert.True(t, strings.HasPrefix(local, homeDir), "path %s should start with home dir %s", local, homeDir)
	assert.NotEqual(t, local, remote)
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"short", "Inclusivity", 20, "Inclusivity"},
		{"exact", "abcdef", 6, "abcdef"},
		{"truncated", "Teaching and learning", 10, "Teachin..."},
		{"tiny width ignored", "abcdef", 3, "abcdef"},
		{"multibyte", "résumé résumé", 8, "résum..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateText(tt.text, tt.width))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input     string
		expected  bool
		expectErr bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"", false, true},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
