//go:build basic

package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReviewFlowWithSQLite runs the CLI against SQLite files only.
func TestReviewFlowWithSQLite(t *testing.T) {
	t.Setenv("SCHOOLSCORE_REMOTE_BACKEND", "sqlite")
	t.Setenv("SCHOOLSCORE_REMOTE_DB_CONNECT", filepath.Join(t.TempDir(), "remote.db"))
	useLocalCache(t)
	runReviewFlow(t)
}

// TestGradeCommand checks the ad hoc grading command end to end.
func TestGradeCommand(t *testing.T) {
	useLocalCache(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"all yes", []string{"grade", "1=yes", "2=yes"}, "FA (Fully Achieved) from 2 indicators"},
		{"nr only", []string{"grade", "1=nr"}, "NR (Not Reviewed) from 1 indicators"},
		{"one of three", []string{"grade", "1=yes,2=no,3=no"}, "NS (Not Sufficient) from 3 indicators"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, append(tt.args, "--color", "no")...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

// TestSurveyGate checks that online submissions wait for the gate.
func TestSurveyGate(t *testing.T) {
	t.Setenv("SCHOOLSCORE_REMOTE_BACKEND", "sqlite")
	t.Setenv("SCHOOLSCORE_REMOTE_DB_CONNECT", filepath.Join(t.TempDir(), "remote.db"))
	t.Setenv("SCHOOLSCORE_SCHOOL_ID", "S001")
	useLocalCache(t)

	out, err := runCommand(t, "survey", "submit", "parent", "82", "3", "--online")
	require.Error(t, err)
	assert.Contains(t, out, "online survey is not enabled")

	_, err = runCommand(t, "survey", "enable", "parent", "yes")
	require.NoError(t, err)
	_, err = runCommand(t, "survey", "submit", "parent", "82", "3", "--online")
	require.NoError(t, err)

	out, err = runCommand(t, "survey", "tally", "parent", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "82,1,0,0,1")
}

// TestPendingIsPerSchool checks that edits made for one school never reach another.
func TestPendingIsPerSchool(t *testing.T) {
	t.Setenv("SCHOOLSCORE_REMOTE_BACKEND", "sqlite")
	t.Setenv("SCHOOLSCORE_REMOTE_DB_CONNECT", filepath.Join(t.TempDir(), "remote.db"))
	useLocalCache(t)

	out, err := runCommand(t, "pending", "set", "85", "1", "--source", "LT1", "--school-id", "S001")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 unsynced)")

	out, err = runCommand(t, "pending", "set", "86", "0", "--source", "LT1", "--school-id", "S002")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 unsynced)")

	_, err = runCommand(t, "pending", "list")
	require.Error(t, err, "pending commands need a school")
}
