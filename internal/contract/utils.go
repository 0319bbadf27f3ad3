package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/schoolscore/schema"
)

// Color variables for console output.
var (
	FullyAchievedColor  = color.New(color.FgGreen, color.Bold) // top grade
	MostlyAchievedColor = color.New(color.FgCyan)
	AchievedColor       = color.New(color.FgYellow)
	NotSufficientColor  = color.New(color.FgRed, color.Bold)
	NotReviewedColor    = color.New(color.Faint)
)

// GetPlainGrade returns the grade label used for CSV, JSON and plain tables.
func GetPlainGrade(g schema.Grade) string {
	return schema.GradeLabel(g)
}

// GetColorGrade returns a colored grade label for console output (table).
func GetColorGrade(g schema.Grade) string {
	text := GetPlainGrade(g)

	switch g {
	case schema.GradeFA:
		return FullyAchievedColor.Sprint(text)
	case schema.GradeMA:
		return MostlyAchievedColor.Sprint(text)
	case schema.GradeA:
		return AchievedColor.Sprint(text)
	case schema.GradeNS:
		return NotSufficientColor.Sprint(text)
	default:
		return NotReviewedColor.Sprint(text)
	}
}

// GetColorSymbol returns the outcome symbol colored by its score.
func GetColorSymbol(score int) string {
	text := schema.OutcomeSymbol(score)
	switch score {
	case 3:
		return FullyAchievedColor.Sprint(text)
	case 2:
		return MostlyAchievedColor.Sprint(text)
	case 1:
		return AchievedColor.Sprint(text)
	default:
		return NotSufficientColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs an informational message to stderr.
func LogInfo(msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "%s\n", msg)
}

// GetLocalCacheDBFilePath returns the path to the SQLite DB file for the local pending cache.
func GetLocalCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".schoolscore_local.db"
	}
	return filepath.Join(homeDir, ".schoolscore_local.db")
}

// GetRemoteDBFilePath returns the path to the SQLite DB file used as the default remote store.
func GetRemoteDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".schoolscore_remote.db"
	}
	return filepath.Join(homeDir, ".schoolscore_remote.db")
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
