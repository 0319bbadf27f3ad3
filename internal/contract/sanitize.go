package contract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/huangsam/schoolscore/schema"
)

// Input limits.
const (
	MaxIndicatorCodeLength = 50
	MaxSourceLength        = 50
	MaxCommentLength       = 2000
)

var (
	indicatorCodePattern = regexp.MustCompile(`^[A-Za-z0-9.\-_]+$`)
	dangerousTagPattern  = regexp.MustCompile(`(?i)</?\s*(script|iframe|object|embed|form|input|button|meta|link|style)\b[^>]*>`)
	handlerAttrPattern   = regexp.MustCompile(`(?i)\bon[a-z]+\s*=\s*("[^"]*"|'[^']*')`)
	unsafeSchemePattern  = regexp.MustCompile(`(?i)(javascript|data|vbscript)\s*:`)
)

// SanitizeIndicatorCode trims the code and rejects anything outside [A-Za-z0-9._-] or longer than 50 characters.
func SanitizeIndicatorCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", NewValidationError("indicator", "indicator code is required")
	}
	if len(code) > MaxIndicatorCodeLength || !indicatorCodePattern.MatchString(code) {
		return "", NewValidationError("indicator", fmt.Sprintf("malformed indicator code %q", code))
	}
	return code, nil
}

// ValidateScore maps a raw checklist answer to yes, no or nr.
func ValidateScore(raw string) (schema.IndicatorValue, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "1", "✓":
		return schema.YesValue, nil
	case "no", "0", "✗":
		return schema.NoValue, nil
	case "nr", "-", "na":
		return schema.NRValue, nil
	}
	return schema.NullValue, NewValidationError("value", fmt.Sprintf("unrecognized score %q", raw))
}

// ValidateLTScore maps a raw LT answer to "1", "0" or "NA".
func ValidateLTScore(raw string) (string, error) {
	switch strings.TrimSpace(raw) {
	case "1", "yes":
		return schema.LTYes, nil
	case "0", "no":
		return schema.LTNo, nil
	case "NA", "na", "NR", "nr":
		return schema.LTNA, nil
	}
	return "", NewValidationError("value", fmt.Sprintf("unrecognized LT score %q", raw))
}

// SanitizeComment trims and caps the comment, then strips markup
// that could execute when the text is rendered.
func SanitizeComment(raw string) string {
	s := strings.TrimSpace(raw)
	if utf8.RuneCountInString(s) > MaxCommentLength {
		s = string([]rune(s)[:MaxCommentLength])
	}
	s = dangerousTagPattern.ReplaceAllString(s, "")
	s = handlerAttrPattern.ReplaceAllString(s, "")
	s = unsafeSchemePattern.ReplaceAllString(s, "")
	return s
}

// SanitizeSource trims the data source label and rejects empty or oversized values.
func SanitizeSource(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", NewValidationError("source", "source is required")
	}
	if utf8.RuneCountInString(s) > MaxSourceLength {
		return "", NewValidationError("source", fmt.Sprintf("source exceeds %d characters", MaxSourceLength))
	}
	return s, nil
}

// SanitizeSchoolID trims the school id and applies the indicator code character rules.
func SanitizeSchoolID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", NewValidationError("school-id", "school-id is required")
	}
	if len(s) > MaxIndicatorCodeLength || !indicatorCodePattern.MatchString(s) {
		return "", NewValidationError("school-id", fmt.Sprintf("malformed school id %q", s))
	}
	return s, nil
}
