package schema

import "slices"

// gradeLabels maps grades to their display labels.
var gradeLabels = map[Grade]string{
	GradeFA: "Fully Achieved",
	GradeMA: "Mostly Achieved",
	GradeA:  "Achieved",
	GradeNS: "Not Sufficient",
	GradeNR: "Not Reviewed",
}

// GradeLabel returns the display label of a grade, defaulting to Not Reviewed.
func GradeLabel(g Grade) string {
	if label, ok := gradeLabels[g]; ok {
		return label
	}
	return gradeLabels[GradeNR]
}

// OutcomeSymbol renders a 0-3 outcome score as filled and empty dots.
func OutcomeSymbol(score int) string {
	switch score {
	case 3:
		return "●●●"
	case 2:
		return "●●○"
	case 1:
		return "●○○"
	default:
		return "○○○"
	}
}

// IsLTColumn reports whether column is one of the LT observer columns.
func IsLTColumn(column string) bool {
	return slices.Contains(LTColumns, column)
}

// FindDimension returns the dimension with the given id.
func FindDimension(id string) (Dimension, bool) {
	for _, d := range Dimensions {
		if d.ID == id {
			return d, true
		}
	}
	return Dimension{}, false
}

// SurveySettingKey is the settings key gating online submissions for a survey kind.
func SurveySettingKey(kind SurveyKind) string {
	return string(kind) + "SurveyEnabled"
}
