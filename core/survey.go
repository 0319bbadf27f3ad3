package core

import "github.com/huangsam/schoolscore/schema"

// TallySurvey counts ratings per indicator. Responses from rejected
// respondents never count; online responses count only when includeOnline is
// set. Ratings outside 1..3 are ignored.
func TallySurvey(responses []schema.SurveyResponse, includeOnline bool) map[string]schema.RatingTally {
	tallies := make(map[string]schema.RatingTally)
	for _, r := range responses {
		if r.Status == schema.RejectedStatus {
			continue
		}
		if r.Online && !includeOnline {
			continue
		}
		t := tallies[r.IndicatorCode]
		switch r.Rating {
		case schema.RatingVeryGood:
			t.VeryGood++
		case schema.RatingGood:
			t.Good++
		case schema.RatingNotGood:
			t.NotGood++
		default:
			continue
		}
		t.Total++
		tallies[r.IndicatorCode] = t
	}
	return tallies
}
