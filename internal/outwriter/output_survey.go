package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
)

// SurveyTallyView is a tally of one survey kind.
type SurveyTallyView struct {
	Kind          schema.SurveyKind             `json:"kind"`
	OnlineEnabled bool                          `json:"onlineEnabled"`
	Tallies       map[string]schema.RatingTally `json:"tallies"`
}

// WriteSurveyTally writes rating counts per indicator in the configured output format.
func WriteSurveyTally(w io.Writer, view SurveyTallyView, cfg *contract.Config) error {
	codes := slices.Sorted(maps.Keys(view.Tallies))
	fmtFloat := createFormatters(cfg.Precision)
	share := func(n, total int) string {
		if total == 0 {
			return fmtFloat(0)
		}
		return fmtFloat(float64(n) / float64(total) * 100)
	}
	return dispatch(w, cfg, view, []string{"indicator", "very_good", "good", "not_good", "total"},
		func(cw *csv.Writer) error {
			for _, code := range codes {
				t := view.Tallies[code]
				rec := []string{code, strconv.Itoa(t.VeryGood), strconv.Itoa(t.Good), strconv.Itoa(t.NotGood), strconv.Itoa(t.Total)}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		},
		func(w io.Writer) error {
			data := make([][]string, 0, len(codes))
			for _, code := range codes {
				t := view.Tallies[code]
				data = append(data, []string{
					code,
					strconv.Itoa(t.VeryGood),
					strconv.Itoa(t.Good),
					strconv.Itoa(t.NotGood),
					strconv.Itoa(t.Total),
					share(t.VeryGood, t.Total) + "%",
				})
			}
			if err := renderTable(w, []string{"Indicator", "Very good", "Good", "Not good", "Total", "Very good %"}, data); err != nil {
				return err
			}
			gate := "closed"
			if view.OnlineEnabled {
				gate = "open"
			}
			_, err := fmt.Fprintf(w, "%s survey: %d indicators rated, online submissions %s\n", view.Kind, len(codes), gate)
			return err
		})
}

// GradeView is the result of grading an ad hoc set of indicators.
type GradeView struct {
	Codes []string     `json:"codes"`
	Grade schema.Grade `json:"grade"`
	Label string       `json:"label"`
}

// WriteGrade writes a single grade in the configured output format.
func WriteGrade(w io.Writer, view GradeView, cfg *contract.Config) error {
	view.Label = contract.GetPlainGrade(view.Grade)
	return dispatch(w, cfg, view, []string{"grade", "label", "indicators"},
		func(cw *csv.Writer) error {
			return cw.Write([]string{string(view.Grade), view.Label, strconv.Itoa(len(view.Codes))})
		},
		func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s (%s) from %d indicators\n", view.Grade, gradeLabel(cfg, view.Grade), len(view.Codes))
			return err
		})
}
