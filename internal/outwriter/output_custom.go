package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
)

// WriteCustomGraphs writes scored custom graphs in the configured output format.
func WriteCustomGraphs(w io.Writer, results []schema.CustomGraphResult, cfg *contract.Config) error {
	return dispatch(w, cfg, results, []string{"graph", "dimension", "outcome", "score", "values"},
		func(cw *csv.Writer) error {
			for _, g := range results {
				for _, bar := range g.Bars {
					if err := cw.Write([]string{g.Name, g.Dimension, bar.Code, strconv.Itoa(bar.Score), joinInts(bar.Values)}); err != nil {
						return err
					}
				}
			}
			return nil
		},
		func(w io.Writer) error {
			for _, g := range results {
				if _, err := fmt.Fprintf(w, "%s (%s, %s)\n", g.Title, g.Name, g.Dimension); err != nil {
					return err
				}
				data := make([][]string, 0, len(g.Bars))
				for _, bar := range g.Bars {
					data = append(data, []string{bar.Code, strconv.Itoa(bar.Score), outcomeSymbol(cfg, bar.Score), joinInts(bar.Values)})
				}
				if err := renderTable(w, []string{"Outcome", "Score", "Symbol", "Values"}, data); err != nil {
					return err
				}
			}
			return nil
		})
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "|")
}
