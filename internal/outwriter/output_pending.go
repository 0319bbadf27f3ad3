package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
)

// PendingView is everything a pending listing shows.
type PendingView struct {
	Status   schema.SyncStatus      `json:"status"`
	Scores   []schema.PendingEntry  `json:"scores"`
	Comments schema.PendingComments `json:"comments"`
}

// WritePending writes unsynced edits in the configured output format.
func WritePending(w io.Writer, view PendingView, cfg *contract.Config) error {
	codes := slices.Sorted(maps.Keys(view.Comments))
	return dispatch(w, cfg, view, []string{"kind", "indicator", "column", "value", "source", "timestamp"},
		func(cw *csv.Writer) error {
			for _, e := range view.Scores {
				if err := cw.Write([]string{"score", e.IndicatorCode, e.Column, e.Value, e.Source, strconv.FormatInt(e.Timestamp, 10)}); err != nil {
					return err
				}
			}
			for _, code := range codes {
				c := view.Comments[code]
				if err := cw.Write([]string{"comment", code, "", c.Comment, "", strconv.FormatInt(c.Timestamp, 10)}); err != nil {
					return err
				}
			}
			return nil
		},
		func(w io.Writer) error {
			return writePendingTable(w, view, codes, cfg)
		})
}

func writePendingTable(w io.Writer, view PendingView, codes []string, cfg *contract.Config) error {
	if len(view.Scores) > 0 {
		data := make([][]string, 0, len(view.Scores))
		for _, e := range view.Scores {
			data = append(data, []string{e.IndicatorCode, e.Column, e.Value, e.Source, formatMillis(e.Timestamp)})
		}
		if err := renderTable(w, []string{"Indicator", "Column", "Value", "Source", "Edited"}, data); err != nil {
			return err
		}
	}
	if len(codes) > 0 {
		maxDesc := GetMaxDescriptionWidth(cfg)
		data := make([][]string, 0, len(codes))
		for _, code := range codes {
			c := view.Comments[code]
			text := c.Comment
			if text == "" {
				text = "(delete)"
			}
			data = append(data, []string{code, contract.TruncateText(text, maxDesc), formatMillis(c.Timestamp)})
		}
		if err := renderTable(w, []string{"Indicator", "Comment", "Edited"}, data); err != nil {
			return err
		}
	}
	return writeSyncStatus(w, view.Status)
}

func writeSyncStatus(w io.Writer, status schema.SyncStatus) error {
	last := "never"
	if status.LastSyncTime != nil {
		last = status.LastSyncTime.Local().Format(time.DateTime)
	}
	if _, err := fmt.Fprintf(w, "Pending changes: %d, last sync: %s\n", status.PendingCount, last); err != nil {
		return err
	}
	if status.Error != "" {
		if _, err := fmt.Fprintf(w, "Last error: %s\n", status.Error); err != nil {
			return err
		}
	}
	return nil
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format(time.DateTime)
}

// WriteSyncResults writes the outcome of a save run.
func WriteSyncResults(w io.Writer, results []schema.SyncResult, cfg *contract.Config) error {
	return dispatch(w, cfg, results, []string{"source", "success", "scores", "comments", "synced_at"},
		func(cw *csv.Writer) error {
			for _, r := range results {
				synced := ""
				if !r.SyncedAt.IsZero() {
					synced = r.SyncedAt.Format(time.RFC3339)
				}
				if err := cw.Write([]string{r.Source, strconv.FormatBool(r.Success), strconv.Itoa(r.Count), strconv.Itoa(r.Comments), synced}); err != nil {
					return err
				}
			}
			return nil
		},
		func(w io.Writer) error {
			if len(results) == 0 {
				_, err := fmt.Fprintln(w, "Nothing to sync")
				return err
			}
			for _, r := range results {
				source := r.Source
				if source == "" {
					source = "comments"
				}
				state := "saved"
				if !r.Success {
					state = "failed"
				}
				if _, err := fmt.Fprintf(w, "%s: %s %d scores, %d comments\n", source, state, r.Count, r.Comments); err != nil {
					return err
				}
			}
			return nil
		})
}
