package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{"two of three", 1, 200.0 / 3, "66.7"},
		{"full share", 1, 100, "100.0"},
		{"two decimals", 2, 100.0 / 3, "33.33"},
		{"no decimals", 0, 49.6, "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, createFormatters(tt.precision)(tt.value))
		})
	}
}

func TestWriteJSONIndentsSchemaTypes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, schema.Distribution{Score3: 2, Score1: 1, Total: 3}))
	assert.Equal(t, `{
  "score0": 0,
  "score1": 1,
  "score2": 0,
  "score3": 2,
  "total": 3
}
`, buf.String())
}

func TestWriteJSONError(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteCSVWithHeader(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected string
	}{
		{
			name:     "header only",
			expected: "indicator,value\n",
		},
		{
			name:     "rows",
			rows:     [][]string{{"82", "yes"}, {"83", "no"}},
			expected: "indicator,value\n82,yes\n83,no\n",
		},
		{
			name:     "quoted comment",
			rows:     [][]string{{"84", "seen, twice"}},
			expected: "indicator,value\n84,\"seen, twice\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeCSVWithHeader(&buf, []string{"indicator", "value"}, func(w *csv.Writer) error {
				for _, row := range tt.rows {
					if err := w.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}

	t.Run("row error", func(t *testing.T) {
		var buf bytes.Buffer
		err := writeCSVWithHeader(&buf, []string{"indicator"}, func(*csv.Writer) error { return assert.AnError })
		assert.Equal(t, assert.AnError, err)
	})
}

func TestWriteWithFile(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.txt")
		err := writeWithFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, "FA")
			return err
		}, "Wrote report")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "FA", string(content))
	})

	t.Run("writer error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.txt")
		err := writeWithFile(path, func(io.Writer) error { return assert.AnError }, "Wrote report")
		assert.Equal(t, assert.AnError, err)
	})

	t.Run("bad path", func(t *testing.T) {
		err := writeWithFile("/nonexistent/dir/report.txt", func(io.Writer) error { return nil }, "Wrote report")
		require.Error(t, err)
	})
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, []string{"Outcome", "Score"}, [][]string{{"2.1.2.1", "3"}, {"2.1.2.2", "1"}}))
	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "OUTCOME")
	assert.Contains(t, out, "2.1.2.1")
	assert.Contains(t, out, "2.1.2.2")
}

func TestPlainLabels(t *testing.T) {
	cfg := &contract.Config{UseColors: false}
	assert.Equal(t, "Mostly Achieved", gradeLabel(cfg, schema.GradeMA))
	assert.Equal(t, schema.OutcomeSymbol(2), outcomeSymbol(cfg, 2))
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		output   schema.OutputMode
		expected string
	}{
		{schema.JSONOut, "{\n  \"n\": 1\n}\n"},
		{schema.ParquetOut, "{\n  \"n\": 1\n}\n"},
		{schema.CSVOut, "n\n1\n"},
		{schema.TextOut, "n=1\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.output), func(t *testing.T) {
			var buf bytes.Buffer
			err := dispatch(&buf, &contract.Config{Output: tt.output}, map[string]int{"n": 1}, []string{"n"},
				func(cw *csv.Writer) error { return cw.Write([]string{"1"}) },
				func(w io.Writer) error {
					_, err := io.WriteString(w, "n=1\n")
					return err
				})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
