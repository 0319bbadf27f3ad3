package outwriter

import (
	"os"

	"github.com/huangsam/schoolscore/internal/contract"
	"golang.org/x/term"
)

const (
	// fixedColumnsWidth covers every report column except the description.
	fixedColumnsWidth = 75
	minDescription    = 15
	maxDescription    = 70
)

// GetMaxDescriptionWidth sizes the outcome description column to the terminal.
// An explicit cfg.Width wins; otherwise the stdout width is used, or 80 when unknown.
func GetMaxDescriptionWidth(cfg *contract.Config) int {
	width := cfg.Width
	if width == 0 {
		width = 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return max(minDescription, min(maxDescription, width-fixedColumnsWidth))
}
