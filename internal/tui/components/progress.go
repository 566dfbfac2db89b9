package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Progress renders a reading position bar like: ■■■■□□□□ 4/8
type Progress struct {
	Read  int // entries already read
	Total int
	Width int // character width of the bar portion
}

// NewProgress creates a new Progress instance.
func NewProgress(read, total, width int) Progress {
	return Progress{
		Read:  read,
		Total: total,
		Width: width,
	}
}

// View returns the rendered progress bar string.
func (p Progress) View() string {
	if p.Total <= 0 || p.Width <= 0 {
		return ""
	}

	// Clamp read count to valid range
	read := p.Read
	if read < 0 {
		read = 0
	}
	if read > p.Total {
		read = p.Total
	}

	// Calculate filled portion
	filled := (read * p.Width) / p.Total

	// Build the bar
	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, p.Width-filled)

	return fmt.Sprintf("%s %d/%d", bar, read, p.Total)
}
