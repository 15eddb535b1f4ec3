package intern

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/intern/output"
)

// lowHitRatio is the hit ratio below which Report flags the table.
const lowHitRatio = 0.5

// Stats describes the state of a Table.
type Stats struct {
	// Strings is the number of distinct strings stored.
	Strings int

	// Hits counts adds of content that was already stored, Misses adds that
	// stored new content.
	Hits   uint64
	Misses uint64

	// ArenaBytes is the string content stored, ArenaReserved the chunk
	// capacity allocated for it.
	ArenaBytes    int64
	ArenaReserved int64
	Chunks        int
}

// Stats returns a snapshot of the table's counters.
func (t *Table) Stats() Stats {
	return Stats{
		Strings:       len(t.strings),
		Hits:          t.hits,
		Misses:        t.misses,
		ArenaBytes:    t.arena.used,
		ArenaReserved: t.arena.reserved,
		Chunks:        t.arena.chunks,
	}
}

// HitRatio returns the fraction of adds that found existing content.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Report writes the stats as an aligned list of labels and values.
// styles may be nil for plain output.
func (s Stats) Report(w io.Writer, styles *output.Styles) {
	ratio := fmt.Sprintf("%.1f%%", s.HitRatio()*100)
	if styles != nil && s.Hits+s.Misses > 0 {
		if s.HitRatio() < lowHitRatio {
			ratio = styles.Warning(ratio)
		} else {
			ratio = styles.Good(ratio)
		}
	}

	rows := []struct {
		label string
		value string
	}{
		{"Strings", count(styles, fmt.Sprintf("%d", s.Strings))},
		{"Hits", count(styles, fmt.Sprintf("%d", s.Hits))},
		{"Misses", count(styles, fmt.Sprintf("%d", s.Misses))},
		{"Hit ratio", ratio},
		{"Arena used", count(styles, formatBytes(s.ArenaBytes))},
		{"Arena reserved", count(styles, formatBytes(s.ArenaReserved))},
		{"Chunks", count(styles, fmt.Sprintf("%d", s.Chunks))},
	}

	width := 0
	for _, row := range rows {
		width = max(width, runewidth.StringWidth(row.label))
	}

	for _, row := range rows {
		label := runewidth.FillRight(row.label, width)
		if styles != nil {
			label = styles.Keyword(label)
		}
		_, _ = fmt.Fprintf(w, "%s  %s\n", label, row.value)
	}
}

func count(styles *output.Styles, text string) string {
	if styles == nil {
		return text
	}
	return styles.Count(text)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
