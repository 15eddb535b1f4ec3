package intern

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/intern/output"
)

func TestStats(t *testing.T) {
	table := New()
	table.Add("a")
	table.Add("bc")
	table.AddBytes([]byte("a"))
	table.Lookup("a")
	_, _ = table.Get(0)

	assert.Equal(t, Stats{
		Strings:       2,
		Hits:          1,
		Misses:        2,
		ArenaBytes:    3,
		ArenaReserved: DefaultChunkSize,
		Chunks:        1,
	}, table.Stats())
}

func TestStatsHitRatio(t *testing.T) {
	assert.Equal(t, 0.0, Stats{}.HitRatio())
	assert.Equal(t, 0.75, Stats{Hits: 3, Misses: 1}.HitRatio())
}

func TestStatsReport(t *testing.T) {
	table := New()
	table.Add("a")
	table.Add("b")
	table.Add("a")

	var buf bytes.Buffer
	table.Stats().Report(&buf, nil)

	var want strings.Builder
	for _, row := range [][2]string{
		{"Strings", "2"},
		{"Hits", "1"},
		{"Misses", "2"},
		{"Hit ratio", "33.3%"},
		{"Arena used", "2 B"},
		{"Arena reserved", "4.0 KiB"},
		{"Chunks", "1"},
	} {
		fmt.Fprintf(&want, "%-14s  %s\n", row[0], row[1])
	}
	assert.Equal(t, want.String(), buf.String())
}

func TestStatsReportStyled(t *testing.T) {
	var buf bytes.Buffer
	Stats{Strings: 1, Misses: 1}.Report(&buf, output.NewStyles(&buf))

	assert.Contains(t, buf.String(), "Hit ratio")
	assert.Contains(t, buf.String(), "0.0%")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.n))
	}
}
