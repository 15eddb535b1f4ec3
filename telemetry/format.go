package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/robinvdvleuten/intern/output"
)

// slowThreshold marks operations highlighted in styled reports.
const slowThreshold = 100 * time.Millisecond

// formatTimingTree writes the tree rooted at root, for example:
//
//	load: 125ms
//	├─ intern.AddLines: 85ms (50000 items)
//	└─ intern.AddAll: 40ms (1200 items)
func formatTimingTree(w io.Writer, root *timerNode, styles *output.Styles) {
	duration := root.end.Sub(root.start)

	name := root.name
	if styles != nil {
		name = styles.Keyword(name)
	}
	_, _ = fmt.Fprintf(w, "%s: %s%s\n", name, formatDuration(duration), formatItems(root.items))

	for i, child := range root.children {
		formatNode(w, child, "", i == len(root.children)-1, styles)
	}
}

func formatNode(w io.Writer, node *timerNode, prefix string, isLast bool, styles *output.Styles) {
	duration := node.end.Sub(node.start)

	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	tree := prefix + branch
	timing := formatDuration(duration)
	if styles != nil {
		tree = styles.Dim(tree)
		timing = styles.Timing(timing, duration >= slowThreshold)
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s%s\n", tree, node.name, timing, formatItems(node.items))

	for i, child := range node.children {
		formatNode(w, child, prefix+extension, i == len(node.children)-1, styles)
	}
}

// formatDuration shows milliseconds below one second and seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		ms := float64(d) / float64(time.Millisecond)
		return fmt.Sprintf("%.0fms", ms)
	}
	s := float64(d) / float64(time.Second)
	return fmt.Sprintf("%.2fs", s)
}

func formatItems(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf(" (%d items)", n)
}
