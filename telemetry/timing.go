package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/robinvdvleuten/intern/output"
)

// TimingCollector collects trees of timed operations. Each timer started
// while no other timer is running begins a new tree.
type TimingCollector struct {
	roots   []*timerNode
	current *timerNode
	mu      sync.Mutex
}

type timerNode struct {
	name     string
	start    time.Time
	end      time.Time
	items    int
	children []*timerNode
	parent   *timerNode
}

// NewTimingCollector creates a new timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation. It nests under the timer that is
// currently running, if any.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &timerNode{
		name:   name,
		start:  time.Now(),
		parent: c.current,
	}

	if c.current == nil {
		c.roots = append(c.roots, node)
	} else {
		c.current.children = append(c.current.children, node)
	}
	c.current = node

	return &timingTimer{
		collector: c,
		node:      node,
	}
}

// Report writes every timing tree to w in the order the roots were started.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, root := range c.roots {
		formatTimingTree(w, root, styles)
	}
}

type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.end = time.Now()

	if t.collector.current == t.node {
		t.collector.current = t.node.parent
	}
}

func (t *timingTimer) Add(n int) {
	t.collector.mu.Lock()
	t.node.items += n
	t.collector.mu.Unlock()
}
