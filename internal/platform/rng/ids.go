package rng

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// IDSource hands out monotonic ids per entity kind ("fighter-1", "fight-2").
// It replaces ambient package-level counters so that a restored save can
// continue numbering where it left off.
type IDSource struct {
	mu   sync.Mutex
	next map[string]int
}

// NewIDSource creates an empty id source.
func NewIDSource() *IDSource {
	return &IDSource{next: make(map[string]int)}
}

// Next returns the next id for the given kind.
func (g *IDSource) Next(kind string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next[kind]++
	return fmt.Sprintf("%s-%d", kind, g.next[kind])
}

// Advance fast-forwards a kind's counter to at least n. Used when resuming
// a save so freshly generated ids never collide with persisted ones.
func (g *IDSource) Advance(kind string, n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next[kind] < n {
		g.next[kind] = n
	}
}

// AdvancePast scans "kind-N" ids and advances the counter past the highest
// one found. Ids of other kinds or shapes are ignored.
func (g *IDSource) AdvancePast(kind string, ids []string) {
	prefix := kind + "-"
	max := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err == nil && n > max {
			max = n
		}
	}
	g.Advance(kind, max)
}
