package catalog

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
)

// ViewCount is the number of recorded views for one monkey.
type ViewCount struct {
	Name  string
	Count int
}

// accessLedger tracks per-name view counters and the session total.
//
// Invariant: total == sum(counts) + touches, where touches are catalog-wide
// accesses (listings) that do not belong to a single name. Every recorded
// event updates its counters inside one critical section.
type accessLedger struct {
	mu     sync.RWMutex
	counts *orderedmap.OrderedMap[string, int] // name -> views, in first-view order
	total  int

	// leader is the first name to reach leaderCount; a later name only
	// takes over by strictly exceeding it.
	leader      string
	leaderCount int
}

func newAccessLedger() *accessLedger {
	return &accessLedger{
		counts: orderedmap.NewOrderedMap[string, int](),
	}
}

// recordView counts one view of name and returns its new counter value.
func (l *accessLedger) recordView(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count, _ := l.counts.Get(name)
	count++
	l.counts.Set(name, count)
	l.total++

	if count > l.leaderCount {
		l.leader = name
		l.leaderCount = count
	}
	return count
}

// recordTouch counts a catalog-wide access against the total only.
func (l *accessLedger) recordTouch() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.total++
}

func (l *accessLedger) count(name string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count, _ := l.counts.Get(name)
	return count
}

func (l *accessLedger) totalCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.total
}

// snapshot returns a copy of the per-name counters.
func (l *accessLedger) snapshot() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]int, l.counts.Len())
	for el := l.counts.Front(); el != nil; el = el.Next() {
		out[el.Key] = el.Value
	}
	return out
}

// mostPopular returns the current leader and its count.
func (l *accessLedger) mostPopular() (string, int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.counts.Len() == 0 {
		return "", 0, false
	}
	return l.leader, l.leaderCount, true
}

// stats reads every counter in a single critical section.
func (l *accessLedger) stats() SessionStats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := SessionStats{
		TotalAccesses: l.total,
		Views:         make([]ViewCount, 0, l.counts.Len()),
	}
	for el := l.counts.Front(); el != nil; el = el.Next() {
		s.Views = append(s.Views, ViewCount{Name: el.Key, Count: el.Value})
	}
	if l.counts.Len() > 0 {
		s.MostPopular = l.leader
		s.MostPopularViews = l.leaderCount
	}
	return s
}

func (l *accessLedger) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts = orderedmap.NewOrderedMap[string, int]()
	l.total = 0
	l.leader = ""
	l.leaderCount = 0
}
