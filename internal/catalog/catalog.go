package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/dbsmedya/monkeyexplorer/internal/logger"
)

var (
	// ErrEmptyCatalog is returned when a catalog is built without records.
	ErrEmptyCatalog = errors.New("catalog has no records")
	// ErrDuplicateName is returned when two records share a name ignoring case.
	ErrDuplicateName = errors.New("duplicate monkey name")
	// ErrInvalidRecord is returned when a record fails presence checks.
	ErrInvalidRecord = errors.New("invalid monkey record")
)

// Observer is notified after the catalog records an access.
// Implementations must not call back into the catalog.
type Observer interface {
	MonkeyViewed(name string)
	CatalogListed()
	CountsReset()
}

// SessionStats is a consistent view of the access ledger.
type SessionStats struct {
	TotalAccesses    int         // Listings plus monkey views
	Views            []ViewCount // Per-monkey views in first-view order
	MostPopular      string      // Empty when nothing has been viewed
	MostPopularViews int
}

// Catalog owns the fixed monkey collection and its access ledger.
// It is safe for concurrent use.
type Catalog struct {
	monkeys []Monkey
	ledger  *accessLedger

	rngMu sync.Mutex
	rng   *rand.Rand

	observers []Observer
	log       *logger.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRand sets the random source used by RandomPick.
func WithRand(r *rand.Rand) Option {
	return func(c *Catalog) {
		c.rng = r
	}
}

// WithSeed makes RandomPick reproducible. A zero seed is ignored.
func WithSeed(seed int64) Option {
	return func(c *Catalog) {
		if seed != 0 {
			c.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		}
	}
}

// WithObserver registers an observer for access events.
func WithObserver(o Observer) Option {
	return func(c *Catalog) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithLogger sets the logger used for access events.
func WithLogger(log *logger.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

// New builds a catalog over a copy of monkeys.
func New(monkeys []Monkey, opts ...Option) (*Catalog, error) {
	if err := ValidateRecords(monkeys); err != nil {
		return nil, err
	}

	c := &Catalog{
		monkeys: make([]Monkey, len(monkeys)),
		ledger:  newAccessLedger(),
		log:     logger.NewNop(),
	}
	for i, m := range monkeys {
		c.monkeys[i] = m.clone()
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return c, nil
}

// NewDefault builds a catalog over the built-in species collection.
func NewDefault(opts ...Option) *Catalog {
	c, err := New(DefaultMonkeys(), opts...)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// ValidateRecords runs the presence checks applied when building a catalog.
func ValidateRecords(monkeys []Monkey) error {
	if len(monkeys) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]int, len(monkeys))
	for i, m := range monkeys {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: record %d has no name", ErrInvalidRecord, i)
		}
		if m.Population != nil && *m.Population < 0 {
			return fmt.Errorf("%w: %q has negative population", ErrInvalidRecord, m.Name)
		}
		key := strings.ToLower(m.Name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q (records %d and %d)", ErrDuplicateName, m.Name, prev, i)
		}
		seen[key] = i
	}
	return nil
}

// ListAll returns every monkey in catalog order. Each call counts as one
// catalog access against the total but not against any single monkey.
func (c *Catalog) ListAll() []Monkey {
	c.ledger.recordTouch()
	c.log.Debug("catalog listed")
	for _, o := range c.observers {
		o.CatalogListed()
	}
	return c.copyMonkeys()
}

// FindByName returns the monkey whose name matches ignoring case.
// Blank input never matches and records nothing.
func (c *Catalog) FindByName(name string) (Monkey, bool) {
	if strings.TrimSpace(name) == "" {
		return Monkey{}, false
	}

	for _, m := range c.monkeys {
		if strings.EqualFold(m.Name, name) {
			c.recordView(m.Name)
			return m.clone(), true
		}
	}

	c.log.WithQuery(name).Debug("monkey not found")
	return Monkey{}, false
}

// RandomPick returns a uniformly chosen monkey and records the view.
func (c *Catalog) RandomPick() Monkey {
	c.rngMu.Lock()
	idx := c.rng.IntN(len(c.monkeys))
	c.rngMu.Unlock()

	m := c.monkeys[idx]
	c.recordView(m.Name)
	return m.clone()
}

// Count returns the number of monkeys in the catalog.
func (c *Catalog) Count() int {
	return len(c.monkeys)
}

// Names returns every monkey name in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.monkeys))
	for i, m := range c.monkeys {
		names[i] = m.Name
	}
	return names
}

// Suggestions returns up to n names from the start of the catalog.
func (c *Catalog) Suggestions(n int) []string {
	names := c.Names()
	if n < 0 {
		n = 0
	}
	if n < len(names) {
		names = names[:n]
	}
	return names
}

// FindByLocation returns monkeys whose location contains substr ignoring
// case, in catalog order. Blank input yields an empty result.
func (c *Catalog) FindByLocation(substr string) []Monkey {
	result := []Monkey{}
	if strings.TrimSpace(substr) == "" {
		return result
	}

	needle := strings.ToLower(substr)
	for _, m := range c.monkeys {
		if strings.Contains(strings.ToLower(m.Location), needle) {
			result = append(result, m.clone())
		}
	}
	return result
}

// AccessCount returns the recorded views for name, or zero.
// Names are matched exactly as stored in the catalog.
func (c *Catalog) AccessCount(name string) int {
	return c.ledger.count(name)
}

// TotalAccessCount returns the session access total.
func (c *Catalog) TotalAccessCount() int {
	return c.ledger.totalCount()
}

// AccessSnapshot returns a copy of the per-monkey view counters.
func (c *Catalog) AccessSnapshot() map[string]int {
	return c.ledger.snapshot()
}

// MostPopular returns the most viewed monkey. On a tie the monkey that
// reached the top count first keeps the lead.
func (c *Catalog) MostPopular() (string, bool) {
	name, _, ok := c.ledger.mostPopular()
	return name, ok
}

// Stats returns the ledger totals read in one consistent pass.
func (c *Catalog) Stats() SessionStats {
	return c.ledger.stats()
}

// ResetAccessCounts clears every counter. The monkey collection is untouched.
func (c *Catalog) ResetAccessCounts() {
	c.ledger.reset()
	c.log.Info("access counts reset")
	for _, o := range c.observers {
		o.CountsReset()
	}
}

// AllLocations returns the distinct non-empty locations sorted ascending.
func (c *Catalog) AllLocations() []string {
	locations := make([]string, 0, len(c.monkeys))
	for _, m := range c.monkeys {
		if strings.TrimSpace(m.Location) == "" {
			continue
		}
		locations = append(locations, m.Location)
	}
	slices.Sort(locations)
	return slices.Compact(locations)
}

func (c *Catalog) recordView(name string) {
	count := c.ledger.recordView(name)
	c.log.WithMonkey(name).Debugw("monkey viewed", "views", count)
	for _, o := range c.observers {
		o.MonkeyViewed(name)
	}
}

func (c *Catalog) copyMonkeys() []Monkey {
	out := make([]Monkey, len(c.monkeys))
	for i, m := range c.monkeys {
		out[i] = m.clone()
	}
	return out
}
