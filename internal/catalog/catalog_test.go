package catalog

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMonkeys() []Monkey {
	return []Monkey{
		{Name: "Sebastian", Location: "Seattle", Population: IntPtr(1)},
		{Name: "Henry", Location: "Phoenix", Population: IntPtr(1)},
		{Name: "Mooch", Location: "Seattle"},
		{Name: "Baboon", Location: "Africa & Asia", Latitude: FloatPtr(-8.783195), Longitude: FloatPtr(34.508523)},
	}
}

func newTestCatalog(t *testing.T, opts ...Option) *Catalog {
	t.Helper()
	c, err := New(testMonkeys(), opts...)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		monkeys []Monkey
		wantErr error
	}{
		{
			name:    "valid records",
			monkeys: testMonkeys(),
		},
		{
			name:    "empty catalog",
			monkeys: nil,
			wantErr: ErrEmptyCatalog,
		},
		{
			name:    "blank name",
			monkeys: []Monkey{{Name: "Henry"}, {Name: "   "}},
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "duplicate name ignoring case",
			monkeys: []Monkey{{Name: "Henry"}, {Name: "HENRY"}},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "negative population",
			monkeys: []Monkey{{Name: "Henry", Population: IntPtr(-1)}},
			wantErr: ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.monkeys)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.monkeys), c.Count())
		})
	}
}

func TestNewDefault(t *testing.T) {
	c := NewDefault()

	assert.Equal(t, 13, c.Count())
	assert.Equal(t, "Baboon", c.Names()[0])
	assert.Equal(t, "Mooch", c.Names()[12])
	assert.Equal(t, 0, c.TotalAccessCount(), "building a catalog must not touch the ledger")
}

func TestDefaultMonkeysAreValid(t *testing.T) {
	require.NoError(t, ValidateRecords(DefaultMonkeys()))

	for _, m := range DefaultMonkeys() {
		assert.True(t, m.HasPopulation(), "%s should have a population", m.Name)
		assert.True(t, m.HasCoordinates(), "%s should have coordinates", m.Name)
		assert.True(t, strings.HasPrefix(m.Image, "https://"), "%s image should be a URL", m.Name)
	}
}

func TestListAll(t *testing.T) {
	c := newTestCatalog(t)

	all := c.ListAll()
	require.Len(t, all, 4)
	assert.Equal(t, []string{"Sebastian", "Henry", "Mooch", "Baboon"}, namesOf(all))

	assert.Equal(t, 1, c.TotalAccessCount())
	assert.Empty(t, c.AccessSnapshot(), "listing must not count per-monkey views")
	_, ok := c.MostPopular()
	assert.False(t, ok)
}

func TestListAllReturnsCopies(t *testing.T) {
	c := newTestCatalog(t)

	all := c.ListAll()
	all[0].Name = "Changed"
	*all[0].Population = 500

	again := c.ListAll()
	assert.Equal(t, "Sebastian", again[0].Name)
	assert.Equal(t, 1, *again[0].Population)
}

func TestFindByNameCaseInsensitive(t *testing.T) {
	c := NewDefault()

	for _, name := range c.Names() {
		exact, ok := c.FindByName(name)
		require.True(t, ok, name)

		for _, variant := range []string{strings.ToLower(name), strings.ToUpper(name), swapCase(name)} {
			got, ok := c.FindByName(variant)
			require.True(t, ok, variant)
			assert.Equal(t, exact, got, "lookup %q", variant)
		}
		assert.Equal(t, 4, c.AccessCount(name), "views recorded under canonical name")
	}
}

func TestFindByNameRecordsView(t *testing.T) {
	c := newTestCatalog(t)

	m, ok := c.FindByName("henry")
	require.True(t, ok)
	assert.Equal(t, "Henry", m.Name)
	assert.Equal(t, 1, c.AccessCount("Henry"))
	assert.Equal(t, 0, c.AccessCount("henry"), "counters are keyed by canonical name")
	assert.Equal(t, 1, c.TotalAccessCount())
}

func TestFindByNameNoMatch(t *testing.T) {
	c := newTestCatalog(t)

	tests := []string{"", "   ", "\t\n", "Gorilla", "Henr", " Henry"}
	for _, q := range tests {
		t.Run(q, func(t *testing.T) {
			m, ok := c.FindByName(q)
			assert.False(t, ok)
			assert.Equal(t, Monkey{}, m)
		})
	}

	assert.Equal(t, 0, c.TotalAccessCount())
	assert.Empty(t, c.AccessSnapshot())
}

func TestRandomPick(t *testing.T) {
	c := newTestCatalog(t, WithSeed(7))

	m := c.RandomPick()
	assert.Contains(t, c.Names(), m.Name)
	assert.Equal(t, 1, c.AccessCount(m.Name))
	assert.Equal(t, 1, c.TotalAccessCount())
}

func TestRandomPickCoversAllMonkeys(t *testing.T) {
	c := NewDefault()

	picks := make(map[string]int)
	for i := 0; i < 10000; i++ {
		picks[c.RandomPick().Name]++
	}

	for _, name := range c.Names() {
		assert.Greater(t, picks[name], 0, "%s was never picked", name)
	}
	assert.Equal(t, 10000, c.TotalAccessCount())
	assert.Equal(t, picks, c.AccessSnapshot())
}

func TestRandomPickUsesInjectedSource(t *testing.T) {
	c := NewDefault(WithRand(rand.New(rand.NewPCG(1, 2))))
	ref := rand.New(rand.NewPCG(1, 2))
	monkeys := DefaultMonkeys()

	for i := 0; i < 25; i++ {
		want := monkeys[ref.IntN(len(monkeys))].Name
		assert.Equal(t, want, c.RandomPick().Name, "pick %d", i)
	}
	assert.Equal(t, 25, c.TotalAccessCount())
}

func TestWithRandNilKeepsDefaultSource(t *testing.T) {
	c := newTestCatalog(t, WithRand(nil))

	assert.NotPanics(t, func() { c.RandomPick() })
	assert.Equal(t, 1, c.TotalAccessCount())
}

func TestRandomPickSeedIsReproducible(t *testing.T) {
	a := NewDefault(WithSeed(42))
	b := NewDefault(WithSeed(42))

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.RandomPick().Name, b.RandomPick().Name)
	}
}

func TestCountHasNoSideEffect(t *testing.T) {
	c := newTestCatalog(t)

	assert.Equal(t, 4, c.Count())
	assert.Equal(t, 0, c.TotalAccessCount())
}

func TestFindByLocation(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"lowercase", "seattle", []string{"Sebastian", "Mooch"}},
		{"uppercase", "SEATTLE", []string{"Sebastian", "Mooch"}},
		{"substring", "asia", []string{"Baboon"}},
		{"special characters", "a & a", []string{"Baboon"}},
		{"no match", "Tokyo", []string{}},
		{"empty", "", []string{}},
		{"whitespace", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.FindByLocation(tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, namesOf(got))
		})
	}

	assert.Equal(t, 0, c.TotalAccessCount(), "location search must not touch the ledger")
}

func TestAllLocations(t *testing.T) {
	c, err := New([]Monkey{
		{Name: "A", Location: "Brazil"},
		{Name: "B", Location: "Africa & Asia"},
		{Name: "C", Location: "Brazil"},
		{Name: "D", Location: ""},
		{Name: "E", Location: "  "},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Africa & Asia", "Brazil"}, c.AllLocations())
	assert.Equal(t, 0, c.TotalAccessCount())
}

func TestAllLocationsDefault(t *testing.T) {
	locations := NewDefault().AllLocations()

	assert.Len(t, locations, 11)
	assert.IsNonDecreasing(t, locations)
	assert.Equal(t, "Africa & Asia", locations[0])
	assert.Equal(t, "Vietnam", locations[len(locations)-1])
}

func TestAccessCountUnknownName(t *testing.T) {
	c := newTestCatalog(t)
	c.FindByName("Henry")

	assert.Equal(t, 0, c.AccessCount("Gorilla"))
	assert.Equal(t, 0, c.AccessCount(""))
}

func TestAccessSnapshotIsCopy(t *testing.T) {
	c := newTestCatalog(t)
	c.FindByName("Henry")

	snap := c.AccessSnapshot()
	snap["Henry"] = 100
	snap["Mooch"] = 5
	delete(snap, "Henry")

	assert.Equal(t, 1, c.AccessCount("Henry"))
	assert.Equal(t, 0, c.AccessCount("Mooch"))
	assert.Equal(t, map[string]int{"Henry": 1}, c.AccessSnapshot())
}

func TestMostPopular(t *testing.T) {
	c := newTestCatalog(t)

	_, ok := c.MostPopular()
	assert.False(t, ok, "empty ledger has no most popular")

	c.FindByName("Henry")
	name, ok := c.MostPopular()
	require.True(t, ok)
	assert.Equal(t, "Henry", name)
	assert.Equal(t, 1, c.AccessCount("Henry"))
}

func TestMostPopularTieBreak(t *testing.T) {
	c := newTestCatalog(t)

	c.FindByName("Mooch")
	c.FindByName("Henry")
	name, _ := c.MostPopular()
	assert.Equal(t, "Mooch", name, "first monkey to reach the top count keeps the lead")

	c.FindByName("Henry")
	name, _ = c.MostPopular()
	assert.Equal(t, "Henry", name)

	c.FindByName("Mooch")
	name, _ = c.MostPopular()
	assert.Equal(t, "Henry", name, "catching up without exceeding does not take the lead")
}

func TestResetAccessCounts(t *testing.T) {
	c := newTestCatalog(t)
	c.ListAll()
	c.FindByName("Henry")
	c.RandomPick()

	c.ResetAccessCounts()

	assert.Equal(t, 0, c.TotalAccessCount())
	for _, name := range c.Names() {
		assert.Equal(t, 0, c.AccessCount(name))
	}
	assert.Empty(t, c.AccessSnapshot())
	_, ok := c.MostPopular()
	assert.False(t, ok)
	assert.Equal(t, 4, c.Count(), "reset leaves the collection intact")

	c.FindByName("Mooch")
	name, _ := c.MostPopular()
	assert.Equal(t, "Mooch", name)
}

func TestLedgerInvariant(t *testing.T) {
	c := NewDefault(WithSeed(3))

	listings := 0
	for i := 0; i < 200; i++ {
		switch i % 4 {
		case 0:
			c.RandomPick()
		case 1:
			c.FindByName(c.Names()[i%c.Count()])
		case 2:
			c.FindByName("not a monkey")
		case 3:
			c.ListAll()
			listings++
		}
		assert.Equal(t, sum(c.AccessSnapshot())+listings, c.TotalAccessCount())
	}
}

func TestConcurrentAccessKeepsInvariant(t *testing.T) {
	c := NewDefault()

	const workers = 8
	const perWorker = 500

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if i%2 == 0 {
					c.RandomPick()
				} else {
					c.FindByName("henry")
				}
				stats := c.Stats()
				views := 0
				for _, v := range stats.Views {
					views += v.Count
				}
				assert.Equal(t, views, stats.TotalAccesses)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, c.TotalAccessCount())
	assert.Equal(t, c.TotalAccessCount(), sum(c.AccessSnapshot()))
}

func TestStats(t *testing.T) {
	c := newTestCatalog(t)

	empty := c.Stats()
	assert.Equal(t, 0, empty.TotalAccesses)
	assert.Empty(t, empty.Views)
	assert.Empty(t, empty.MostPopular)

	c.FindByName("Mooch")
	c.FindByName("Henry")
	c.FindByName("Henry")
	c.ListAll()

	stats := c.Stats()
	assert.Equal(t, 4, stats.TotalAccesses)
	assert.Equal(t, []ViewCount{{Name: "Mooch", Count: 1}, {Name: "Henry", Count: 2}}, stats.Views)
	assert.Equal(t, "Henry", stats.MostPopular)
	assert.Equal(t, 2, stats.MostPopularViews)
}

func TestSuggestions(t *testing.T) {
	c := NewDefault()

	assert.Equal(t, []string{"Baboon", "Capuchin Monkey", "Blue Monkey"}, c.Suggestions(3))
	assert.Len(t, c.Suggestions(100), 13)
	assert.Empty(t, c.Suggestions(0))
	assert.Empty(t, c.Suggestions(-2))
}

type recordingObserver struct {
	mu       sync.Mutex
	viewed   []string
	listings int
	resets   int
}

func (o *recordingObserver) MonkeyViewed(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.viewed = append(o.viewed, name)
}

func (o *recordingObserver) CatalogListed() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listings++
}

func (o *recordingObserver) CountsReset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resets++
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	c := newTestCatalog(t, WithObserver(obs), WithObserver(nil))

	c.FindByName("HENRY")
	c.FindByName("nobody")
	c.FindByName("")
	c.ListAll()
	c.FindByLocation("seattle")
	c.ResetAccessCounts()

	assert.Equal(t, []string{"Henry"}, obs.viewed)
	assert.Equal(t, 1, obs.listings)
	assert.Equal(t, 1, obs.resets)
}

func TestMonkeyOptionalFields(t *testing.T) {
	m := Monkey{Name: "Zero", Population: IntPtr(0), Latitude: FloatPtr(0)}

	assert.True(t, m.HasPopulation(), "zero population is present, not absent")
	assert.False(t, m.HasCoordinates(), "coordinates need both latitude and longitude")

	m.Longitude = FloatPtr(0)
	assert.True(t, m.HasCoordinates())
	assert.False(t, Monkey{}.HasPopulation())
}

func namesOf(monkeys []Monkey) []string {
	names := make([]string, len(monkeys))
	for i, m := range monkeys {
		names[i] = m.Name
	}
	return names
}

func sum(counts map[string]int) int {
	total := 0
	for _, v := range counts {
		total += v
	}
	return total
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z':
			return r - 'A' + 'a'
		}
		return r
	}, s)
}
