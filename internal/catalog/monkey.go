// Package catalog holds the fixed monkey species collection and tracks how
// often each species is viewed during a session.
package catalog

// Monkey is a single species entry. Records are never modified once the
// catalog has been built.
type Monkey struct {
	Name       string   // Species or individual name, unique ignoring case
	Location   string   // Free-text habitat or home
	Details    string   // Free-text description
	Image      string   // Opaque image reference (URL), never dereferenced
	Population *int     // Estimated population, nil when unknown
	Latitude   *float64 // Habitat latitude, nil when unknown
	Longitude  *float64 // Habitat longitude, nil when unknown
}

// HasPopulation reports whether a population estimate is recorded.
func (m Monkey) HasPopulation() bool {
	return m.Population != nil
}

// HasCoordinates reports whether both latitude and longitude are recorded.
func (m Monkey) HasCoordinates() bool {
	return m.Latitude != nil && m.Longitude != nil
}

// clone returns a copy that shares no pointers with m.
func (m Monkey) clone() Monkey {
	c := m
	if m.Population != nil {
		p := *m.Population
		c.Population = &p
	}
	if m.Latitude != nil {
		lat := *m.Latitude
		c.Latitude = &lat
	}
	if m.Longitude != nil {
		lon := *m.Longitude
		c.Longitude = &lon
	}
	return c
}

// IntPtr returns a pointer to v. Used when declaring records.
func IntPtr(v int) *int {
	return &v
}

// FloatPtr returns a pointer to v. Used when declaring records.
func FloatPtr(v float64) *float64 {
	return &v
}
