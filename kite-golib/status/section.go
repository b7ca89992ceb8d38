package status

import (
	"encoding/json"
	"sort"
	"sync"
)

// Section groups the Counters, Ratios, Breakdowns and SampleDurations reported by one
// component, e.g the javascript scanner.
type Section struct {
	Name string

	Counters        map[string]*Counter
	Ratios          map[string]*Ratio
	Breakdowns      map[string]*Breakdown
	SampleDurations map[string]*SampleDuration

	m sync.Mutex
}

// NewSection returns the section registered under name, creating it if needed.
// Packages call this once from a package level var block.
func NewSection(name string) *Section {
	s.m.Lock()
	defer s.m.Unlock()

	section, exists := s.Sections[name]
	if !exists {
		section = newEmptySection(name)
		s.Sections[name] = section
	}
	return section
}

func newEmptySection(name string) *Section {
	return &Section{
		Name:            name,
		Counters:        make(map[string]*Counter),
		Ratios:          make(map[string]*Ratio),
		Breakdowns:      make(map[string]*Breakdown),
		SampleDurations: make(map[string]*SampleDuration),
	}
}

// MarshalJSON is implemented to avoid concurrent map access. It holds the section lock,
// and avoids recursive calls into MarshalJSON.
func (s *Section) MarshalJSON() ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	// masks the MarshalJSON method so json.Marshal does not recurse
	type tmp Section
	return json.Marshal((*tmp)(s))
}

// Counter returns the counter with the provided name.
func (s *Section) Counter(name string) *Counter {
	s.m.Lock()
	defer s.m.Unlock()

	counter, exists := s.Counters[name]
	if !exists {
		counter = &Counter{}
		s.Counters[name] = counter
	}
	return counter
}

// Ratio returns the ratio metric with the provided name.
func (s *Section) Ratio(name string) *Ratio {
	s.m.Lock()
	defer s.m.Unlock()

	ratio, exists := s.Ratios[name]
	if !exists {
		ratio = &Ratio{}
		s.Ratios[name] = ratio
	}
	return ratio
}

// Breakdown returns the Breakdown metric with the provided name.
func (s *Section) Breakdown(name string) *Breakdown {
	s.m.Lock()
	defer s.m.Unlock()

	breakdown, exists := s.Breakdowns[name]
	if !exists {
		breakdown = &Breakdown{}
		s.Breakdowns[name] = breakdown
	}
	return breakdown
}

// SampleDuration returns the SampleDuration metric with the provided name.
func (s *Section) SampleDuration(name string) *SampleDuration {
	s.m.Lock()
	defer s.m.Unlock()

	sample, exists := s.SampleDurations[name]
	if !exists {
		sample = newSampleDuration()
		s.SampleDurations[name] = sample
	}
	return sample
}

func (s *Section) sortedKeys() (counters, ratios, breakdowns, samples []string) {
	s.m.Lock()
	defer s.m.Unlock()

	for k := range s.Counters {
		counters = append(counters, k)
	}
	for k := range s.Ratios {
		ratios = append(ratios, k)
	}
	for k := range s.Breakdowns {
		breakdowns = append(breakdowns, k)
	}
	for k := range s.SampleDurations {
		samples = append(samples, k)
	}
	sort.Strings(counters)
	sort.Strings(ratios)
	sort.Strings(breakdowns)
	sort.Strings(samples)
	return
}
