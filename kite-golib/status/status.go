package status

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	humanize "github.com/dustin/go-humanize"
)

var s = newEmptyStatus()

// Status is the root level object containing all sections.
type Status struct {
	m        sync.Mutex
	Sections map[string]*Section
}

func newEmptyStatus() *Status {
	return &Status{
		Sections: make(map[string]*Section),
	}
}

// MarshalJSON allows for go-routine safe access to Sections.
func (s *Status) MarshalJSON() ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	type tmp Status
	return json.Marshal((*tmp)(s))
}

// Get returns the process wide status.
func Get() *Status {
	return s
}

func (s *Status) sortedSections() []*Section {
	s.m.Lock()
	defer s.m.Unlock()

	var sections []*Section
	for _, section := range s.Sections {
		sections = append(sections, section)
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Name < sections[j].Name
	})
	return sections
}

// Write renders a plain text report of every section to w.
func Write(w io.Writer) error {
	return s.Write(w)
}

// Write renders a plain text report of every section to w.
func (s *Status) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, section := range s.sortedSections() {
		fmt.Fprintf(tw, "%s\n", section.Name)
		writeSection(tw, section)
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func writeSection(w io.Writer, section *Section) {
	counters, ratios, breakdowns, samples := section.sortedKeys()

	for _, name := range counters {
		fmt.Fprintf(w, "  %s\t%s\n", name, humanize.Comma(section.Counter(name).GetValue()))
	}

	for _, name := range ratios {
		r := section.Ratio(name)
		num, den := r.Counts()
		fmt.Fprintf(w, "  %s\t%.2f%%\t(%s/%s)\n", name, r.Value(), humanize.Comma(num), humanize.Comma(den))
	}

	for _, name := range breakdowns {
		values := section.Breakdown(name).Value()
		var cats []string
		for c := range values {
			cats = append(cats, c)
		}
		sort.Strings(cats)

		var parts []string
		for _, c := range cats {
			parts = append(parts, fmt.Sprintf("%s=%.1f%%", c, values[c]))
		}
		fmt.Fprintf(w, "  %s\t%s\n", name, strings.Join(parts, " "))
	}

	for _, name := range samples {
		sample := section.SampleDuration(name)
		pcts := sample.Percentiles()
		if len(pcts) == 0 {
			fmt.Fprintf(w, "  %s\tn/a\n", name)
			continue
		}

		var parts []string
		for i, p := range samplePercentiles {
			parts = append(parts, fmt.Sprintf("p%v=%s", p, pcts[i].Round(time.Microsecond)))
		}
		fmt.Fprintf(w, "  %s\t%s\t(%s calls)\n", name, strings.Join(parts, " "), humanize.Comma(sample.Count()))
	}
}
