package status

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

const (
	defaultSampleRate = 0.1
	maxSamples        = 1024
)

var samplePercentiles = []float64{25, 50, 75, 95, 99}

// SampleDuration keeps a bounded sample of recorded durations and reports their
// percentiles. Once full, new samples overwrite the oldest ones.
type SampleDuration struct {
	m      sync.Mutex
	rate   float64
	values []int64
	next   int
	total  int64
}

func newSampleDuration() *SampleDuration {
	return &SampleDuration{rate: defaultSampleRate}
}

// SetSampleRate sets the fraction of Record calls that are kept, between 0 and 1.
func (d *SampleDuration) SetSampleRate(rate float64) {
	d.m.Lock()
	defer d.m.Unlock()
	d.rate = rate
}

// Record adds a duration to the sample, subject to the sample rate.
func (d *SampleDuration) Record(dur time.Duration) {
	d.m.Lock()
	defer d.m.Unlock()

	d.total++
	if d.rate < 1 && rand.Float64() >= d.rate {
		return
	}
	if len(d.values) < maxSamples {
		d.values = append(d.values, int64(dur))
		return
	}
	d.values[d.next] = int64(dur)
	d.next = (d.next + 1) % maxSamples
}

// DeferRecord records the time elapsed since start, typically used as
//   defer duration.DeferRecord(time.Now())
func (d *SampleDuration) DeferRecord(start time.Time) {
	d.Record(time.Since(start))
}

// Values returns a copy of the sampled durations, in nanoseconds.
func (d *SampleDuration) Values() []int64 {
	d.m.Lock()
	defer d.m.Unlock()
	return append([]int64(nil), d.values...)
}

// Count returns the number of Record calls, sampled or not.
func (d *SampleDuration) Count() int64 {
	d.m.Lock()
	defer d.m.Unlock()
	return d.total
}

// Percentiles returns the duration at each of the reported percentiles. It returns
// nil if nothing has been sampled yet.
func (d *SampleDuration) Percentiles() []time.Duration {
	values := d.Values()
	if len(values) == 0 {
		return nil
	}

	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		data = append(data, float64(v))
	}
	var out []time.Duration
	for _, p := range samplePercentiles {
		v, err := stats.PercentileNearestRank(data, p)
		if err != nil {
			return nil
		}
		out = append(out, time.Duration(int64(v)))
	}
	return out
}

// MarshalJSON reports the call count and the sampled percentiles in nanoseconds.
func (d *SampleDuration) MarshalJSON() ([]byte, error) {
	out := map[string]int64{"Count": d.Count()}
	pcts := d.Percentiles()
	for i := range pcts {
		out[fmt.Sprintf("P%v", samplePercentiles[i])] = int64(pcts[i])
	}
	return json.Marshal(out)
}
