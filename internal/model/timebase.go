package model

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrEmptyTimeBase is returned when a time base is constructed without any
// timestamps.
var ErrEmptyTimeBase = errors.New("time base requires at least one timestamp")

// TimeBase is the shared time axis of one build: an ordered list of
// timestamps plus the named time series that profile-pinned flows reference.
type TimeBase struct {
	timestamps []time.Time
	series     map[string][]float64
}

// NewTimeBase creates a time base over the given timestamps.
func NewTimeBase(timestamps []time.Time) (TimeBase, error) {
	if len(timestamps) == 0 {
		return TimeBase{}, ErrEmptyTimeBase
	}
	return TimeBase{
		timestamps: timestamps,
		series:     make(map[string][]float64),
	}, nil
}

// Steps returns the number of time steps.
func (tb TimeBase) Steps() int { return len(tb.timestamps) }

// Timestamps returns the ordered time axis.
func (tb TimeBase) Timestamps() []time.Time { return tb.timestamps }

// Span returns the first and last timestamp of the axis.
func (tb TimeBase) Span() (time.Time, time.Time) {
	return tb.timestamps[0], tb.timestamps[len(tb.timestamps)-1]
}

// AddSeries attaches a named time series. Its length must match the axis.
// The receiver must come from NewTimeBase; a zero TimeBase has no series
// table to write to.
func (tb TimeBase) AddSeries(name string, values []float64) error {
	if tb.series == nil {
		return errors.New("time base has no series table; construct it with NewTimeBase")
	}
	if len(values) != len(tb.timestamps) {
		return fmt.Errorf("series %q has %d values, time base has %d steps", name, len(values), len(tb.timestamps))
	}
	if _, exists := tb.series[name]; exists {
		return fmt.Errorf("series %q already declared", name)
	}
	tb.series[name] = values
	return nil
}

// Series returns the named time series, if declared.
func (tb TimeBase) Series(name string) ([]float64, bool) {
	values, ok := tb.series[name]
	return values, ok
}

// SeriesNames returns all declared series names in sorted order.
func (tb TimeBase) SeriesNames() []string {
	names := make([]string, 0, len(tb.series))
	for name := range tb.series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
