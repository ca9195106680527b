package subtitle

import (
	"sort"
	"time"
)

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
)

// Document is the result of parsing one SubRip source. Cue i is shown
// between event times 2i and 2i+1. A Document is never modified after
// Parse returns it.
type Document struct {
	startTimeUs int64
	cues        []Cue
	cueTimesUs  []int64
}

func newDocument(startTimeUs int64, cues []Cue, cueTimesUs []int64) *Document {
	return &Document{
		startTimeUs: startTimeUs,
		cues:        cues,
		cueTimesUs:  cueTimesUs,
	}
}

// offset that was added to every event time
func (d *Document) StartTime() int64 {
	return d.startTimeUs
}

func (d *Document) Len() int {
	return len(d.cues)
}

// Cues returns a copy of all cues in file order.
func (d *Document) Cues() []Cue {
	out := make([]Cue, len(d.cues))
	copy(out, d.cues)
	return out
}

func (d *Document) EventTimeCount() int {
	return len(d.cueTimesUs)
}

// EventTime returns the i-th event time in microseconds. Even indices are
// cue starts, odd indices cue ends.
func (d *Document) EventTime(i int) int64 {
	return d.cueTimesUs[i]
}

// LastEventTime returns the final event time, or -1 for an empty document.
func (d *Document) LastEventTime() int64 {
	if len(d.cueTimesUs) == 0 {
		return -1
	}
	return d.cueTimesUs[len(d.cueTimesUs)-1]
}

// NextEventTimeIndex returns the index of the first event strictly after
// timeUs, or -1 when there is none.
func (d *Document) NextEventTimeIndex(timeUs int64) int {
	i := sort.Search(len(d.cueTimesUs), func(i int) bool {
		return d.cueTimesUs[i] > timeUs
	})
	if i < len(d.cueTimesUs) {
		return i
	}
	return -1
}

// CuesAt returns the cue on screen at timeUs. Lookup is a binary search
// over event times, so it assumes cues do not overlap.
func (d *Document) CuesAt(timeUs int64) []Cue {
	i := sort.Search(len(d.cueTimesUs), func(i int) bool {
		return d.cueTimesUs[i] > timeUs
	}) - 1
	if i < 0 || i%2 == 1 {
		return nil
	}
	return []Cue{d.cues[i/2]}
}

// Entries converts the document into 1-based entries with plain text.
func (d *Document) Entries() []Entry {
	entries := make([]Entry, 0, len(d.cues))
	for i, cue := range d.cues {
		entries = append(entries, Entry{
			Index:     i + 1,
			StartTime: time.Duration(d.cueTimesUs[2*i]) * time.Microsecond,
			EndTime:   time.Duration(d.cueTimesUs[2*i+1]) * time.Microsecond,
			Text:      cue.Text(),
		})
	}
	return entries
}
