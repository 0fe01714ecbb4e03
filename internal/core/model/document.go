package model

import "time"

// DayKeyLayout formats the calendar-date keys of Document.Days.
const DayKeyLayout = "2006-01-02"

// Kind identifies the segment a second of elapsed time belongs to.
type Kind string

const (
	KindWork Kind = "work"
	KindRest Kind = "rest"
)

// DayTotals holds the seconds committed on one calendar day.
type DayTotals struct {
	Work int64 `json:"work" yaml:"work"`
	Rest int64 `json:"rest" yaml:"rest"`
}

// Add returns totals with seconds added to the given kind.
func (day DayTotals) Add(kind Kind, seconds int64) DayTotals {
	switch kind {
	case KindWork:
		day.Work += seconds
	case KindRest:
		day.Rest += seconds
	}
	return day
}

// Document is the persisted statistics file.
type Document struct {
	TotalWork int64                `json:"total_work" yaml:"total_work"`
	TotalRest int64                `json:"total_rest" yaml:"total_rest"`
	Days      map[string]DayTotals `json:"days" yaml:"days"`
	Config    Config               `json:"config" yaml:"config"`
}

// NewDocument returns an empty document with default configuration.
func NewDocument() Document {
	return Document{
		Days:   map[string]DayTotals{},
		Config: DefaultConfig(),
	}
}

// Normalize fills missing fields with defaults. It never fails.
func (doc Document) Normalize() Document {
	if doc.Days == nil {
		doc.Days = map[string]DayTotals{}
	}
	if doc.TotalWork < 0 {
		doc.TotalWork = 0
	}
	if doc.TotalRest < 0 {
		doc.TotalRest = 0
	}
	doc.Config = doc.Config.Normalize()
	return doc
}

// Clone returns a deep copy safe to hand to another goroutine.
func (doc Document) Clone() Document {
	days := make(map[string]DayTotals, len(doc.Days))
	for key, day := range doc.Days {
		days[key] = day
	}
	doc.Days = days
	return doc
}

// Day returns the totals recorded for the date of t.
func (doc Document) Day(t time.Time) DayTotals {
	return doc.Days[DayKey(t)]
}

// DayKey formats t as the local calendar date used by Document.Days.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}
