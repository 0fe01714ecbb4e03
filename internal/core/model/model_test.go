package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input Config
		want  Config
	}{
		{
			name:  "empty gets defaults",
			input: Config{},
			want:  DefaultConfig(),
		},
		{
			name:  "negative durations replaced",
			input: Config{WorkSeconds: -1, RestSeconds: 0, Language: "en", AutoStart: true},
			want:  Config{WorkSeconds: DefaultWorkSeconds, RestSeconds: DefaultRestSeconds, Language: "en", AutoStart: true},
		},
		{
			name:  "short durations are kept",
			input: Config{WorkSeconds: 5, RestSeconds: 5, Language: "zh"},
			want:  Config{WorkSeconds: 5, RestSeconds: 5, Language: "zh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Normalize())
		})
	}
}

func TestSegmentSecondsFromMinutes(t *testing.T) {
	assert.Equal(t, 60, SegmentSecondsFromMinutes(0))
	assert.Equal(t, 60, SegmentSecondsFromMinutes(1))
	assert.Equal(t, 1500, SegmentSecondsFromMinutes(25))
}

func TestDocumentNormalize(t *testing.T) {
	doc := Document{TotalRest: -4}.Normalize()

	assert.NotNil(t, doc.Days)
	assert.Zero(t, doc.TotalRest)
	assert.Equal(t, DefaultConfig(), doc.Config)
}

func TestDayKey(t *testing.T) {
	day := time.Date(2026, 3, 7, 23, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-03-07", DayKey(day))
}

func TestDayTotalsAdd(t *testing.T) {
	day := DayTotals{}.Add(KindWork, 3).Add(KindRest, 2).Add(KindWork, 1)
	assert.Equal(t, DayTotals{Work: 4, Rest: 2}, day)
}
