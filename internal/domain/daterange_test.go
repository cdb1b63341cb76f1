package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stormscope/warning-overlay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	r, err := domain.ParseDateRange(map[string]string{
		"start": "2021-12-10",
		"end":   "2021-12-12",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.December, 10, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2021, time.December, 12, 0, 0, 0, 0, time.UTC), r.End)
}

func TestParseDateRange_MissingParams(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
	}{
		{"missing start", map[string]string{"end": "2021-12-10"}},
		{"missing end", map[string]string{"start": "2021-12-10"}},
		{"empty map", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseDateRange(tt.params)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrBadRequest))
		})
	}
}

func TestParseDateRange_MalformedDates(t *testing.T) {
	tests := []string{
		"2021-13-40",
		"2021/12/10",
		"not-a-date",
		"2021-12-10T00:00:00Z",
		"",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := domain.ParseDateRange(map[string]string{"start": raw, "end": "2021-12-10"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrBadRequest))
		})
	}
}

func TestDateRange_Days_InclusiveCount(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"single day", "2021-12-10", "2021-12-10", 1},
		{"three days", "2021-12-10", "2021-12-12", 3},
		{"across month boundary", "2021-11-29", "2021-12-02", 4},
		{"across leap day", "2024-02-28", "2024-03-01", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := domain.ParseDateRange(map[string]string{"start": tt.start, "end": tt.end})
			require.NoError(t, err)

			days := r.Days()
			assert.Len(t, days, tt.want)
			assert.Equal(t, r.Start, days[0])
			assert.Equal(t, r.End, days[len(days)-1])
		})
	}
}

func TestDateRange_Days_InvertedRangeIsEmpty(t *testing.T) {
	r, err := domain.ParseDateRange(map[string]string{"start": "2021-12-12", "end": "2021-12-10"})
	require.NoError(t, err)
	assert.Empty(t, r.Days())
}
