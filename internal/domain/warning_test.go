package domain_test

import (
	"strings"
	"testing"

	"github.com/stormscope/warning-overlay/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSplitRecords(t *testing.T) {
	doc := "first product\n$$\nsecond product\n$$\ntrailer"
	records := domain.SplitRecords(doc)
	assert.Equal(t, []string{"first product\n", "\nsecond product\n", "\ntrailer"}, records)
}

func TestSplitRecords_NoSeparator(t *testing.T) {
	records := domain.SplitRecords("just one body")
	assert.Equal(t, []string{"just one body"}, records)
}

func TestIsValidRecord(t *testing.T) {
	filler := strings.Repeat("x", 60)

	tests := []struct {
		name   string
		record string
		want   bool
	}{
		{"long plain record", filler, true},
		{"under 50 characters", "short", false},
		{"exactly 49 characters", strings.Repeat("x", 49), false},
		{"exactly 50 characters", strings.Repeat("x", 50), true},
		{"contains TEST", filler + " THIS IS A TEST", false},
		{"contains 404", filler + " 404 Not Found", false},
		{"TEST in otherwise long record", "TEST " + filler, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsValidRecord(tt.record))
		})
	}
}
