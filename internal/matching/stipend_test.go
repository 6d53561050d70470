package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStipend(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"rupee amount with separator", "₹12,000/month", 12000},
		{"plain number", "15000", 15000},
		{"empty string", "", 0},
		{"no digits", "no digits here", 0},
		{"unpaid", "Unpaid", 0},
		{"digits around text", "up to 8,500 per month", 8500},
		{"currency symbol only", "₹", 0},
		{"decimal collapses", "1.5k", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStipend(tt.text)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}
