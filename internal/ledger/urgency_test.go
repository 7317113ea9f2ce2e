package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysRemaining(t *testing.T) {
	asOf := date(2024, 1, 10)

	assert.Equal(t, 0, DaysRemaining(date(2024, 1, 10), asOf))
	assert.Equal(t, 5, DaysRemaining(date(2024, 1, 15), asOf))
	assert.Equal(t, -3, DaysRemaining(date(2024, 1, 7), asOf))
}

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		daysLeft int
		want     Urgency
	}{
		{-1, UrgencyOverdue},
		{0, UrgencyCritical},
		{5, UrgencyCritical},
		{6, UrgencyWarning},
		{10, UrgencyWarning},
		{11, UrgencyOK},
		{21, UrgencyOK},
		{22, UrgencyDistant},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyUrgency(tt.daysLeft), "daysLeft=%d", tt.daysLeft)
	}
}
