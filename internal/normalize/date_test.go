package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate_DayFirst(t *testing.T) {
	// 05/03/2024 is March 5th, not May 3rd.
	got := ParseDate("05/03/2024")
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_Formats(t *testing.T) {
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	tests := []string{
		"05/03/2024",
		"05-03-2024",
		"05.03.2024",
		"2024-03-05",
		"2024/03/05",
		"5/3/2024",
		"5-3-2024",
		"5 March 2024",
		"5 Mar 2024",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseDate(in))
		})
	}
}

func TestParseDate_Unparseable(t *testing.T) {
	for _, in := range []string{"", "  ", "tanggal menyusul", "32/13/2024", "2024"} {
		got := ParseDate(in)
		assert.True(t, got.IsZero(), "ParseDate(%q) = %s, want zero", in, got)
	}
}
