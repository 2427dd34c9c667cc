package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func TestNewOrderWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		months  int
		wantEnd time.Time
	}{
		{
			name:    "plain month",
			start:   date(2025, time.November, 15),
			months:  3,
			wantEnd: date(2026, time.February, 15),
		},
		{
			name:    "jan 31 clamps to feb 28 in non-leap year",
			start:   date(2025, time.January, 31),
			months:  1,
			wantEnd: date(2025, time.February, 28),
		},
		{
			name:    "jan 31 clamps to feb 29 in leap year",
			start:   date(2024, time.January, 31),
			months:  1,
			wantEnd: date(2024, time.February, 29),
		},
		{
			name:    "mar 31 clamps to apr 30",
			start:   date(2025, time.March, 31),
			months:  1,
			wantEnd: date(2025, time.April, 30),
		},
		{
			name:    "year rollover",
			start:   date(2025, time.October, 31),
			months:  4,
			wantEnd: date(2026, time.February, 28),
		},
		{
			name:    "twelve months lands on same day",
			start:   date(2025, time.June, 30),
			months:  12,
			wantEnd: date(2026, time.June, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrder("user-1", tt.months, tt.start)

			require.NotEmpty(t, o.ID)
			assert.Equal(t, "user-1", o.UserID)
			assert.Equal(t, tt.start, o.StartDate)
			assert.Equal(t, tt.wantEnd, o.EndDate)
			assert.Equal(t, tt.months, o.DurationInMonths)
			assert.Equal(t, "subscription", o.PaymentType)
		})
	}
}
