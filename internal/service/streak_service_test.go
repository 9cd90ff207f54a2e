package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestSharedStreak(t *testing.T) {
	now := day(2026, 3, 10)

	tests := []struct {
		name string
		a    []time.Time
		b    []time.Time
		want int
	}{
		{
			name: "双方连续三天",
			a:    []time.Time{day(2026, 3, 8), day(2026, 3, 9), day(2026, 3, 10)},
			b:    []time.Time{day(2026, 3, 8), day(2026, 3, 9), day(2026, 3, 10)},
			want: 3,
		},
		{
			name: "只有一方打开不计入",
			a:    []time.Time{day(2026, 3, 9), day(2026, 3, 10)},
			b:    []time.Time{day(2026, 3, 10)},
			want: 1,
		},
		{
			name: "一方完全缺席",
			a:    []time.Time{day(2026, 3, 10)},
			b:    nil,
			want: 0,
		},
		{
			name: "中间断一天从今天重新计",
			a:    []time.Time{day(2026, 3, 7), day(2026, 3, 9), day(2026, 3, 10)},
			b:    []time.Time{day(2026, 3, 7), day(2026, 3, 9), day(2026, 3, 10)},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sharedStreak(tt.a, tt.b, now))
		})
	}
}

func TestSharedStreakDedupesSameDay(t *testing.T) {
	now := day(2026, 3, 10)
	a := []time.Time{
		time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC),
	}
	b := []time.Time{day(2026, 3, 10)}
	assert.Equal(t, 1, sharedStreak(a, b, now))
}
