package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var streakNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return streakNow.AddDate(0, 0, -n)
}

func TestStreakGraceWindow(t *testing.T) {
	// 今天还没打开应用时从昨天锚定，连续记录不立即丢失
	opens := []time.Time{daysAgo(2), daysAgo(1)}

	assert.Equal(t, 2, Streak(opens, streakNow))
}

func TestStreakIncludesToday(t *testing.T) {
	opens := []time.Time{daysAgo(2), daysAgo(1), streakNow}

	assert.Equal(t, 3, Streak(opens, streakNow))
}

func TestStreakReset(t *testing.T) {
	// 早先的 3 天连续记录在中断后不再计入
	opens := []time.Time{daysAgo(5), daysAgo(4), daysAgo(3)}

	assert.Equal(t, 0, Streak(opens, streakNow))
}

func TestStreakGapInHistory(t *testing.T) {
	// 更长的历史连续段不影响以今天/昨天为锚的结果
	opens := []time.Time{
		daysAgo(10), daysAgo(9), daysAgo(8), daysAgo(7), daysAgo(6),
		daysAgo(1), streakNow,
	}

	assert.Equal(t, 2, Streak(opens, streakNow))
}

func TestStreakDeduplicatesSameDay(t *testing.T) {
	// 同一天多条记录只算一天
	opens := []time.Time{
		streakNow,
		streakNow.Add(-2 * time.Hour),
		streakNow.Add(-5 * time.Hour),
		daysAgo(1),
	}

	assert.Equal(t, 2, Streak(opens, streakNow))
}

func TestStreakNoEvents(t *testing.T) {
	assert.Equal(t, 0, Streak(nil, streakNow))
}

func TestStreakUTCDayBoundary(t *testing.T) {
	// 23:59 与次日 00:01 属于不同 UTC 日历日
	late := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	early := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 2, Streak([]time.Time{late, early}, streakNow))
}

func TestOpenedOn(t *testing.T) {
	opens := []time.Time{daysAgo(1), streakNow}

	assert.True(t, OpenedOn(opens, DayUTC(streakNow)))
	assert.False(t, OpenedOn(opens, DayUTC(daysAgo(3))))
}
