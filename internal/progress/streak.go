package progress

import "time"

// Streak 根据用户的打开应用记录计算当前连续天数。
// 记录先按 UTC 日历日去重；当天还没有记录时从昨天开始计数（宽限一天，
// 用户当天尚未打开应用不会立即丢掉连续记录），之后逐日向前回溯，
// 遇到第一个没有记录的日子即停止。没有任何记录时返回 0。
func Streak(opens []time.Time, now time.Time) int {
	days := make(map[string]bool, len(opens))
	for _, t := range opens {
		days[DayKey(t)] = true
	}

	anchor := DayUTC(now)
	if !days[DayKey(anchor)] {
		anchor = anchor.AddDate(0, 0, -1)
	}

	count := 0
	for d := anchor; days[DayKey(d)]; d = d.AddDate(0, 0, -1) {
		count++
	}
	return count
}

// OpenedOn 判断记录中是否存在指定 UTC 日历日的记录
func OpenedOn(opens []time.Time, day time.Time) bool {
	key := DayKey(day)
	for _, t := range opens {
		if DayKey(t) == key {
			return true
		}
	}
	return false
}
