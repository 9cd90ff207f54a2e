package progress

import "time"

// DayUTC 截断到 UTC 日历日零点。
// 所有连续天数与每日轮换的计算都以 UTC 日历日为准，不做时区换算。
func DayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey 返回 YYYY-MM-DD 形式的 UTC 日期键
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
