// Package progress 实现答题进度、匹配度、连续天数与每日轮换的纯计算逻辑。
// 包内函数不做任何 I/O，输入由调用方（service 层）从数据库取好后传入。
package progress

import "math"

// Percent 计算完成百分比，四舍五入到整数。
// total 为 0 时返回 0。answered 大于 total 时不做钳制，数据正确性由调用方保证。
func Percent(total, answered int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(answered) / float64(total) * 100))
}
