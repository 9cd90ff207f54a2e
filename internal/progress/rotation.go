package progress

import (
	"math/rand"
	"time"
)

// DailyIndex 计算今日轮换内容在题池中的下标。
// 下标 = 自起始日以来经过的 UTC 整天数对池长取模（保证非负），
// 同一 UTC 日历日内所有调用得到相同结果，UTC 零点后自动切换到下一条。
// 题池为空时返回 ok=false，调用方按"内容未配置"降级处理，不视为错误。
func DailyIndex(poolLen int, epoch, today time.Time) (int, bool) {
	if poolLen <= 0 {
		return 0, false
	}
	days := int(DayUTC(today).Sub(DayUTC(epoch)).Hours() / 24)
	idx := days % poolLen
	if idx < 0 {
		idx += poolLen
	}
	return idx, true
}

// DailyQuestion 从按固定顺序排列的题池中选出今日问题
func DailyQuestion(pool []uint, epoch, today time.Time) (uint, bool) {
	idx, ok := DailyIndex(len(pool), epoch, today)
	if !ok {
		return 0, false
	}
	return pool[idx], true
}

// SampleIDs 从池中无放回随机抽取 n 个 ID，不修改传入的切片。
// n 大于池长时返回整池的乱序副本。
func SampleIDs(pool []uint, n int, rng *rand.Rand) []uint {
	shuffled := make([]uint, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
