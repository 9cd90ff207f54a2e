package progress

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var rotationEpoch = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

func TestDailyIndexDeterministic(t *testing.T) {
	today := rotationEpoch.AddDate(0, 0, 7).Add(9 * time.Hour)

	idx1, ok1 := DailyIndex(3, rotationEpoch, today)
	idx2, ok2 := DailyIndex(3, rotationEpoch, today.Add(5*time.Hour))

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, idx1, idx2, "同一 UTC 日内结果必须一致")
	assert.Equal(t, 1, idx1) // 7 mod 3
}

func TestDailyIndexRollsOverAtMidnight(t *testing.T) {
	const poolLen = 5
	seen := make([]int, 0, poolLen)
	for day := 0; day < poolLen; day++ {
		idx, ok := DailyIndex(poolLen, rotationEpoch, rotationEpoch.AddDate(0, 0, day))
		assert.True(t, ok)
		seen = append(seen, idx)
	}

	// 每天顺移一位，N 天后回到起点
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	idx, _ := DailyIndex(poolLen, rotationEpoch, rotationEpoch.AddDate(0, 0, poolLen))
	assert.Equal(t, 0, idx)
}

func TestDailyIndexEmptyPool(t *testing.T) {
	_, ok := DailyIndex(0, rotationEpoch, rotationEpoch)

	assert.False(t, ok, "空题池返回无可选内容，而不是报错")
}

func TestDailyIndexBeforeEpoch(t *testing.T) {
	// 起始日在未来时取非负模，不会越界
	idx, ok := DailyIndex(3, rotationEpoch, rotationEpoch.AddDate(0, 0, -4))

	assert.True(t, ok)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, 3)
}

func TestDailyQuestion(t *testing.T) {
	pool := []uint{101, 102, 103}
	today := rotationEpoch.AddDate(0, 0, 7)

	id, ok := DailyQuestion(pool, rotationEpoch, today)

	assert.True(t, ok)
	assert.Equal(t, uint(102), id)

	_, ok = DailyQuestion(nil, rotationEpoch, today)
	assert.False(t, ok)
}

func TestSampleIDs(t *testing.T) {
	pool := []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	rng := rand.New(rand.NewSource(42))

	got := SampleIDs(pool, 5, rng)

	assert.Len(t, got, 5)
	seen := make(map[uint]bool)
	for _, id := range got {
		assert.False(t, seen[id], "抽样不应重复")
		assert.Contains(t, pool, id)
		seen[id] = true
	}
	// 原切片顺序不变
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, pool)
}

func TestSampleIDsSmallPool(t *testing.T) {
	pool := []uint{1, 2, 3}
	rng := rand.New(rand.NewSource(1))

	got := SampleIDs(pool, 5, rng)

	assert.Len(t, got, 3)
	assert.ElementsMatch(t, pool, got)
}
