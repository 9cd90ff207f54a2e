package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		answered int
		want     int
	}{
		{"零题不除零", 0, 0, 0},
		{"零题有答案", 0, 3, 0},
		{"全部完成", 10, 10, 100},
		{"一半", 10, 5, 50},
		{"三分之一四舍五入", 3, 1, 33},
		{"三分之二四舍五入", 3, 2, 67},
		{"恰好一半进位", 8, 1, 13}, // 12.5 -> 13
		{"没有答案", 7, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.total, tt.answered))
		})
	}
}

func TestPercentMonotonic(t *testing.T) {
	// answered 递增时百分比不应下降
	const total = 37
	prev := 0
	for answered := 0; answered <= total; answered++ {
		p := Percent(total, answered)
		assert.GreaterOrEqual(t, p, prev, "answered=%d", answered)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
		prev = p
	}
}

func TestPercentNoClamp(t *testing.T) {
	// 超量数据不钳制，按调用方约定原样计算
	assert.Equal(t, 150, Percent(2, 3))
}
