package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPaired(t *testing.T) {
	tests := []struct {
		name            string
		userProgress    int
		partnerProgress int
		userAnswered    int
		partnerAnswered int
		want            Division
		wantOverall     int
		wantCompleted   bool
	}{
		{"双方完成", 100, 100, 5, 5, DivisionComplete, 100, true},
		{"自己答过优先于伴侣", 20, 0, 1, 0, DivisionAnswered, 10, false},
		{"自己答过且伴侣完成", 20, 100, 1, 5, DivisionAnswered, 60, false},
		{"轮到自己", 0, 60, 0, 3, DivisionYourTurn, 30, false},
		{"双方未答", 0, 0, 0, 0, DivisionUnanswered, 0, false},
		{"仅自己完成", 100, 40, 5, 2, DivisionAnswered, 70, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.userProgress, tt.partnerProgress, tt.userAnswered, tt.partnerAnswered, true)
			assert.Equal(t, tt.want, got.Division)
			assert.Equal(t, tt.wantOverall, got.OverallProgress)
			assert.Equal(t, tt.wantCompleted, got.IsCompleted)
		})
	}
}

func TestClassifySolo(t *testing.T) {
	tests := []struct {
		name         string
		userProgress int
		userAnswered int
		want         Division
	}{
		{"完成", 100, 5, DivisionComplete},
		{"部分作答", 40, 2, DivisionAnswered},
		{"还没开始", 0, 0, DivisionYourTurn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.userProgress, 0, tt.userAnswered, 0, false)
			assert.Equal(t, tt.want, got.Division)
		})
	}
}

func TestValidDivision(t *testing.T) {
	for _, d := range []string{"all", "unanswered", "your_turn", "answered", "complete"} {
		assert.True(t, ValidDivision(d), d)
	}
	assert.False(t, ValidDivision("completed"))
	assert.False(t, ValidDivision(""))
}
