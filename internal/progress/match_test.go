package progress

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func answerMap(user1, user2 uint, a1, a2 []string) map[AnswerKey]string {
	m := make(map[AnswerKey]string)
	for i, a := range a1 {
		if a != "" {
			m[AnswerKey{UserID: user1, QuestionID: uint(i + 1)}] = a
		}
	}
	for i, a := range a2 {
		if a != "" {
			m[AnswerKey{UserID: user2, QuestionID: uint(i + 1)}] = a
		}
	}
	return m
}

func TestMatchAnswersFullMatch(t *testing.T) {
	// 大小写与首尾空白不影响匹配
	user2 := uint(2)
	answers := answerMap(1, 2, []string{"tea", "Mountains"}, []string{"Tea ", "mountains"})

	got := MatchAnswers([]uint{1, 2}, answers, 1, &user2)

	assert.Equal(t, 2, got.Matches)
	assert.Equal(t, 2, got.TotalCompared)
	assert.Equal(t, "100.00", got.SimilarityPercent)
}

func TestMatchAnswersPartial(t *testing.T) {
	user2 := uint(2)
	answers := answerMap(1, 2,
		[]string{"Coffee", "beach", "dogs"},
		[]string{"coffee ", "mountains", "dogs"})

	got := MatchAnswers([]uint{1, 2, 3}, answers, 1, &user2)

	assert.Equal(t, 2, got.Matches)
	assert.Equal(t, 3, got.TotalCompared)
	assert.Equal(t, "66.67", got.SimilarityPercent)
}

func TestMatchAnswersSkipsUnanswered(t *testing.T) {
	// 只有一方作答的问题不参与比较
	user2 := uint(2)
	answers := answerMap(1, 2, []string{"tea", "beach", ""}, []string{"tea", "", "dogs"})

	got := MatchAnswers([]uint{1, 2, 3}, answers, 1, &user2)

	assert.Equal(t, 1, got.Matches)
	assert.Equal(t, 1, got.TotalCompared)
	assert.Equal(t, "100.00", got.SimilarityPercent)
}

func TestMatchAnswersDisconnected(t *testing.T) {
	// 关系断开（没有伴侣）时永远不产生比较
	answers := answerMap(1, 2, []string{"tea", "beach"}, []string{"tea", "beach"})

	got := MatchAnswers([]uint{1, 2}, answers, 1, nil)

	assert.Equal(t, 0, got.Matches)
	assert.Equal(t, 0, got.TotalCompared)
	assert.Equal(t, "0.00", got.SimilarityPercent)
}

func TestMatchAnswersEmptyQuestionSet(t *testing.T) {
	user2 := uint(2)

	got := MatchAnswers(nil, map[AnswerKey]string{}, 1, &user2)

	assert.Equal(t, 0, got.TotalCompared)
	assert.Equal(t, "0.00", got.SimilarityPercent)
}

func TestAnswersEqual(t *testing.T) {
	assert.True(t, AnswersEqual("Tea ", "tea"))
	assert.True(t, AnswersEqual("YES", "  yes"))
	assert.False(t, AnswersEqual("tea", "coffee"))
	assert.False(t, AnswersEqual("", "tea"))
	assert.False(t, AnswersEqual("", ""))
}

func TestMatchAnswersPercentFormat(t *testing.T) {
	// 结果始终是两位小数的 0-100 百分比
	format := regexp.MustCompile(`^\d{1,3}\.\d{2}$`)
	user2 := uint(2)

	cases := []map[AnswerKey]string{
		answerMap(1, 2, []string{"a", "b", "c"}, []string{"a", "x", "y"}),
		answerMap(1, 2, []string{"a"}, []string{"b"}),
		answerMap(1, 2, nil, nil),
	}
	for _, answers := range cases {
		got := MatchAnswers([]uint{1, 2, 3}, answers, 1, &user2)
		assert.Regexp(t, format, got.SimilarityPercent)
	}
}
