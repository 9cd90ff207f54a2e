package progress

import (
	"fmt"
	"strings"
)

// AnswerKey 按 (用户, 问题) 定位一条答案
type AnswerKey struct {
	UserID     uint
	QuestionID uint
}

// MatchResult 两名用户答案匹配度的计算结果
type MatchResult struct {
	Matches           int    `json:"matches"`
	TotalCompared     int    `json:"totalCompared"`
	SimilarityPercent string `json:"similarityPercent"` // 固定两位小数，如 "66.67"
}

// MatchAnswers 对比两名用户在同一组问题下的文本答案。
// 只有双方都有非空答案的问题才参与比较；比较时去首尾空白并转小写，要求完全相等。
// user2 为 nil（关系已断开或单人模式）时不做任何比较，结果为 "0.00"。
func MatchAnswers(questionIDs []uint, answers map[AnswerKey]string, user1 uint, user2 *uint) MatchResult {
	var matches, compared int

	if user2 != nil {
		for _, qid := range questionIDs {
			a1 := answers[AnswerKey{UserID: user1, QuestionID: qid}]
			a2 := answers[AnswerKey{UserID: *user2, QuestionID: qid}]
			if a1 == "" || a2 == "" {
				continue
			}
			compared++
			if normalizeAnswer(a1) == normalizeAnswer(a2) {
				matches++
			}
		}
	}

	percent := 0.0
	if compared > 0 {
		percent = float64(matches) / float64(compared) * 100
	}

	return MatchResult{
		Matches:           matches,
		TotalCompared:     compared,
		SimilarityPercent: fmt.Sprintf("%.2f", percent),
	}
}

// AnswersEqual 判断两条答案归一化后是否一致；任一为空则不一致
func AnswersEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return normalizeAnswer(a) == normalizeAnswer(b)
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
