package progress

import "math"

// Division 内容单元的进度分桶标签
type Division string

const (
	DivisionUnanswered Division = "unanswered" // 双方都没答过
	DivisionYourTurn   Division = "your_turn"  // 伴侣答过而自己没答（单人模式：自己还没答）
	DivisionAnswered   Division = "answered"   // 自己答过但尚未双方完成
	DivisionComplete   Division = "complete"   // 全部完成
	DivisionAll        Division = "all"        // 查询用，不作为计算结果
)

// ValidDivision 校验查询参数里的分桶名
func ValidDivision(d string) bool {
	switch Division(d) {
	case DivisionUnanswered, DivisionYourTurn, DivisionAnswered, DivisionComplete, DivisionAll:
		return true
	}
	return false
}

// Status 单个内容单元（子主题/分类）的综合进度
type Status struct {
	OverallProgress int      `json:"overallProgress"`
	Division        Division `json:"status"`
	IsCompleted     bool     `json:"isCompleted"`
}

// Classify 按自己与伴侣的完成情况给内容单元分桶。
// 有伴侣时需要双方都 100% 才算 complete；自己答过题的状态优先于伴侣 ——
// 只要自己答过至少一题就是 answered，即使伴侣一题未答。
// 单人模式下沿用同一套标签，只看自己的进度。
func Classify(userProgress, partnerProgress, userAnswered, partnerAnswered int, hasPartner bool) Status {
	if hasPartner {
		switch {
		case userProgress == 100 && partnerProgress == 100:
			return Status{OverallProgress: 100, Division: DivisionComplete, IsCompleted: true}
		case userAnswered > 0:
			return Status{OverallProgress: pairAverage(userProgress, partnerProgress), Division: DivisionAnswered}
		case partnerAnswered > 0:
			return Status{OverallProgress: pairAverage(userProgress, partnerProgress), Division: DivisionYourTurn}
		default:
			return Status{Division: DivisionUnanswered}
		}
	}

	switch {
	case userProgress == 100:
		return Status{OverallProgress: 100, Division: DivisionComplete, IsCompleted: true}
	case userAnswered > 0:
		return Status{OverallProgress: userProgress, Division: DivisionAnswered}
	default:
		return Status{OverallProgress: userProgress, Division: DivisionYourTurn}
	}
}

func pairAverage(a, b int) int {
	return int(math.Round(float64(a+b) / 2))
}
