package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/lumina-edu/edukit/core"
)

// 参与度评分的归一化上限（月度口径）与权重。
const (
	LoginNorm        = 30.0
	MaterialViewNorm = 50.0
	QuizAttemptNorm  = 20.0
	ActiveDayNorm    = 30.0

	LoginWeight        = 0.2
	MaterialViewWeight = 0.3
	QuizAttemptWeight  = 0.4
	ActiveDayWeight    = 0.1
)

// ContentGapThreshold 完成率低于该值的内容视为缺口。
const ContentGapThreshold = 0.3

// TrendsAnalyzer 对学习行为数据做参与度与趋势分析。
type TrendsAnalyzer struct{}

// EngagementScore 把活跃计数折算为 0~100 的参与度评分。
//
// 各维度按月度上限归一化并截到 1.0，再加权求和：
// 登录 0.2、资料浏览 0.3、测验 0.4、活跃天数 0.1。
// 完全不活跃（DaysActive==0）直接计 0 分。
func (t *TrendsAnalyzer) EngagementScore(counters core.ActivityCounters) float64 {
	if counters.DaysActive == 0 {
		return 0
	}

	login := math.Min(float64(counters.Logins)/LoginNorm, 1.0)
	view := math.Min(float64(counters.MaterialViews)/MaterialViewNorm, 1.0)
	quiz := math.Min(float64(counters.QuizAttempts)/QuizAttemptNorm, 1.0)
	active := math.Min(float64(counters.DaysActive)/ActiveDayNorm, 1.0)

	score := login*LoginWeight +
		view*MaterialViewWeight +
		quiz*QuizAttemptWeight +
		active*ActiveDayWeight

	return round2(score * 100)
}

// ContentGaps 返回完成率低于 30% 的内容 ID，按 ID 升序。
// 每条 CompletionRecord 是一名学生对一份内容的完成状态。
func (t *TrendsAnalyzer) ContentGaps(records []core.CompletionRecord) []string {
	total := make(map[string]int)
	completed := make(map[string]int)
	for _, r := range records {
		total[r.MaterialID]++
		if r.Completed {
			completed[r.MaterialID]++
		}
	}

	gaps := make([]string, 0)
	for id, n := range total {
		rate := float64(completed[id]) / float64(n)
		if rate < ContentGapThreshold {
			gaps = append(gaps, id)
		}
	}
	sort.Strings(gaps)
	return gaps
}

// PeakStudyHours 按小时统计学习活动次数，返回 小时→次数 的直方图。
// 24 个小时全量返回，无活动的小时计数为 0。
func (t *TrendsAnalyzer) PeakStudyHours(activity []time.Time) map[int]int {
	histogram := make(map[int]int, 24)
	for hour := 0; hour < 24; hour++ {
		histogram[hour] = 0
	}
	for _, ts := range activity {
		histogram[ts.Hour()]++
	}
	return histogram
}
