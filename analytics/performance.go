// Package analytics 提供学业成绩与参与度的统计分析。
//
// PerformanceAnalyzer 处理成绩维度（均值/中位数/标准差、薄弱学生、
// 进步率、班级统计、通过概率预测），TrendsAnalyzer 处理行为维度
// （参与度评分、内容缺口、高峰学习时段）。两者都是纯计算，输入
// 由调用方从存储层取出后传入。
package analytics

import (
	"math"
	"sort"

	"github.com/lumina-edu/edukit/core"
)

// StrugglingThreshold 平均分低于该值的学生视为薄弱学生。
const StrugglingThreshold = 60.0

// 通过概率预测的权重与分档线。
const (
	PredictAvgWeight         = 0.7
	PredictImprovementWeight = 0.3

	PredictHighCutoff     = 80.0
	PredictGoodCutoff     = 60.0
	PredictModerateCutoff = 40.0
)

// PassingScore 及格线，班级通过率按成绩不低于该值统计。
const PassingScore = 60.0

// ClassStats 是一个班级的成绩汇总。
type ClassStats struct {
	ClassID      string  `json:"class_id"`
	StudentCount int     `json:"student_count"`
	RecordCount  int     `json:"record_count"`
	AverageScore float64 `json:"average_score"`
	MedianScore  float64 `json:"median_score"`
	ScoreStdDev  float64 `json:"score_std_dev"`
	HighestScore float64 `json:"highest_score"`
	LowestScore  float64 `json:"lowest_score"`
	PassingRate  float64 `json:"passing_rate"`
}

// SuccessPrediction 是对单个学生的通过概率预测。
type SuccessPrediction struct {
	StudentID   string  `json:"student_id"`
	Probability float64 `json:"probability"`
	Confidence  string  `json:"confidence"`
}

// PerformanceAnalyzer 对成绩记录做统计分析。
type PerformanceAnalyzer struct {
	Records []core.ScoreRecord
}

// NewPerformanceAnalyzer
func NewPerformanceAnalyzer(records []core.ScoreRecord) *PerformanceAnalyzer {
	return &PerformanceAnalyzer{Records: records}
}

// AverageScore 某学生全部成绩的算术平均，无记录时返回 0。
func (a *PerformanceAnalyzer) AverageScore(studentID string) float64 {
	return mean(a.scoresByStudent()[studentID])
}

// MedianScore 某学生全部成绩的中位数，偶数条取中间两项均值。
func (a *PerformanceAnalyzer) MedianScore(studentID string) float64 {
	return median(a.scoresByStudent()[studentID])
}

// ScoreStdDev 某学生全部成绩的样本标准差，少于 2 条时返回 0。
func (a *PerformanceAnalyzer) ScoreStdDev(studentID string) float64 {
	return stdDev(a.scoresByStudent()[studentID])
}

// StrugglingStudents 返回平均分低于 60 的学生 ID，按 ID 升序。
func (a *PerformanceAnalyzer) StrugglingStudents() []string {
	byStudent := a.scoresByStudent()

	ids := make([]string, 0)
	for id, scores := range byStudent {
		if mean(scores) < StrugglingThreshold {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// ImprovementRate 按完成时间排序后，计算学生首末成绩的相对变化率
// (last−first)/first×100，保留 2 位小数。记录不足 2 条或首次成绩
// 为 0 时返回 0。
func (a *PerformanceAnalyzer) ImprovementRate(studentID string) float64 {
	records := make([]core.ScoreRecord, 0)
	for _, r := range a.Records {
		if r.StudentID == studentID {
			records = append(records, r)
		}
	}
	if len(records) < 2 {
		return 0
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CompletedAt.Before(records[j].CompletedAt)
	})

	first := records[0].Score
	last := records[len(records)-1].Score
	if first == 0 {
		return 0
	}
	return round2((last - first) / first * 100)
}

// ClassStatistics 返回指定班级的成绩汇总，班级无记录时返回零值统计。
func (a *PerformanceAnalyzer) ClassStatistics(classID string) ClassStats {
	scores := make([]float64, 0)
	students := make(map[string]struct{})
	for _, r := range a.Records {
		if r.ClassID != classID {
			continue
		}
		scores = append(scores, r.Score)
		students[r.StudentID] = struct{}{}
	}

	stats := ClassStats{ClassID: classID}
	if len(scores) == 0 {
		return stats
	}

	passing := 0
	for _, s := range scores {
		if s >= PassingScore {
			passing++
		}
	}

	stats.StudentCount = len(students)
	stats.RecordCount = len(scores)
	stats.AverageScore = round2(mean(scores))
	stats.MedianScore = median(scores)
	stats.ScoreStdDev = round2(stdDev(scores))
	stats.HighestScore = maxOf(scores)
	stats.LowestScore = minOf(scores)
	stats.PassingRate = float64(passing) / float64(len(scores)) * 100
	return stats
}

// PredictSuccess 预测学生的通过概率：0.7×平均分 + 0.3×进步率，
// 保留 2 位小数。进步率很大时结果可超过 100，很小时可为负，
// 不做截断。分档：≥80 high、≥60 good、≥40 moderate、其余 urgent。
// 无记录时概率为 0。
func (a *PerformanceAnalyzer) PredictSuccess(studentID string) SuccessPrediction {
	scores := a.scoresByStudent()[studentID]

	prediction := SuccessPrediction{StudentID: studentID}
	if len(scores) == 0 {
		prediction.Confidence = confidenceLabel(0)
		return prediction
	}

	raw := PredictAvgWeight*mean(scores) + PredictImprovementWeight*a.ImprovementRate(studentID)
	prediction.Probability = round2(raw)
	prediction.Confidence = confidenceLabel(prediction.Probability)
	return prediction
}

func confidenceLabel(probability float64) string {
	switch {
	case probability >= PredictHighCutoff:
		return "high"
	case probability >= PredictGoodCutoff:
		return "good"
	case probability >= PredictModerateCutoff:
		return "moderate"
	default:
		return "urgent"
	}
}

func (a *PerformanceAnalyzer) scoresByStudent() map[string][]float64 {
	byStudent := make(map[string][]float64)
	for _, r := range a.Records {
		byStudent[r.StudentID] = append(byStudent[r.StudentID], r.Score)
	}
	return byStudent
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// stdDev 样本标准差（分母 n−1）。
func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
