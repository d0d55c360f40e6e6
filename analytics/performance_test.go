package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/lumina-edu/edukit/core"
)

func day(n int) time.Time {
	return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestPerformanceAnalyzerBasicStats(t *testing.T) {
	pa := NewPerformanceAnalyzer([]core.ScoreRecord{
		{StudentID: "s1", Score: 60, CompletedAt: day(0)},
		{StudentID: "s1", Score: 70, CompletedAt: day(1)},
		{StudentID: "s1", Score: 80, CompletedAt: day(2)},
		{StudentID: "s1", Score: 90, CompletedAt: day(3)},
		// 其他学生的成绩不得混入 s1 的统计
		{StudentID: "s2", Score: 0, CompletedAt: day(0)},
	})

	if got := pa.AverageScore("s1"); got != 75 {
		t.Errorf("AverageScore(s1) = %v, want 75", got)
	}
	if got := pa.MedianScore("s1"); got != 75 {
		t.Errorf("MedianScore(s1) = %v, want 75", got)
	}
	// 样本标准差 sqrt(500/3)
	want := math.Sqrt(500.0 / 3.0)
	if got := pa.ScoreStdDev("s1"); math.Abs(got-want) > 1e-9 {
		t.Errorf("ScoreStdDev(s1) = %v, want %v", got, want)
	}
	if got := pa.AverageScore("s2"); got != 0 {
		t.Errorf("AverageScore(s2) = %v, want 0", got)
	}
}

func TestPerformanceAnalyzerMedianOdd(t *testing.T) {
	pa := NewPerformanceAnalyzer([]core.ScoreRecord{
		{StudentID: "s1", Score: 90},
		{StudentID: "s1", Score: 50},
		{StudentID: "s1", Score: 70},
		{StudentID: "s2", Score: 100},
	})
	if got := pa.MedianScore("s1"); got != 70 {
		t.Errorf("MedianScore(s1) = %v, want 70", got)
	}
}

func TestPerformanceAnalyzerUnknownStudent(t *testing.T) {
	pa := NewPerformanceAnalyzer([]core.ScoreRecord{
		{StudentID: "s1", Score: 80},
	})
	if got := pa.AverageScore("ghost"); got != 0 {
		t.Errorf("AverageScore(ghost) = %v, want 0", got)
	}
	if got := pa.MedianScore("ghost"); got != 0 {
		t.Errorf("MedianScore(ghost) = %v, want 0", got)
	}
	if got := pa.ScoreStdDev("ghost"); got != 0 {
		t.Errorf("ScoreStdDev(ghost) = %v, want 0", got)
	}
}

func TestScoreStdDevSingleRecord(t *testing.T) {
	pa := NewPerformanceAnalyzer([]core.ScoreRecord{
		{StudentID: "s1", Score: 80},
	})
	if got := pa.ScoreStdDev("s1"); got != 0 {
		t.Errorf("ScoreStdDev(s1) = %v, want 0 for n<2", got)
	}
}

func TestStrugglingStudents(t *testing.T) {
	pa := NewPerformanceAnalyzer([]core.ScoreRecord{
		{StudentID: "weak2", Score: 50},
		{StudentID: "strong", Score: 85},
		{StudentID: "weak1", Score: 40},
		{StudentID: "weak1", Score: 55},
		// 均分恰好 60 不算薄弱
		{StudentID: "edge", Score: 60},
	})
	got := pa.StrugglingStudents()
	want := []string{"weak1", "weak2"}
	if len(got) != len(want) {
		t.Fatalf("StrugglingStudents() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v (sorted)", i, got[i], want[i])
		}
	}
}

func TestImprovementRate(t *testing.T) {
	tests := []struct {
		name    string
		records []core.ScoreRecord
		student string
		want    float64
	}{
		{
			name: "improvement over time",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 50, CompletedAt: day(0)},
				{StudentID: "s1", Score: 75, CompletedAt: day(10)},
			},
			student: "s1",
			want:    50,
		},
		{
			name: "ordered by completion time, not input order",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 75, CompletedAt: day(10)},
				{StudentID: "s1", Score: 50, CompletedAt: day(0)},
			},
			student: "s1",
			want:    50,
		},
		{
			name: "decline is negative",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 80, CompletedAt: day(0)},
				{StudentID: "s1", Score: 60, CompletedAt: day(5)},
			},
			student: "s1",
			want:    -25,
		},
		{
			name: "first score zero guards division",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 0, CompletedAt: day(0)},
				{StudentID: "s1", Score: 90, CompletedAt: day(5)},
			},
			student: "s1",
			want:    0,
		},
		{
			name: "single record",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 70, CompletedAt: day(0)},
			},
			student: "s1",
			want:    0,
		},
		{
			name: "rounded to two decimals",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 30, CompletedAt: day(0)},
				{StudentID: "s1", Score: 40, CompletedAt: day(5)},
			},
			student: "s1",
			want:    33.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa := NewPerformanceAnalyzer(tt.records)
			if got := pa.ImprovementRate(tt.student); got != tt.want {
				t.Errorf("ImprovementRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassStatistics(t *testing.T) {
	pa := NewPerformanceAnalyzer([]core.ScoreRecord{
		{StudentID: "s1", ClassID: "c1", Score: 60, CompletedAt: day(0)},
		{StudentID: "s1", ClassID: "c1", Score: 80, CompletedAt: day(5)},
		{StudentID: "s2", ClassID: "c1", Score: 90, CompletedAt: day(0)},
		{StudentID: "s2", ClassID: "c1", Score: 40, CompletedAt: day(3)},
		{StudentID: "s3", ClassID: "c2", Score: 10, CompletedAt: day(0)},
	})

	stats := pa.ClassStatistics("c1")
	if stats.StudentCount != 2 {
		t.Errorf("StudentCount = %d, want 2", stats.StudentCount)
	}
	if stats.RecordCount != 4 {
		t.Errorf("RecordCount = %d, want 4", stats.RecordCount)
	}
	if stats.AverageScore != 67.5 {
		t.Errorf("AverageScore = %v, want 67.5", stats.AverageScore)
	}
	if stats.MedianScore != 70 {
		t.Errorf("MedianScore = %v, want 70", stats.MedianScore)
	}
	if stats.HighestScore != 90 || stats.LowestScore != 40 {
		t.Errorf("range = [%v, %v], want [40, 90]", stats.LowestScore, stats.HighestScore)
	}
	if stats.PassingRate != 75 {
		t.Errorf("PassingRate = %v, want 75", stats.PassingRate)
	}
}

func TestClassStatisticsKeepsRawMedianAndPassingRate(t *testing.T) {
	pa := NewPerformanceAnalyzer([]core.ScoreRecord{
		{StudentID: "s1", ClassID: "c1", Score: 10},
		{StudentID: "s2", ClassID: "c1", Score: 59.995},
		{StudentID: "s3", ClassID: "c1", Score: 70},
	})

	stats := pa.ClassStatistics("c1")
	// 中位数与通过率不做小数截断
	if stats.MedianScore != 59.995 {
		t.Errorf("MedianScore = %v, want 59.995", stats.MedianScore)
	}
	wantRate := float64(1) / float64(3) * 100
	if math.Abs(stats.PassingRate-wantRate) > 1e-9 {
		t.Errorf("PassingRate = %v, want %v", stats.PassingRate, wantRate)
	}
}

func TestClassStatisticsEmptyClass(t *testing.T) {
	pa := NewPerformanceAnalyzer([]core.ScoreRecord{
		{StudentID: "s1", ClassID: "c1", Score: 60},
	})
	stats := pa.ClassStatistics("ghost")
	if stats.StudentCount != 0 || stats.AverageScore != 0 || stats.HighestScore != 0 {
		t.Errorf("empty class stats = %+v, want zero values", stats)
	}
	if stats.ClassID != "ghost" {
		t.Errorf("ClassID = %v, want ghost", stats.ClassID)
	}
}

func TestPredictSuccess(t *testing.T) {
	tests := []struct {
		name           string
		records        []core.ScoreRecord
		student        string
		wantProb       float64
		wantConfidence string
	}{
		{
			name: "high performer",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 90, CompletedAt: day(0)},
				{StudentID: "s1", Score: 99, CompletedAt: day(5)},
			},
			student: "s1",
			// avg 94.5, improvement 10 → 0.7×94.5 + 0.3×10 = 69.15
			wantProb:       69.15,
			wantConfidence: "good",
		},
		{
			name: "big improvement pushes blend past 100",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 10, CompletedAt: day(0)},
				{StudentID: "s1", Score: 90, CompletedAt: day(5)},
			},
			student: "s1",
			// avg 50, improvement 800 → 35+240 = 275，不做截断
			wantProb:       275,
			wantConfidence: "high",
		},
		{
			name: "decline drags probability down",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 100, CompletedAt: day(0)},
				{StudentID: "s1", Score: 0, CompletedAt: day(5)},
			},
			student: "s1",
			// avg 50, improvement −100 → 35−30 = 5
			wantProb:       5,
			wantConfidence: "urgent",
		},
		{
			name: "collapse drives blend negative",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 50, CompletedAt: day(0)},
				{StudentID: "s1", Score: 0, CompletedAt: day(5)},
			},
			student: "s1",
			// avg 25, improvement −100 → 17.5−30 = −12.5
			wantProb:       -12.5,
			wantConfidence: "urgent",
		},
		{
			name:           "no records",
			records:        nil,
			student:        "ghost",
			wantProb:       0,
			wantConfidence: "urgent",
		},
		{
			name: "moderate band",
			records: []core.ScoreRecord{
				{StudentID: "s1", Score: 60, CompletedAt: day(0)},
			},
			student: "s1",
			// avg 60, improvement 0 → 42
			wantProb:       42,
			wantConfidence: "moderate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa := NewPerformanceAnalyzer(tt.records)
			got := pa.PredictSuccess(tt.student)
			if got.Probability != tt.wantProb {
				t.Errorf("Probability = %v, want %v", got.Probability, tt.wantProb)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if got.StudentID != tt.student {
				t.Errorf("StudentID = %v, want %v", got.StudentID, tt.student)
			}
		})
	}
}
