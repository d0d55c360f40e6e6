package analytics

import (
	"fmt"
	"sort"
	"strings"
)

// Report 是一次综合分析的输入汇总，由调用方填好各项结果后渲染。
type Report struct {
	Title            string
	ClassStats       []ClassStats
	Struggling       []string
	Predictions      []SuccessPrediction
	ContentGaps      []string
	EngagementScores map[string]float64
}

// RenderReport 把分析结果渲染成纯文本报告，供导出或终端查看。
func RenderReport(r Report) string {
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = "Learning Analytics Report"
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	if len(r.ClassStats) > 0 {
		b.WriteString("Class Performance\n-----------------\n")
		for _, cs := range r.ClassStats {
			fmt.Fprintf(&b, "%s: %d students, avg %.2f, median %.2f, stddev %.2f (min %.1f / max %.1f), passing %.1f%%\n",
				cs.ClassID, cs.StudentCount, cs.AverageScore, cs.MedianScore,
				cs.ScoreStdDev, cs.LowestScore, cs.HighestScore, cs.PassingRate)
		}
		b.WriteString("\n")
	}

	if len(r.Struggling) > 0 {
		b.WriteString("Struggling Students\n-------------------\n")
		for _, id := range r.Struggling {
			b.WriteString("- " + id + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.Predictions) > 0 {
		b.WriteString("Success Predictions\n-------------------\n")
		for _, p := range r.Predictions {
			fmt.Fprintf(&b, "%s: %.2f%% (%s)\n", p.StudentID, p.Probability, p.Confidence)
		}
		b.WriteString("\n")
	}

	if len(r.ContentGaps) > 0 {
		b.WriteString("Content Gaps (completion < 30%)\n-------------------------------\n")
		for _, id := range r.ContentGaps {
			b.WriteString("- " + id + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.EngagementScores) > 0 {
		b.WriteString("Engagement\n----------\n")
		ids := make([]string, 0, len(r.EngagementScores))
		for id := range r.EngagementScores {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(&b, "%s: %.2f\n", id, r.EngagementScores[id])
		}
	}

	return b.String()
}
