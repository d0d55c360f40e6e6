package core

import "time"

// ScoreRecord 是一次测验/作业的成绩记录，是所有统计分析的输入单元。
// 同一学生按 CompletedAt 升序排列的子序列构成其"成绩历史"。
type ScoreRecord struct {
	StudentID   string    `json:"student_id"`
	ClassID     string    `json:"class_id,omitempty"`
	Score       float64   `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// ActivityCounters 是参与度评分的原始计数输入。
// 可由调用方直接给出，也可通过 feast.ActivitySource 从特征库加载。
type ActivityCounters struct {
	Logins        int `json:"logins"`
	MaterialViews int `json:"material_views"`
	QuizAttempts  int `json:"quiz_attempts"`
	DaysActive    int `json:"days_active"`
}

// CompletionRecord 是一次"学生尝试某材料"的完成记录，用于内容覆盖缺口分析。
type CompletionRecord struct {
	MaterialID string `json:"material_id"`
	Completed  bool   `json:"completed"`
}
