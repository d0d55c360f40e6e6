package studypath

import "time"

// 间隔复习的基础间隔与掌握度分档倍率。
// 掌握越好，复习间隔越长（spaced repetition）。
const (
	// ReviewBaseInterval 基础复习间隔
	ReviewBaseInterval = 24 * time.Hour

	// 掌握度分档（含下界）对应的间隔倍率
	MasteryHighThreshold   = 0.9 // ≥0.9 → 7 天
	MasteryGoodThreshold   = 0.7 // ≥0.7 → 3 天
	MasteryMediumThreshold = 0.5 // ≥0.5 → 2 天
)

// NextReview 根据上次学习时间与掌握度，给出下次复习时间。
//
// 间隔 = 基础 1 天 × 倍率：掌握度 ≥0.9 → 7，≥0.7 → 3，≥0.5 → 2，否则 1。
// 纯函数，不读钟表，不产生副作用。
func NextReview(lastStudied time.Time, masteryLevel float64) time.Time {
	multiplier := 1
	switch {
	case masteryLevel >= MasteryHighThreshold:
		multiplier = 7
	case masteryLevel >= MasteryGoodThreshold:
		multiplier = 3
	case masteryLevel >= MasteryMediumThreshold:
		multiplier = 2
	}

	return lastStudied.Add(time.Duration(multiplier) * ReviewBaseInterval)
}
