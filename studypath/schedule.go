package studypath

import (
	"sort"

	"github.com/lumina-edu/edukit/core"
)

// DayStartHour 是排程的固定起始钟点（每天 9:00 开始学习）。
const DayStartHour = 9.0

// ScheduleSlot 是排程输出的一个时间片：某材料在某天占用的小时数。
// 一份材料可以被拆到多个连续时间片（跨天续学）。
type ScheduleSlot struct {
	MaterialID    string  `json:"material_id"`
	MaterialTitle string  `json:"material_title"`
	Day           int     `json:"day"`        // 从 1 开始的天序号
	Hours         float64 `json:"hours"`      // 该时间片分配的小时数
	StartHour     float64 `json:"start_hour"` // 当天的起始钟点：9 + 当天已用小时
}

// OptimizeSchedule 把材料贪心地装入"每天 hoursPerDay 小时 × deadlineDays 天"的日程。
//
// 容量不足（总需求 > 总可用）时，先按 (Importance, -Difficulty) 元组降序
// 重排材料：重要性高的优先；同等重要性下按难度升序（即 -Difficulty 降序），
// 先易后难，保证截断发生在难啃的材料上时简单材料已经排进去。
// 容量充足时完全保持传入顺序，不做任何重排。
//
// 装箱用 (当前天, 当天已用小时) 游标推进：当天装满进入下一天；
// 游标越过 deadlineDays 后，剩余小时（以及其后所有材料）静默丢弃，
// 不报错——排不下多少是调用方通过对比总小时即可算出的事实。
//
// 传入的 materials 不会被修改（重排发生在副本上）。
func OptimizeSchedule(materials []core.ContentItem, hoursPerDay float64, deadlineDays int) []ScheduleSlot {
	if len(materials) == 0 || hoursPerDay <= 0 || deadlineDays <= 0 {
		return nil
	}

	totalAvailable := hoursPerDay * float64(deadlineDays)
	totalNeeded := 0.0
	for i := range materials {
		totalNeeded += materials[i].EstimatedHours
	}

	ordered := make([]core.ContentItem, len(materials))
	copy(ordered, materials)

	if totalNeeded > totalAvailable {
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Importance != ordered[j].Importance {
				return ordered[i].Importance > ordered[j].Importance
			}
			return -ordered[i].Difficulty > -ordered[j].Difficulty
		})
	}

	schedule := make([]ScheduleSlot, 0, len(ordered))
	currentDay := 1
	hoursToday := 0.0

	for i := range ordered {
		m := &ordered[i]
		hoursNeeded := m.EstimatedHours

		for hoursNeeded > 0 {
			if hoursToday >= hoursPerDay {
				currentDay++
				hoursToday = 0
			}
			if currentDay > deadlineDays {
				break
			}

			hoursToAllocate := hoursNeeded
			if remaining := hoursPerDay - hoursToday; hoursToAllocate > remaining {
				hoursToAllocate = remaining
			}

			schedule = append(schedule, ScheduleSlot{
				MaterialID:    m.ID,
				MaterialTitle: m.Title,
				Day:           currentDay,
				Hours:         hoursToAllocate,
				StartHour:     DayStartHour + hoursToday,
			})

			hoursNeeded -= hoursToAllocate
			hoursToday += hoursToAllocate
		}
	}

	return schedule
}
