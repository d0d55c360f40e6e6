package studypath

import (
	"testing"

	"github.com/lumina-edu/edukit/core"
)

func TestOptimizeSchedule(t *testing.T) {
	// 5 小时材料、每天 2 小时、10 天：拆成 2+2+1，第 1~3 天，每天 9 点起
	materials := []core.ContentItem{
		{ID: "m1", Title: "代数", EstimatedHours: 5},
	}
	slots := OptimizeSchedule(materials, 2, 10)

	want := []ScheduleSlot{
		{MaterialID: "m1", MaterialTitle: "代数", Day: 1, Hours: 2, StartHour: 9},
		{MaterialID: "m1", MaterialTitle: "代数", Day: 2, Hours: 2, StartHour: 9},
		{MaterialID: "m1", MaterialTitle: "代数", Day: 3, Hours: 1, StartHour: 9},
	}
	if len(slots) != len(want) {
		t.Fatalf("OptimizeSchedule() = %v, want %v", slots, want)
	}
	for i := range slots {
		if slots[i] != want[i] {
			t.Errorf("slots[%d] = %v, want %v", i, slots[i], want[i])
		}
	}
}

func TestOptimizeScheduleStartHourAdvances(t *testing.T) {
	// 同一天内第二份材料从 9+已用小时开始
	materials := []core.ContentItem{
		{ID: "m1", EstimatedHours: 1.5},
		{ID: "m2", EstimatedHours: 1},
	}
	slots := OptimizeSchedule(materials, 4, 5)

	if len(slots) != 2 {
		t.Fatalf("len = %d, want 2", len(slots))
	}
	if slots[1].Day != 1 || slots[1].StartHour != 10.5 {
		t.Errorf("slots[1] = %+v, want Day 1 StartHour 10.5", slots[1])
	}
}

func TestOptimizeScheduleReordersOnlyWhenOverCapacity(t *testing.T) {
	low := core.ContentItem{ID: "low", EstimatedHours: 2, Importance: 1, Difficulty: 5}
	high := core.ContentItem{ID: "high", EstimatedHours: 2, Importance: 9, Difficulty: 5}

	t.Run("capacity sufficient keeps input order", func(t *testing.T) {
		slots := OptimizeSchedule([]core.ContentItem{low, high}, 2, 10)
		if slots[0].MaterialID != "low" {
			t.Errorf("first = %v, want low (input order)", slots[0].MaterialID)
		}
	})

	t.Run("over capacity sorts importance first", func(t *testing.T) {
		slots := OptimizeSchedule([]core.ContentItem{low, high}, 2, 1)
		if slots[0].MaterialID != "high" {
			t.Errorf("first = %v, want high", slots[0].MaterialID)
		}
	})

	t.Run("equal importance prefers easier material", func(t *testing.T) {
		hard := core.ContentItem{ID: "hard", EstimatedHours: 2, Importance: 5, Difficulty: 8}
		easy := core.ContentItem{ID: "easy", EstimatedHours: 2, Importance: 5, Difficulty: 2}
		slots := OptimizeSchedule([]core.ContentItem{hard, easy}, 2, 1)
		if slots[0].MaterialID != "easy" {
			t.Errorf("first = %v, want easy", slots[0].MaterialID)
		}
	})
}

func TestOptimizeSchedulePastDeadlineDropped(t *testing.T) {
	materials := []core.ContentItem{
		{ID: "m1", EstimatedHours: 2},
		{ID: "m2", EstimatedHours: 2},
		{ID: "m3", EstimatedHours: 2},
	}
	slots := OptimizeSchedule(materials, 2, 2)

	// 只有 2 天容量，m3 被静默丢弃
	total := 0.0
	for _, s := range slots {
		total += s.Hours
		if s.Day > 2 {
			t.Errorf("slot beyond deadline: %+v", s)
		}
		if s.MaterialID == "m3" {
			t.Errorf("m3 scheduled beyond capacity")
		}
	}
	if total != 4 {
		t.Errorf("total scheduled hours = %v, want 4", total)
	}
}

func TestOptimizeScheduleCapacityInvariants(t *testing.T) {
	materials := []core.ContentItem{
		{ID: "a", EstimatedHours: 3.5, Importance: 2},
		{ID: "b", EstimatedHours: 1, Importance: 7},
		{ID: "c", EstimatedHours: 4, Importance: 5},
	}
	hoursPerDay := 3.0
	slots := OptimizeSchedule(materials, hoursPerDay, 2)

	perDay := make(map[int]float64)
	for _, s := range slots {
		perDay[s.Day] += s.Hours
		if s.StartHour < DayStartHour || s.StartHour+s.Hours > DayStartHour+hoursPerDay {
			t.Errorf("slot outside day window: %+v", s)
		}
	}
	for day, used := range perDay {
		if used > hoursPerDay {
			t.Errorf("day %d used %.1f hours, cap %.1f", day, used, hoursPerDay)
		}
	}
}

func TestOptimizeScheduleEmptyInputs(t *testing.T) {
	if got := OptimizeSchedule(nil, 2, 10); got != nil {
		t.Errorf("nil materials = %v, want nil", got)
	}
	m := []core.ContentItem{{ID: "m1", EstimatedHours: 1}}
	if got := OptimizeSchedule(m, 0, 10); got != nil {
		t.Errorf("zero hoursPerDay = %v, want nil", got)
	}
	if got := OptimizeSchedule(m, 2, 0); got != nil {
		t.Errorf("zero deadline = %v, want nil", got)
	}
}
