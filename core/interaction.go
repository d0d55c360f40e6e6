package core

import "time"

// DefaultRatingWeight 是交互未评分时计入标签偏好的默认权重。
const DefaultRatingWeight = 3.0

// Interaction 是一条"用户消费了某内容"的行为记录。
// Rating<=0 视为未评分，按 DefaultRatingWeight 计权。
type Interaction struct {
	UserID    string    `json:"user_id"`
	ContentID string    `json:"content_id"`
	Rating    float64   `json:"rating,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// RatingOrDefault 返回交互评分，未评分时返回 DefaultRatingWeight。
func (in *Interaction) RatingOrDefault() float64 {
	if in.Rating <= 0 {
		return DefaultRatingWeight
	}
	return in.Rating
}

// InteractionIndex 是"用户 → 消费过的内容 ID 序列"的倒排索引。
// 由调用方（存储层）构建后整体传入，引擎不维护、不修改。
// 仅用于协同过滤；序列顺序决定候选的确定性输出顺序。
type InteractionIndex map[string][]string

// ItemSet 返回某用户消费过的内容 ID 集合。
func (idx InteractionIndex) ItemSet(userID string) map[string]struct{} {
	items := idx[userID]
	set := make(map[string]struct{}, len(items))
	for _, id := range items {
		set[id] = struct{}{}
	}
	return set
}

// ConsumedSet 从用户历史构建已消费内容 ID 集合。
func ConsumedSet(history []Interaction) map[string]struct{} {
	set := make(map[string]struct{}, len(history))
	for _, in := range history {
		set[in.ContentID] = struct{}{}
	}
	return set
}

// SkillLevels 是"技能名 → 掌握度"映射，掌握度取值 [0,1]。
type SkillLevels map[string]float64
