package core

import "github.com/lumina-edu/edukit/pkg/utils"

// LearnerContext 承载学习者/场景/请求级信息，贯穿整个 Pipeline 透传。
//
// History 与 Skills 是调用方提供的不可变快照；引擎只读不写。
// 未提供的字段按各节点的默认语义处理（空历史 → 空候选，而不是错误）。
type LearnerContext struct {
	UserID string
	Scene  string

	// History 是该学习者的交互历史快照（内容消费 + 评分）
	History []Interaction

	// Skills 是"技能 → 掌握度"画像，驱动自适应学习路径
	Skills SkillLevels

	// Labels 是学习者级标签，可驱动整个 Pipeline 行为
	// 例如：新学员、考前冲刺、薄弱学科等
	Labels map[string]utils.Label

	// Params 请求级上下文参数：learning_style、pace、max_difficulty 等
	Params map[string]any
}

// ConsumedSet 返回该学习者已消费内容的 ID 集合。
func (lctx *LearnerContext) ConsumedSet() map[string]struct{} {
	return ConsumedSet(lctx.History)
}

// PutLabel 写入学习者级 Label。
func (lctx *LearnerContext) PutLabel(key string, lbl utils.Label) {
	if lctx.Labels == nil {
		lctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := lctx.Labels[key]; ok {
		lctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	lctx.Labels[key] = lbl
}

// GetLabel 获取学习者级 Label。
func (lctx *LearnerContext) GetLabel(key string) (utils.Label, bool) {
	if lctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := lctx.Labels[key]
	return lbl, ok
}

// ParamString 从 Params 取字符串参数，取不到时返回 def。
func (lctx *LearnerContext) ParamString(key, def string) string {
	if lctx.Params == nil {
		return def
	}
	if s, ok := lctx.Params[key].(string); ok {
		return s
	}
	return def
}
