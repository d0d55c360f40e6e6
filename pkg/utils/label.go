package utils

// Label 是推荐链路中的一等公民：可解释、可追踪、可透传。
// 推荐结果的每个候选都带着"从哪个召回源来、被哪条规则动过"的痕迹，
// 方便向教师/运营解释"为什么推了这份材料"。
// Value 与 Source 的语义由业务自定义；edukit 只提供标准化的合并规则。
type Label struct {
	Value  string `json:"value"`
	Source string `json:"source"` // recall / filter / rerank / rule ...
}

// MergeLabel 用于合并同名 Label，遵循"保留历史、可追踪"的默认策略。
// - Value: 以 '|' 累积
// - Source: 以 ',' 累积
//
// hybrid 混合打分依赖该规则：同一候选被多个召回源命中时，
// recall_source 会累积成 "collaborative|content"，按成员关系计权。
func MergeLabel(existing Label, incoming Label) Label {
	if existing.Value == "" {
		return incoming
	}
	if incoming.Value == "" {
		return existing
	}

	merged := existing
	merged.Value = existing.Value + "|" + incoming.Value
	switch {
	case existing.Source == "":
		merged.Source = incoming.Source
	case incoming.Source == "":
		merged.Source = existing.Source
	default:
		merged.Source = existing.Source + "," + incoming.Source
	}
	return merged
}
