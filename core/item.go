package core

import (
	"strings"

	"github.com/lumina-edu/edukit/pkg/utils"
)

// Item 是推荐链路中的统一承载结构：内容 ID、分数、元信息、标签。
// Labels 用于解释与策略驱动；Score 用于排序决策。
type Item struct {
	ID     string
	Score  float64
	Meta   map[string]any
	Labels map[string]utils.Label
}

func NewItem(id string) *Item {
	return &Item{
		ID:     id,
		Score:  0,
		Meta:   make(map[string]any),
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}

// HasLabelValue 检查某个 Label 的累积值（按 '|' 分隔）中是否包含 value。
// 用于判断候选内容来自哪些召回源（例如 hybrid 混合打分按成员关系计权）。
func (it *Item) HasLabelValue(key, value string) bool {
	lbl, ok := it.Labels[key]
	if !ok {
		return false
	}
	for _, v := range strings.Split(lbl.Value, "|") {
		if v == value {
			return true
		}
	}
	return false
}
