package rerank

import (
	"context"

	"github.com/lumina-edu/edukit/core"
	"github.com/lumina-edu/edukit/pipeline"
)

// Diversity 是一个简单的多样性 ReRank 节点：按内容类型去重（保留首个出现的类型）。
// 让一页推荐同时出现视频/文本/测验，而不是十条全是视频。
// 类型来源优先级：
//   - label["content_type"].Value
//   - meta["content_type"] (string)
//
// 未标注类型的内容不参与去重，原样保留。
type Diversity struct {
	LabelKey string // 默认 "content_type"
}

func (n *Diversity) Name() string        { return "rerank.diversity" }
func (n *Diversity) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *Diversity) Process(
	_ context.Context,
	_ *core.LearnerContext,
	items []*core.Item,
) ([]*core.Item, error) {
	labelKey := n.LabelKey
	if labelKey == "" {
		labelKey = "content_type"
	}

	seen := make(map[string]struct{})
	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}

		contentType := ""
		if lbl, ok := it.Labels[labelKey]; ok {
			contentType = lbl.Value
		} else if v, ok := it.Meta[labelKey].(string); ok {
			contentType = v
		}

		if contentType == "" {
			out = append(out, it)
			continue
		}
		if _, ok := seen[contentType]; ok {
			continue
		}
		seen[contentType] = struct{}{}
		out = append(out, it)
	}
	return out, nil
}
