package rerank

import (
	"context"
	"sort"

	"github.com/lumina-edu/edukit/core"
	"github.com/lumina-edu/edukit/pipeline"
)

// HybridWeights 是混合推荐中两路召回的权重。
type HybridWeights struct {
	Collaborative float64
	Content       float64
}

// DefaultHybridWeights 是默认的混合权重：内容信号略重于协同信号。
var DefaultHybridWeights = HybridWeights{Collaborative: 0.4, Content: 0.6}

// DefaultTopK 是混合推荐结果的最大条数。
const DefaultTopK = 10

// Scored 是一条带分数的推荐结果。
type Scored struct {
	ContentID string
	Score     float64
}

// BlendHybrid 混合两路推荐结果，返回 (内容 ID, 分数) 降序序列。
//
// 打分按"成员关系"而非原始分值：候选在协同集合中记 w.Collaborative，
// 在内容集合中记 w.Content，两者都命中时相加（默认权重下为 1.0）。
// 并列分按候选首次出现顺序（先协同路、后内容路）稳定排序，输出可复现。
// weights 全零时使用 DefaultHybridWeights。
func BlendHybrid(collab, content []string, weights HybridWeights) []Scored {
	if weights.Collaborative == 0 && weights.Content == 0 {
		weights = DefaultHybridWeights
	}

	collabSet := make(map[string]struct{}, len(collab))
	for _, id := range collab {
		collabSet[id] = struct{}{}
	}
	contentSet := make(map[string]struct{}, len(content))
	for _, id := range content {
		contentSet[id] = struct{}{}
	}

	// 并集按首次出现顺序构建
	union := make([]string, 0, len(collab)+len(content))
	seen := make(map[string]struct{}, len(collab)+len(content))
	for _, id := range collab {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}
	for _, id := range content {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}

	out := make([]Scored, 0, len(union))
	for _, id := range union {
		score := 0.0
		if _, ok := collabSet[id]; ok {
			score += weights.Collaborative
		}
		if _, ok := contentSet[id]; ok {
			score += weights.Content
		}
		out = append(out, Scored{ContentID: id, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > DefaultTopK {
		out = out[:DefaultTopK]
	}
	return out
}

// HybridNode 是混合打分 ReRank 节点：对上游 Fanout 合并后的候选，
// 按 recall_source label 的成员关系打分并截断。
//
// 约定：上游使用 recall.Fanout{Dedup: true}，同一内容被两路命中时
// recall_source 累积为 "recall.collaborative|recall.content"。
type HybridNode struct {
	// Weights 混合权重，零值时使用 DefaultHybridWeights
	Weights HybridWeights

	// CollabSource / ContentSource 两路召回源的 Name()，
	// 为空时使用 "recall.collaborative" / "recall.content"
	CollabSource  string
	ContentSource string

	// TopK 截断条数，<=0 时使用 DefaultTopK
	TopK int
}

func (n *HybridNode) Name() string        { return "rerank.hybrid" }
func (n *HybridNode) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *HybridNode) Process(
	_ context.Context,
	_ *core.LearnerContext,
	items []*core.Item,
) ([]*core.Item, error) {
	weights := n.Weights
	if weights.Collaborative == 0 && weights.Content == 0 {
		weights = DefaultHybridWeights
	}
	collabSource := n.CollabSource
	if collabSource == "" {
		collabSource = "recall.collaborative"
	}
	contentSource := n.ContentSource
	if contentSource == "" {
		contentSource = "recall.content"
	}
	topK := n.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	for _, it := range items {
		score := 0.0
		if it.HasLabelValue("recall_source", collabSource) {
			score += weights.Collaborative
		}
		if it.HasLabelValue("recall_source", contentSource) {
			score += weights.Content
		}
		it.Score = score
	}

	out := make([]*core.Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > topK {
		out = out[:topK]
	}
	return out, nil
}
