package rerank

import (
	"context"

	"github.com/lumina-edu/edukit/core"
	"github.com/lumina-edu/edukit/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，用于在打分后截取前 N 个内容。
// 通常放在 rerank.hybrid 之后，限制最终返回给展示层的条数。
//
// 示例：
//
//	pipeline := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        fanout,                   // 多路召回
//	        &rerank.HybridNode{},     // 混合打分
//	        &rerank.TopNNode{N: 5},   // 只留 Top 5
//	    },
//	}
type TopNNode struct {
	// N 要保留的内容数量（Top N）
	// 如果 N <= 0，则返回所有内容（不截断）
	N int
}

func (n *TopNNode) Name() string        { return "rerank.topn" }
func (n *TopNNode) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.LearnerContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.N <= 0 {
		return items, nil
	}
	if len(items) <= n.N {
		return items, nil
	}
	return items[:n.N], nil
}
