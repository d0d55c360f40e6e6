package pipeline

import (
	"context"

	"github.com/lumina-edu/edukit/core"
)

// Pipeline 是 edukit 的核心抽象：把推荐逻辑拆成可组合的 Node 链。
// 典型链路：Recall(fanout) → Filter(seen/rule) → ReRank(hybrid/topn)。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	lctx *core.LearnerContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, lctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
