package filter

import (
	"context"

	"github.com/lumina-edu/edukit/core"
)

// SeenFilter 是已学内容过滤器：剔除学习者已经消费过的材料。
// 推荐页不该重复出现学过的内容（复习入口由 studypath 的间隔复习负责）。
//
// 已学集合来源优先级：
//   - LearnerContext.History（请求内快照，零 IO）
//   - InteractionStore（快照缺失时回查存储）
type SeenFilter struct {
	Interactions core.InteractionStore
}

func (f *SeenFilter) Name() string {
	return "filter.seen"
}

func (f *SeenFilter) ShouldFilter(
	ctx context.Context,
	lctx *core.LearnerContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	if lctx == nil {
		return false, nil
	}

	if lctx.History != nil {
		_, seen := lctx.ConsumedSet()[item.ID]
		return seen, nil
	}

	if f.Interactions != nil && lctx.UserID != "" {
		items, err := f.Interactions.GetUserItems(ctx, lctx.UserID)
		if err != nil {
			return false, err
		}
		for _, id := range items {
			if id == item.ID {
				return true, nil
			}
		}
	}
	return false, nil
}
