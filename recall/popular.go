package recall

import (
	"context"
	"encoding/json"

	"github.com/lumina-edu/edukit/core"
	"github.com/lumina-edu/edukit/pipeline"
)

// Popular 是热门内容召回源，为冷启动学习者兜底：
// 没有任何交互历史的用户协同过滤必然为空，热门源保证候选集不空。
//
// 数据来源优先级：
//   - Store 实现了 KeyValueStore 时，用 ZRange 读有序集合（按学习人数等分数排序）
//   - 否则从普通 key 读取 JSON 数组
//   - Store 为空或读取失败时，使用内存中的 IDs 作为 fallback
//
// Popular 同时实现了 Source 和 Node 接口。
type Popular struct {
	Store core.Store
	Key   string   // 存储 key，例如 "popular:materials"
	IDs   []string // fallback 内存列表
	TopK  int      // 读取的最大条数，<=0 时使用 TopKRecommendations
}

func (r *Popular) Name() string        { return "recall.popular" }
func (r *Popular) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall。
func (r *Popular) Process(
	ctx context.Context,
	lctx *core.LearnerContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, lctx)
}

// Recall 实现 Source 接口。
func (r *Popular) Recall(
	ctx context.Context,
	_ *core.LearnerContext,
) ([]*core.Item, error) {
	topK := r.TopK
	if topK <= 0 {
		topK = TopKRecommendations
	}

	var ids []string

	if r.Store != nil && r.Key != "" {
		if kvStore, ok := r.Store.(core.KeyValueStore); ok {
			members, err := kvStore.ZRange(ctx, r.Key, 0, int64(topK)-1)
			if err == nil && len(members) > 0 {
				ids = members
			}
		} else {
			data, err := r.Store.Get(ctx, r.Key)
			if err == nil {
				var parsed []string
				if json.Unmarshal(data, &parsed) == nil {
					ids = parsed
				}
			}
		}
	}

	if len(ids) == 0 {
		ids = r.IDs
	}
	if len(ids) > topK {
		ids = ids[:topK]
	}

	out := make([]*core.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, core.NewItem(id))
	}
	return out, nil
}
