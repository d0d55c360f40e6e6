package filter

import (
	"context"
	"encoding/json"

	"github.com/lumina-edu/edukit/core"
)

// BlacklistFilter 是下架内容过滤器：剔除被教师/管理端下架或隐藏的材料。
// 下架列表可以直接给内存 ID 列表，也可以挂一个 Store key 动态读取。
type BlacklistFilter struct {
	// ItemIDs 是内存中的下架内容 ID 列表
	ItemIDs []string

	// Store 用于从存储中读取下架列表（可选）
	Store core.Store

	// Key 是 Store 中的下架列表 key（可选），值为 JSON 数组
	Key string
}

// NewBlacklistFilter 创建一个下架内容过滤器。
func NewBlacklistFilter(itemIDs []string, s core.Store, key string) *BlacklistFilter {
	return &BlacklistFilter{
		ItemIDs: itemIDs,
		Store:   s,
		Key:     key,
	}
}

func (f *BlacklistFilter) Name() string {
	return "filter.blacklist"
}

func (f *BlacklistFilter) ShouldFilter(
	ctx context.Context,
	_ *core.LearnerContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}

	for _, id := range f.ItemIDs {
		if item.ID == id {
			return true, nil
		}
	}

	if f.Store != nil && f.Key != "" {
		data, err := f.Store.Get(ctx, f.Key)
		if err == nil {
			var blacklist []string
			if json.Unmarshal(data, &blacklist) == nil {
				for _, id := range blacklist {
					if item.ID == id {
						return true, nil
					}
				}
			}
		}
	}

	return false, nil
}
