package core

import "context"

// InteractionStore 是协同过滤召回的数据接口：提供"谁消费了什么"。
//
// 定义在领域层，由 recall.StoreAdapter 等基础设施实现。
// 数据缺失按空值处理（空序列/空索引），不作为错误向上传播。
type InteractionStore interface {
	// GetUserItems 获取用户消费过的内容 ID 序列（保持写入顺序）
	GetUserItems(ctx context.Context, userID string) ([]string, error)

	// GetIndex 获取完整的"用户 → 内容序列"倒排索引
	GetIndex(ctx context.Context) (InteractionIndex, error)

	// GetUserHistory 获取用户的交互历史（含评分/时间戳）
	GetUserHistory(ctx context.Context, userID string) ([]Interaction, error)
}

// CatalogStore 是内容召回的数据接口：提供内容目录与元数据。
type CatalogStore interface {
	// GetContent 获取单个内容的元数据
	GetContent(ctx context.Context, contentID string) (*ContentItem, error)

	// GetCatalog 获取全部内容目录（顺序稳定，决定并列分的输出顺序）
	GetCatalog(ctx context.Context) ([]ContentItem, error)
}

// ActivityStore 是参与度分析的数据接口：提供用户活跃计数。
//
// 实现：
//   - feast.ActivitySource 从 Feast 特征库加载
//   - 调用方也可以用内存实现直接喂数
type ActivityStore interface {
	// GetActivity 获取用户的活跃计数快照
	GetActivity(ctx context.Context, userID string) (*ActivityCounters, error)
}
