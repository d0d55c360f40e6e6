package recall

import (
	"context"
	"encoding/json"

	"github.com/lumina-edu/edukit/core"
)

// StoreAdapter 是基于 core.Store 接口的召回数据适配器，
// 实现 core.InteractionStore 与 core.CatalogStore。
// 数据以 JSON 存放，可落在 MemoryStore（测试/原型）或 RedisStore（线上）。
//
// 存储布局：
//
//	{KeyPrefix}:users            所有用户 ID 列表
//	{KeyPrefix}:history:{userID} 用户的交互历史（含评分/时间戳）
//	{KeyPrefix}:catalog          全量内容目录（顺序稳定）
//	{KeyPrefix}:content:{id}     单个内容的元数据
//
// key 不存在一律按空数据处理，不向调用方抛 NOT_FOUND。
type StoreAdapter struct {
	store core.Store

	// KeyPrefix 是存储 key 的前缀
	KeyPrefix string
}

// NewStoreAdapter 创建一个基于 core.Store 的召回数据适配器。
func NewStoreAdapter(s core.Store, keyPrefix string) *StoreAdapter {
	if keyPrefix == "" {
		keyPrefix = "edu"
	}
	return &StoreAdapter{
		store:     s,
		KeyPrefix: keyPrefix,
	}
}

func (a *StoreAdapter) Name() string {
	return "store_adapter"
}

// GetUserHistory 实现 core.InteractionStore 接口。
func (a *StoreAdapter) GetUserHistory(ctx context.Context, userID string) ([]core.Interaction, error) {
	key := a.KeyPrefix + ":history:" + userID
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var history []core.Interaction
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// GetUserItems 实现 core.InteractionStore 接口。
// 返回用户消费过的内容 ID 序列，保持历史写入顺序。
func (a *StoreAdapter) GetUserItems(ctx context.Context, userID string) ([]string, error) {
	history, err := a.GetUserHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]string, 0, len(history))
	for i := range history {
		items = append(items, history[i].ContentID)
	}
	return items, nil
}

// GetIndex 实现 core.InteractionStore 接口。
func (a *StoreAdapter) GetIndex(ctx context.Context) (core.InteractionIndex, error) {
	usersKey := a.KeyPrefix + ":users"
	data, err := a.store.Get(ctx, usersKey)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return core.InteractionIndex{}, nil
		}
		return nil, err
	}

	var users []string
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}

	index := make(core.InteractionIndex, len(users))
	for _, userID := range users {
		items, err := a.GetUserItems(ctx, userID)
		if err != nil {
			return nil, err
		}
		index[userID] = items
	}
	return index, nil
}

// GetContent 实现 core.CatalogStore 接口。
func (a *StoreAdapter) GetContent(ctx context.Context, contentID string) (*core.ContentItem, error) {
	key := a.KeyPrefix + ":content:" + contentID
	data, err := a.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var item core.ContentItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetCatalog 实现 core.CatalogStore 接口。
func (a *StoreAdapter) GetCatalog(ctx context.Context) ([]core.ContentItem, error) {
	key := a.KeyPrefix + ":catalog"
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var catalog []core.ContentItem
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

var (
	_ core.InteractionStore = (*StoreAdapter)(nil)
	_ core.CatalogStore     = (*StoreAdapter)(nil)
)

// SeedInteractions 辅助函数：把交互记录写入 Store。
// 使用 StoreAdapter + MemoryStore 时，测试/示例可以用它方便地准备数据。
// 同一用户的记录按传入顺序存放（调用方负责按时间排好）。
func SeedInteractions(ctx context.Context, adapter *StoreAdapter, interactions []core.Interaction) error {
	histories := make(map[string][]core.Interaction)
	userOrder := make([]string, 0)

	for _, in := range interactions {
		if _, ok := histories[in.UserID]; !ok {
			userOrder = append(userOrder, in.UserID)
		}
		histories[in.UserID] = append(histories[in.UserID], in)
	}

	for userID, history := range histories {
		data, err := json.Marshal(history)
		if err != nil {
			return err
		}
		key := adapter.KeyPrefix + ":history:" + userID
		if err := adapter.store.Set(ctx, key, data); err != nil {
			return err
		}
	}

	usersData, err := json.Marshal(userOrder)
	if err != nil {
		return err
	}
	return adapter.store.Set(ctx, adapter.KeyPrefix+":users", usersData)
}

// SeedCatalog 辅助函数：把内容目录写入 Store（整表 + 单条）。
func SeedCatalog(ctx context.Context, adapter *StoreAdapter, catalog []core.ContentItem) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return err
	}
	if err := adapter.store.Set(ctx, adapter.KeyPrefix+":catalog", data); err != nil {
		return err
	}

	for i := range catalog {
		item := &catalog[i]
		itemData, err := json.Marshal(item)
		if err != nil {
			return err
		}
		key := adapter.KeyPrefix + ":content:" + item.ID
		if err := adapter.store.Set(ctx, key, itemData); err != nil {
			return err
		}
	}
	return nil
}
