// Package builders 以 init 注册内置 Node 的配置构建逻辑。
// 配置驱动的入口处 blank import 本包即可：
//
//	import _ "github.com/lumina-edu/edukit/config/builders"
package builders

import (
	"fmt"
	"time"

	"github.com/lumina-edu/edukit/config"
	"github.com/lumina-edu/edukit/filter"
	"github.com/lumina-edu/edukit/pipeline"
	"github.com/lumina-edu/edukit/pkg/conv"
	"github.com/lumina-edu/edukit/recall"
	"github.com/lumina-edu/edukit/rerank"
)

func init() {
	config.Register("recall.fanout", BuildFanoutNode)
	config.Register("recall.popular", BuildPopularNode)
	config.Register("rerank.hybrid", BuildHybridNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("rerank.diversity", BuildDiversityNode)
	config.Register("filter", BuildFilterNode)
}

// BuildFanoutNode 构建并发召回节点。
// 协同/内容召回源需要注入存储，无法从纯配置构建；配置里只支持
// popular 源，其余两路由代码侧组装后传给 Fanout。
func BuildFanoutNode(cfg map[string]any) (pipeline.Node, error) {
	sourcesConfig, ok := cfg["sources"].([]any)
	if !ok {
		return nil, fmt.Errorf("sources not found or invalid")
	}
	sources := make([]recall.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceMap, ok := sc.(map[string]any)
		if !ok {
			continue
		}
		sourceType := conv.ConfigGet(sourceMap, "type", "")
		switch sourceType {
		case "popular":
			ids := conv.SliceAnyToString(sourceMap["ids"])
			if ids == nil {
				ids = []string{}
			}
			sources = append(sources, &recall.Popular{
				Key:  conv.ConfigGet(sourceMap, "key", ""),
				IDs:  ids,
				TopK: int(conv.ConfigGetInt64(sourceMap, "topk", 0)),
			})
		case "collaborative", "content":
			// 需要 InteractionStore/CatalogStore，暂未从配置构建
		default:
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
	}
	fanout := &recall.Fanout{
		Sources: sources,
		Dedup:   conv.ConfigGet(cfg, "dedup", true),
	}
	if sec := conv.ConfigGetInt64(cfg, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	if n := conv.ConfigGetInt64(cfg, "max_concurrent", 0); n > 0 {
		fanout.MaxConcurrent = int(n)
	}
	return fanout, nil
}

// BuildPopularNode 构建热门召回节点（冷启动兜底）。
func BuildPopularNode(cfg map[string]any) (pipeline.Node, error) {
	ids := conv.SliceAnyToString(cfg["ids"])
	if ids == nil {
		ids = []string{}
	}
	return &recall.Popular{
		Key:  conv.ConfigGet(cfg, "key", ""),
		IDs:  ids,
		TopK: int(conv.ConfigGetInt64(cfg, "topk", 0)),
	}, nil
}

// BuildHybridNode 构建混合打分节点。
func BuildHybridNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.HybridNode{
		Weights: rerank.HybridWeights{
			Collaborative: conv.ConfigGetFloat64(cfg, "collaborative_weight", 0),
			Content:       conv.ConfigGetFloat64(cfg, "content_weight", 0),
		},
		CollabSource:  conv.ConfigGet(cfg, "collaborative_source", ""),
		ContentSource: conv.ConfigGet(cfg, "content_source", ""),
		TopK:          int(conv.ConfigGetInt64(cfg, "topk", 0)),
	}, nil
}

// BuildTopNNode 构建截断节点。
func BuildTopNNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.TopNNode{N: int(conv.ConfigGetInt64(cfg, "n", 0))}, nil
}

// BuildDiversityNode 构建载体多样性节点。
func BuildDiversityNode(cfg map[string]any) (pipeline.Node, error) {
	labelKey := conv.ConfigGet(cfg, "label_key", "content_type")
	if labelKey == "" {
		labelKey = "content_type"
	}
	return &rerank.Diversity{LabelKey: labelKey}, nil
}

// BuildFilterNode 构建过滤节点（blacklist、rule）。
// seen 过滤需要 InteractionStore，由代码侧组装。
func BuildFilterNode(cfg map[string]any) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]any)
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}
	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		filterType := conv.ConfigGet(filterMap, "type", "")
		switch filterType {
		case "blacklist":
			ids := conv.SliceAnyToString(filterMap["item_ids"])
			if ids == nil {
				ids = []string{}
			}
			key := conv.ConfigGet(filterMap, "key", "")
			filters = append(filters, filter.NewBlacklistFilter(ids, nil, key))
		case "rule":
			expr := conv.ConfigGet(filterMap, "expr", "")
			filters = append(filters, &filter.RuleFilter{Expr: expr})
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}
	return &filter.FilterNode{Filters: filters}, nil
}
