package recall

import (
	"context"
	"math"
	"sort"

	"github.com/lumina-edu/edukit/core"
	"github.com/lumina-edu/edukit/pipeline"
	"github.com/lumina-edu/edukit/pkg/utils"
)

// DifficultyPenaltyWeight 是候选难度偏离用户偏好难度的扣分系数。
const DifficultyPenaltyWeight = 2.0

// RecommendContentBased 基于内容的过滤，返回推荐内容 ID 序列。
//
// 核心思想："用户给过高分的标签，代表其内容口味"
//
// 算法流程：
//  1. 遍历历史交互，把评分（未评分按 3 计）累加到对应内容的每个标签上，
//     形成标签偏好画像；同时记录历史内容难度，取平均作为偏好难度（无历史时为 5）
//  2. 对目录中每个未消费内容打分：Σ 标签偏好值 − 2×|难度−偏好难度|
//  3. 按分数稳定降序排序，返回前 10 个 ID（并列保持目录顺序）
//
// 历史中引用了目录之外内容的交互，只计入"已消费"集合，不参与画像构建。
func RecommendContentBased(userID string, history []core.Interaction, catalog []core.ContentItem) []string {
	return recommendContentBased(userID, history, catalog, TopKRecommendations)
}

func recommendContentBased(
	_ string,
	history []core.Interaction,
	catalog []core.ContentItem,
	topK int,
) []string {
	byID := make(map[string]*core.ContentItem, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	// 标签偏好画像 + 偏好难度
	tagAffinity := make(map[string]float64)
	var difficulties []float64
	for i := range history {
		in := &history[i]
		c, ok := byID[in.ContentID]
		if !ok {
			continue
		}
		weight := in.RatingOrDefault()
		for _, tag := range c.Tags {
			tagAffinity[tag] += weight
		}
		difficulties = append(difficulties, c.DifficultyOrDefault())
	}

	avgDifficulty := core.DefaultDifficulty
	if len(difficulties) > 0 {
		sum := 0.0
		for _, d := range difficulties {
			sum += d
		}
		avgDifficulty = sum / float64(len(difficulties))
	}

	consumed := core.ConsumedSet(history)

	type scoredContent struct {
		contentID string
		score     float64
	}
	scored := make([]scoredContent, 0, len(catalog))
	for i := range catalog {
		c := &catalog[i]
		if _, ok := consumed[c.ID]; ok {
			continue
		}

		score := 0.0
		for _, tag := range c.Tags {
			score += tagAffinity[tag]
		}
		score -= DifficultyPenaltyWeight * math.Abs(c.DifficultyOrDefault()-avgDifficulty)

		scored = append(scored, scoredContent{contentID: c.ID, score: score})
	}

	// 稳定排序：并列分保持目录输入顺序，保证输出可复现
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if topK > 0 && len(scored) > topK {
		scored = scored[:topK]
	}

	out := make([]string, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.contentID)
	}
	return out
}

// ContentBasedRecall 是基于内容的召回源，从 CatalogStore 取内容目录。
// 用户历史优先取 LearnerContext.History，缺失时回退到 InteractionStore。
// 同时实现了 Source 和 Node 接口。
type ContentBasedRecall struct {
	Catalog      core.CatalogStore
	Interactions core.InteractionStore

	// TopK 最终返回的内容条数，<=0 时使用 TopKRecommendations
	TopK int
}

func (r *ContentBasedRecall) Name() string        { return "recall.content" }
func (r *ContentBasedRecall) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall。
func (r *ContentBasedRecall) Process(
	ctx context.Context,
	lctx *core.LearnerContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, lctx)
}

// Recall 实现 Source 接口。
func (r *ContentBasedRecall) Recall(
	ctx context.Context,
	lctx *core.LearnerContext,
) ([]*core.Item, error) {
	if r.Catalog == nil || lctx == nil || lctx.UserID == "" {
		return nil, nil
	}

	history := lctx.History
	if history == nil && r.Interactions != nil {
		var err error
		history, err = r.Interactions.GetUserHistory(ctx, lctx.UserID)
		if err != nil {
			return nil, err
		}
	}

	catalog, err := r.Catalog.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	topK := r.TopK
	if topK <= 0 {
		topK = TopKRecommendations
	}

	ids := recommendContentBased(lctx.UserID, history, catalog, topK)

	out := make([]*core.Item, 0, len(ids))
	for _, id := range ids {
		it := core.NewItem(id)
		it.PutLabel("recall_source", utils.Label{Value: r.Name(), Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
