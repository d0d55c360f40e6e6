package recall

import (
	"context"
	"sort"

	"github.com/lumina-edu/edukit/core"
	"github.com/lumina-edu/edukit/pipeline"
	"github.com/lumina-edu/edukit/pkg/utils"
)

// 协同过滤的固定阈值与截断。
const (
	// UserSimilarityThreshold 相似用户的最低 Jaccard 相似度（严格大于）
	UserSimilarityThreshold = 0.3

	// TopKSimilarUsers 参与推荐的最相似用户数
	TopKSimilarUsers = 5

	// TopKRecommendations 推荐结果的最大条数
	TopKRecommendations = 10
)

// RecommendCollaborative 基于用户的协同过滤，返回推荐内容 ID 序列。
//
// 核心思想："学过相同材料的学习者，接下来也会学相似的材料"
//
// 算法流程：
//  1. 对每个其他用户，计算其内容集合与目标用户内容集合的 Jaccard 相似度
//  2. 保留相似度 > 0.3 的用户，按相似度降序取前 5
//  3. 合并这些用户学过而目标用户没学过的内容，截断到 10 条
//
// 边界：目标用户没有任何交互时，与所有人的 Jaccard 都是 0，结果为空。
//
// 确定性：遍历用户按 ID 升序，相似度并列时保持该顺序；
// 合并候选时按相似用户的排名顺序依次追加（首次出现去重）。
func RecommendCollaborative(userID string, index core.InteractionIndex) []string {
	return recommendCollaborative(userID, index, UserSimilarityThreshold, TopKSimilarUsers, TopKRecommendations)
}

func recommendCollaborative(
	userID string,
	index core.InteractionIndex,
	threshold float64,
	topUsers, topItems int,
) []string {
	targetSet := index.ItemSet(userID)
	if len(targetSet) == 0 {
		return nil
	}

	otherIDs := make([]string, 0, len(index))
	for id := range index {
		if id == userID {
			continue
		}
		otherIDs = append(otherIDs, id)
	}
	sort.Strings(otherIDs)

	type userSim struct {
		userID string
		sim    float64
	}
	similar := make([]userSim, 0)
	for _, id := range otherIDs {
		sim := jaccardSets(targetSet, index.ItemSet(id))
		if sim > threshold {
			similar = append(similar, userSim{userID: id, sim: sim})
		}
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].sim > similar[j].sim
	})
	if len(similar) > topUsers {
		similar = similar[:topUsers]
	}

	out := make([]string, 0, topItems)
	seen := make(map[string]struct{})
	for _, u := range similar {
		for _, contentID := range index[u.userID] {
			if _, ok := targetSet[contentID]; ok {
				continue
			}
			if _, ok := seen[contentID]; ok {
				continue
			}
			seen[contentID] = struct{}{}
			out = append(out, contentID)
		}
	}
	if len(out) > topItems {
		out = out[:topItems]
	}
	return out
}

// CollaborativeRecall 是协同过滤召回源，从 InteractionStore 取倒排索引。
// 同时实现了 Source 和 Node 接口，可以直接在 Pipeline 中使用。
type CollaborativeRecall struct {
	Store core.InteractionStore

	// SimilarityThreshold 相似用户的最低相似度，<=0 时使用 UserSimilarityThreshold
	SimilarityThreshold float64

	// TopKUsers 参与推荐的相似用户数，<=0 时使用 TopKSimilarUsers
	TopKUsers int

	// TopKItems 最终返回的内容条数，<=0 时使用 TopKRecommendations
	TopKItems int
}

func (r *CollaborativeRecall) Name() string        { return "recall.collaborative" }
func (r *CollaborativeRecall) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall。
func (r *CollaborativeRecall) Process(
	ctx context.Context,
	lctx *core.LearnerContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, lctx)
}

// Recall 实现 Source 接口。
func (r *CollaborativeRecall) Recall(
	ctx context.Context,
	lctx *core.LearnerContext,
) ([]*core.Item, error) {
	if r.Store == nil || lctx == nil || lctx.UserID == "" {
		return nil, nil
	}

	index, err := r.Store.GetIndex(ctx)
	if err != nil {
		return nil, err
	}

	threshold := r.SimilarityThreshold
	if threshold <= 0 {
		threshold = UserSimilarityThreshold
	}
	topUsers := r.TopKUsers
	if topUsers <= 0 {
		topUsers = TopKSimilarUsers
	}
	topItems := r.TopKItems
	if topItems <= 0 {
		topItems = TopKRecommendations
	}

	ids := recommendCollaborative(lctx.UserID, index, threshold, topUsers, topItems)

	out := make([]*core.Item, 0, len(ids))
	for _, id := range ids {
		it := core.NewItem(id)
		it.PutLabel("recall_source", utils.Label{Value: r.Name(), Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
