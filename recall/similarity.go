package recall

import (
	"math"

	"github.com/lumina-edu/edukit/core"
)

// 内容相似度的固定权重与量表。
// 标签信号占主导：任一内容无标签时相似度直接为 0，难度不参与兜底。
const (
	// TagSimilarityWeight 标签 Jaccard 相似度的权重
	TagSimilarityWeight = 0.7

	// DifficultySimilarityWeight 难度接近度的权重
	DifficultySimilarityWeight = 0.3

	// DifficultyScale 难度量表跨度（1-10）
	DifficultyScale = 10.0
)

// ContentSimilarity 计算两个内容的相似度，返回 [0,1]。
//
// 算法：标签集合的 Jaccard 相似度 ×0.7 + 难度接近度 (1-|Δd|/10)×0.3，
// 结果保留 3 位小数。任一内容标签为空时定义为 0.0（刻意设计，不是遗漏：
// 无标签内容缺乏内容信号，不允许难度单独撑起相似度）。
//
// 纯函数，永不出错；未标注难度按 core.DefaultDifficulty 处理。
func ContentSimilarity(a, b *core.ContentItem) float64 {
	if a == nil || b == nil {
		return 0.0
	}
	if len(a.Tags) == 0 || len(b.Tags) == 0 {
		return 0.0
	}

	jaccard := jaccardStrings(a.Tags, b.Tags)

	diffDelta := math.Abs(a.DifficultyOrDefault() - b.DifficultyOrDefault())
	diffSim := 1 - diffDelta/DifficultyScale

	return round3(jaccard*TagSimilarityWeight + diffSim*DifficultySimilarityWeight)
}

// jaccardStrings 计算两个字符串序列（视为集合）的 Jaccard 相似度。
func jaccardStrings(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, s := range b {
		setB[s] = struct{}{}
	}
	return jaccardSets(setA, setB)
}

// jaccardSets 计算两个集合的 Jaccard 相似度：|A∩B| / |A∪B|。
// 两个集合都为空时返回 0。
func jaccardSets(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for s := range a {
		if _, ok := b[s]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
