package studypath

import (
	"math"
	"sort"

	"github.com/lumina-edu/edukit/core"
)

// LearningStyle 是学习风格标签，影响内容载体的匹配度。
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
)

// 自适应路径的固定参数。
const (
	// SkillMasteredThreshold 掌握度达到该值的技能不再进入路径
	SkillMasteredThreshold = 0.8

	// SkillStepGain 每个学习步骤的目标掌握度增量
	SkillStepGain = 0.3

	// StepsPerSkill 每项技能挑选的内容条数（按级别贴合度取前 N）
	StepsPerSkill = 3

	// DefaultStepHours 内容未标注时长时按 2 小时计
	DefaultStepHours = 2.0

	// NeutralStyleMatch 风格矩阵未覆盖的载体类型的默认匹配度
	NeutralStyleMatch = 0.5
)

// styleMatches 是"学习风格 × 内容载体"的匹配度矩阵。
var styleMatches = map[LearningStyle]map[core.ContentType]float64{
	StyleVisual: {
		core.ContentVideo:       1.0,
		core.ContentInfographic: 0.9,
		core.ContentText:        0.5,
	},
	StyleAuditory: {
		core.ContentAudio: 1.0,
		core.ContentVideo: 0.8,
		core.ContentText:  0.6,
	},
	StyleKinesthetic: {
		core.ContentInteractive: 1.0,
		core.ContentQuiz:        0.9,
		core.ContentVideo:       0.7,
	},
}

// PathStep 是自适应学习路径中的一步。
type PathStep struct {
	ContentID      string  `json:"content_id"`
	SkillTarget    string  `json:"skill_target"`
	CurrentLevel   float64 `json:"current_level"`
	TargetLevel    float64 `json:"target_level"`
	EstimatedHours float64 `json:"estimated_hours"`
	StyleMatch     float64 `json:"learning_style_match"`
}

// PathBuilder 按学习者画像生成自适应路径。
type PathBuilder struct {
	// Style 学习风格，为空时按 StyleVisual 处理
	Style LearningStyle
}

// GenerateAdaptivePath 为目标技能列表生成学习路径。
//
// 对每项技能：
//  1. 掌握度 ≥0.8 的跳过（已掌握）
//  2. 从目录中筛出教授该技能的内容，按 |RequiredLevel−当前掌握度| 稳定升序
//  3. 取级别最贴合的前 3 条，目标掌握度 = min(当前+0.3, 1.0)
//
// 技能按 targetSkills 传入顺序处理，输出顺序确定。
func (b *PathBuilder) GenerateAdaptivePath(
	targetSkills []string,
	currentSkills core.SkillLevels,
	catalog []core.ContentItem,
) []PathStep {
	style := b.Style
	if style == "" {
		style = StyleVisual
	}

	path := make([]PathStep, 0)

	for _, skill := range targetSkills {
		currentLevel := currentSkills[skill]
		if currentLevel >= SkillMasteredThreshold {
			continue
		}

		relevant := make([]*core.ContentItem, 0)
		for i := range catalog {
			if catalog[i].Teaches(skill) {
				relevant = append(relevant, &catalog[i])
			}
		}

		sort.SliceStable(relevant, func(i, j int) bool {
			di := math.Abs(relevant[i].RequiredLevel - currentLevel)
			dj := math.Abs(relevant[j].RequiredLevel - currentLevel)
			return di < dj
		})
		if len(relevant) > StepsPerSkill {
			relevant = relevant[:StepsPerSkill]
		}

		for _, c := range relevant {
			hours := c.EstimatedHours
			if hours <= 0 {
				hours = DefaultStepHours
			}

			path = append(path, PathStep{
				ContentID:      c.ID,
				SkillTarget:    skill,
				CurrentLevel:   currentLevel,
				TargetLevel:    math.Min(currentLevel+SkillStepGain, 1.0),
				EstimatedHours: hours,
				StyleMatch:     styleMatch(style, c.Type),
			})
		}
	}

	return path
}

// styleMatch 返回学习风格与内容载体的匹配度，矩阵未覆盖时取 0.5。
func styleMatch(style LearningStyle, contentType core.ContentType) float64 {
	matches, ok := styleMatches[style]
	if !ok {
		return NeutralStyleMatch
	}
	if m, ok := matches[contentType]; ok {
		return m
	}
	return NeutralStyleMatch
}
