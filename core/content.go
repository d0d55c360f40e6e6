package core

// ContentType 是教学内容的载体类型。
type ContentType string

const (
	ContentText        ContentType = "text"
	ContentVideo       ContentType = "video"
	ContentAudio       ContentType = "audio"
	ContentInteractive ContentType = "interactive"
	ContentQuiz        ContentType = "quiz"
	ContentInfographic ContentType = "infographic"
)

// DefaultDifficulty 是内容未标注难度时的默认值（1-10 量表的中位）。
const DefaultDifficulty = 5.0

// ContentItem 是教学内容的元数据记录，由调用方持有，引擎只读。
//
// 约定：
//   - Difficulty 采用 1-10 量表；<=0 视为未标注，按 DefaultDifficulty 处理
//   - Tags 可以为空；空标签内容与任何内容的相似度定义为 0
//   - RequiredLevel 为学习该内容所需的技能掌握度，[0,1]
type ContentItem struct {
	ID             string      `json:"id"`
	Title          string      `json:"title,omitempty"`
	Tags           []string    `json:"tags,omitempty"`
	Difficulty     float64     `json:"difficulty,omitempty"`
	EstimatedHours float64     `json:"estimated_hours,omitempty"`
	Importance     float64     `json:"importance,omitempty"`
	Type           ContentType `json:"type,omitempty"`
	SkillsTaught   []string    `json:"skills_taught,omitempty"`
	RequiredLevel  float64     `json:"required_level,omitempty"`
}

// DifficultyOrDefault 返回内容难度，未标注时返回 DefaultDifficulty。
func (c *ContentItem) DifficultyOrDefault() float64 {
	if c.Difficulty <= 0 {
		return DefaultDifficulty
	}
	return c.Difficulty
}

// Teaches 判断内容是否教授某项技能。
func (c *ContentItem) Teaches(skill string) bool {
	for _, s := range c.SkillsTaught {
		if s == skill {
			return true
		}
	}
	return false
}
