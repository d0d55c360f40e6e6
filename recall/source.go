package recall

import (
	"context"

	"github.com/lumina-edu/edukit/core"
)

// Source 表示一个可复用的召回源（协同过滤/内容匹配/热门/...）。
// 你可以把它理解为"可并发 fan-out 的策略单元"。
type Source interface {
	Name() string
	Recall(ctx context.Context, lctx *core.LearnerContext) ([]*core.Item, error)
}
