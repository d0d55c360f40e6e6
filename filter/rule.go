package filter

import (
	"context"

	"github.com/lumina-edu/edukit/core"
	"github.com/lumina-edu/edukit/pkg/dsl"
)

// RuleFilter 是规则过滤器：表达式命中的候选被过滤掉。
// 表达式使用 CEL 语法，可访问 item / label / lctx 三个变量（见 pkg/dsl）。
//
// 示例：
//
//	// 预习场景不推测验类内容
//	f := &filter.RuleFilter{Expr: `label.content_type == "quiz" && lctx.scene == "preview"`}
type RuleFilter struct {
	// Expr 过滤表达式；命中（求值为 true）即过滤。空表达式不过滤任何候选。
	Expr string
}

func (f *RuleFilter) Name() string {
	return "filter.rule"
}

func (f *RuleFilter) ShouldFilter(
	_ context.Context,
	lctx *core.LearnerContext,
	item *core.Item,
) (bool, error) {
	if f.Expr == "" {
		return false, nil
	}
	if item == nil {
		return true, nil
	}

	return dsl.NewEval(item, lctx).Evaluate(f.Expr)
}
