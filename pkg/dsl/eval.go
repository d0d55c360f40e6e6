package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/lumina-edu/edukit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("lctx", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是候选规则的解释器，使用 CEL (Common Expression Language) 实现。
// 教师/运营可以用表达式声明"哪些候选不该出现在这个学习者的推荐页"，
// 不用改代码发版。
//
// 表达式语法（CEL 标准语法）：
//   - 基础：label.recall_source == "recall.popular"
//   - 数值：item.meta.difficulty > 7.0
//   - 逻辑：label.content_type == "video" && item.score > 0.5
//   - 存在性：label.recall_source != null
//   - 包含：label.recall_source.contains("collaborative")
//
// 示例：
//   - `item.meta.difficulty > lctx.params.max_difficulty` → 超出学习者难度上限
//   - `label.content_type == "quiz" && lctx.scene == "preview"` → 预习场景不推测验
type Eval struct {
	item *core.Item
	lctx *core.LearnerContext
	env  *cel.Env
}

// NewEval 创建一个新的规则解释器。
func NewEval(item *core.Item, lctx *core.LearnerContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		item: item,
		lctx: lctx,
		env:  env,
	}
}

// Evaluate 解析并执行规则表达式，返回布尔结果。
// 空表达式恒为 true。表达式必须返回布尔值。
//
// 注意：CEL 访问不存在的 key 会报错，用 label.key != null 检查存在性。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]any {
	labels := make(map[string]any)
	labelAccessor := make(map[string]any)
	if e.item != nil {
		for k, v := range e.item.Labels {
			labels[k] = map[string]any{
				"value":  v.Value,
				"source": v.Source,
			}
			// label.recall_source 直接取 value，方便书写
			labelAccessor[k] = v.Value
		}
	}

	item := map[string]any{}
	if e.item != nil {
		item["id"] = e.item.ID
		item["score"] = e.item.Score
		item["meta"] = e.item.Meta
		item["labels"] = labels
	}

	lctx := map[string]any{}
	if e.lctx != nil {
		skills := make(map[string]any, len(e.lctx.Skills))
		for k, v := range e.lctx.Skills {
			skills[k] = v
		}
		lctx["user_id"] = e.lctx.UserID
		lctx["scene"] = e.lctx.Scene
		lctx["skills"] = skills
		lctx["params"] = e.lctx.Params
	}

	return map[string]any{
		"item":  item,
		"label": labelAccessor,
		"lctx":  lctx,
	}
}
