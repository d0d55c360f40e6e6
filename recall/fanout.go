package recall

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lumina-edu/edukit/core"
	"github.com/lumina-edu/edukit/pipeline"
	"github.com/lumina-edu/edukit/pkg/utils"
)

// Fanout 是一个 Recall Node：并发执行多个召回源，并按声明顺序合并结果。
// 支持超时、限流。
//
// 合并语义：每个源的结果先写入各自的槽位，全部完成后再按 Sources
// 顺序拼接去重；同一内容被多个源命中时保留首个出现的 Item 并合并
// Labels（recall_source 累积为 "a|b"）。合并顺序与 goroutine 完成
// 顺序无关，输出是确定性的，hybrid 混合打分依赖这一点。
type Fanout struct {
	Sources       []Source
	Dedup         bool
	Timeout       time.Duration // 每个召回源的超时时间
	MaxConcurrent int           // 最大并发数（0 表示无限制）
}

func (n *Fanout) Name() string        { return "recall.fanout" }
func (n *Fanout) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Fanout) Process(
	ctx context.Context,
	lctx *core.LearnerContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	if len(n.Sources) == 0 {
		return nil, nil
	}

	results := make([][]*core.Item, len(n.Sources))
	eg, egCtx := errgroup.WithContext(ctx)
	if n.MaxConcurrent > 0 {
		eg.SetLimit(n.MaxConcurrent)
	}

	for i, src := range n.Sources {
		slot := i
		s := src

		eg.Go(func() error {
			recallCtx := egCtx
			if n.Timeout > 0 {
				var cancel context.CancelFunc
				recallCtx, cancel = context.WithTimeout(egCtx, n.Timeout)
				defer cancel()
			}

			items, err := s.Recall(recallCtx, lctx)
			if err != nil {
				// 超时或错误时该源返回空结果，不中断其他召回源
				return nil
			}

			// 记录召回来源 label，方便 explain / 混合打分
			for _, it := range items {
				if _, ok := it.Labels["recall_source"]; !ok {
					it.PutLabel("recall_source", utils.Label{Value: s.Name(), Source: "recall"})
				}
			}

			results[slot] = items
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return n.merge(results), nil
}

// merge 按 Sources 声明顺序拼接结果；Dedup 时保留首个出现的 Item 并合并 Labels。
func (n *Fanout) merge(results [][]*core.Item) []*core.Item {
	total := 0
	for _, items := range results {
		total += len(items)
	}

	if !n.Dedup {
		out := make([]*core.Item, 0, total)
		for _, items := range results {
			out = append(out, items...)
		}
		return out
	}

	seen := make(map[string]*core.Item, total)
	out := make([]*core.Item, 0, total)
	for _, items := range results {
		for _, it := range items {
			if it == nil {
				continue
			}
			if old, ok := seen[it.ID]; ok {
				for k, v := range it.Labels {
					old.PutLabel(k, v)
				}
				continue
			}
			seen[it.ID] = it
			out = append(out, it)
		}
	}
	return out
}
