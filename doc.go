// Package edukit 是一个教育场景的推荐与学情分析工具包。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Recall → Filter → ReRank → PostProcess）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - 纯计算分层: 相似度/混合打分/排程/统计都是纯函数，存储与特征通过接口注入
package edukit

import "github.com/lumina-edu/edukit/pipeline"

// 轻量 facade：便于用户直接 import "edukit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
