// Package studypath 提供学习路径优化：前置依赖展开、学习排程、间隔复习、
// 面向目标技能的自适应路径。所有函数都是对调用方数据快照的纯计算。
package studypath

// PrerequisiteChain 展开某内容的前置依赖链，返回"先学什么、后学什么"的顺序，
// 目标内容本身排在最后。
//
// 实现为后序深度优先遍历：先访问全部依赖，再追加依赖者；visited 集合
// 保证每个节点至多出现一次。依赖图成环时，遍历对已访问节点直接跳过、
// 正常终止——这是刻意的环容忍，不是环检测：结果不区分"无环"与
// "环被静默截断"。如需显式报环，属于产品决策，另行扩展。
func PrerequisiteChain(contentID string, prereqs map[string][]string) []string {
	chain := make([]string, 0, len(prereqs)+1)
	visited := make(map[string]struct{})

	var dfs func(id string)
	dfs = func(id string) {
		if _, ok := visited[id]; ok {
			return
		}
		visited[id] = struct{}{}

		for _, dep := range prereqs[id] {
			dfs(dep)
		}
		chain = append(chain, id)
	}

	dfs(contentID)
	return chain
}
