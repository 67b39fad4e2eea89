package errors

import (
	"strings"

	"github.com/tangzhangming/nvcall/internal/i18n"
)

// ============================================================================
// 修复建议生成器
// ============================================================================

// Candidate 候选方法（名称 + 描述符）
type Candidate struct {
	Name string
	Desc string
}

// SuggestMethod 为找不到的方法生成修复建议
// candidates 为继承链上可见的方法。
func SuggestMethod(name, desc string, candidates []Candidate) []string {
	var hints []string

	// 同名不同描述符
	for _, c := range candidates {
		if c.Name == name && c.Desc != desc {
			hints = append(hints, i18n.T("suggestion.other_descriptor", name, c.Desc))
			return hints
		}
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}
	if similar := FindSimilar(name, names, 2); similar != "" {
		hints = append(hints, i18n.T("suggestion.did_you_mean_method", similar))
	}
	return hints
}

// SuggestDispatch 为静态/实例不兼容生成修复建议
func SuggestDispatch(wantStatic bool) []string {
	if wantStatic {
		return []string{i18n.T("suggestion.use_instance_call")}
	}
	return []string{i18n.T("suggestion.use_static_call")}
}

// FindSimilar 查找相似的名称
func FindSimilar(name string, candidates []string, maxDistance int) string {
	var best string
	bestDist := maxDistance + 1

	for _, c := range candidates {
		if c == name {
			continue
		}
		d := levenshteinDistance(name, c)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}

	if bestDist <= maxDistance {
		return best
	}
	return ""
}

// levenshteinDistance 计算编辑距离
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	// 忽略大小写比较
	s1 = strings.ToLower(s1)
	s2 = strings.ToLower(s2)

	prev := make([]int, len(s2)+1)
	cur := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		cur[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(s2)]
}
