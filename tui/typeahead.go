package tui

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/quickmenu"
)

// BestMatchIndex returns the selectable index whose label best matches the
// query, or -1 when the menu has no selectable entries. Exact and prefix
// matches win over fuzzy ranking.
func BestMatchIndex[A, S comparable](menu quickmenu.Menu[A, S], query string) int {
	labels := selectableLabels(menu)
	if len(labels) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	for i, label := range labels {
		if strings.EqualFold(label, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lower) {
			return i
		}
	}
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(labels) {
		return -1
	}
	return best.OriginalIndex
}

func selectableLabels[A, S comparable](menu quickmenu.Menu[A, S]) []string {
	labels := make([]string, 0, len(menu.Items))
	for _, item := range menu.Items {
		if item.Selectable() {
			labels = append(labels, item.Label)
		}
	}
	return labels
}
