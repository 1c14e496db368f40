package favorites

import (
	"cmp"
	"slices"
	"strings"

	"favsetter/pkg/domain"
)

// CleanTagNames trims names, drops empty ones and removes duplicates while
// keeping the first occurrence order. Comparison is case-sensitive.
func CleanTagNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

// Match reports whether favorite satisfies filter.
func (filter Filter) Match(favorite *domain.Favorite) bool {
	for _, tag := range filter.Tags {
		if !favorite.HasTag(tag) {
			return false
		}
	}

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	if q == "" {
		return true
	}
	if favorite.Title != nil && strings.Contains(strings.ToLower(*favorite.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(favorite.Domain), q) || strings.Contains(strings.ToLower(favorite.URL), q) {
		return true
	}
	for _, tag := range favorite.Tags {
		if strings.Contains(strings.ToLower(tag.Name), q) {
			return true
		}
	}

	return false
}

// Apply returns the favorites matching filter, preserving their order.
func Apply(list []domain.Favorite, filter Filter) []domain.Favorite {
	filter.Tags = CleanTagNames(filter.Tags)

	out := make([]domain.Favorite, 0, len(list))
	for i := range list {
		if filter.Match(&list[i]) {
			out = append(out, list[i])
		}
	}

	return out
}

// GroupByDomain groups favorites by domain. Larger groups come first, ties are
// ordered by domain name. Favorites keep their relative order inside a group.
func GroupByDomain(list []domain.Favorite) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)
	for _, favorite := range list {
		i, ok := index[favorite.Domain]
		if !ok {
			i = len(groups)
			index[favorite.Domain] = i
			groups = append(groups, Group{Domain: favorite.Domain})
		}
		groups[i].Favorites = append(groups[i].Favorites, favorite)
	}

	slices.SortStableFunc(groups, func(a, b Group) int {
		if c := cmp.Compare(len(b.Favorites), len(a.Favorites)); c != 0 {
			return c
		}

		return cmp.Compare(a.Domain, b.Domain)
	})

	return groups
}
