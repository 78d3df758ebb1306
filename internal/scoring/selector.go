package scoring

import (
	"sort"

	"github.com/blackwell-systems/devfolio/internal/snapshot"
)

// SelectRepositories picks the representative repositories every scorer
// sees: pinned repositories in pinned order, then non-fork repositories by
// most recent update, up to limit entries.
func SelectRepositories(repos []snapshot.Repository, pinned []string, limit int) []snapshot.Repository {
	if limit <= 0 {
		return nil
	}

	byName := make(map[string]int, len(repos))
	for i, r := range repos {
		byName[r.Name] = i
	}

	selected := make([]snapshot.Repository, 0, limit)
	taken := make(map[string]bool, limit)
	for _, name := range pinned {
		if len(selected) == limit {
			return selected
		}
		i, ok := byName[name]
		if !ok || taken[name] {
			continue
		}
		selected = append(selected, repos[i])
		taken[name] = true
	}

	var rest []snapshot.Repository
	for _, r := range repos {
		if r.Fork || taken[r.Name] {
			continue
		}
		rest = append(rest, r)
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].UpdatedAt.After(rest[j].UpdatedAt)
	})

	for _, r := range rest {
		if len(selected) == limit {
			break
		}
		selected = append(selected, r)
	}
	return selected
}
