package datastructure

import (
	"sort"
	"strings"

	"mydaytasks/model"
)

// CompareTitle orders a task against a lowercase query. An exact or prefix
// title match compares equal.
func CompareTitle(t model.Task, query string) int {
	title := strings.ToLower(t.Title)
	if strings.HasPrefix(title, query) {
		return 0
	}
	return strings.Compare(title, query)
}

func matches(t model.Task, query string) bool {
	return strings.Contains(strings.ToLower(t.Title), query) ||
		strings.Contains(strings.ToLower(t.Description), query)
}

// Search returns the tasks whose title or description contains query,
// case-insensitively. A blank query returns every task sorted by title.
//
// The tasks are first sorted by title and a binary search locates the
// first title with query as a prefix; matches are then collected by
// scanning outward from there. If no title has that prefix, every task is
// checked.
func Search(tasks []model.Task, query string) []model.Task {
	sorted := ByTitle(tasks)
	if strings.TrimSpace(query) == "" {
		return sorted
	}
	q := strings.ToLower(query)

	lo, hi := 0, len(sorted)-1
	first := -1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch c := CompareTitle(sorted[mid], q); {
		case c == 0:
			first = mid
			hi = mid - 1
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	if first == -1 {
		var out []model.Task
		for _, t := range sorted {
			if matches(t, q) {
				out = append(out, t)
			}
		}
		return out
	}

	var out []model.Task
	for i := first; i < len(sorted); i++ {
		if matches(sorted[i], q) {
			out = append(out, sorted[i])
		} else if CompareTitle(sorted[i], q) > 0 {
			break
		}
	}
	for i := first - 1; i >= 0; i-- {
		if matches(sorted[i], q) {
			out = append(out, sorted[i])
		} else if CompareTitle(sorted[i], q) < 0 {
			break
		}
	}
	return out
}

func sortedCopy(tasks []model.Task, less func(a, b model.Task) bool) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// ByPriority sorts highest rank first.
func ByPriority(tasks []model.Task) []model.Task {
	return sortedCopy(tasks, func(a, b model.Task) bool {
		return a.Priority.Rank() > b.Priority.Rank()
	})
}

// ByCreationDate sorts newest first.
func ByCreationDate(tasks []model.Task) []model.Task {
	return sortedCopy(tasks, func(a, b model.Task) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// ByDueDate sorts soonest first, undated tasks last.
func ByDueDate(tasks []model.Task) []model.Task {
	return sortedCopy(tasks, func(a, b model.Task) bool {
		switch {
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		}
		return a.DueDate.Before(*b.DueDate)
	})
}

func ByTitle(tasks []model.Task) []model.Task {
	return sortedCopy(tasks, func(a, b model.Task) bool {
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})
}

func ByCategory(tasks []model.Task) []model.Task {
	return sortedCopy(tasks, func(a, b model.Task) bool {
		return a.Category < b.Category
	})
}

// ByCompletionStatus puts incomplete tasks first.
func ByCompletionStatus(tasks []model.Task) []model.Task {
	return sortedCopy(tasks, func(a, b model.Task) bool {
		return !a.Completed && b.Completed
	})
}

// Sort dispatches to the sorter for opt. An unknown option returns an
// unsorted copy.
func Sort(tasks []model.Task, opt model.SortOption) []model.Task {
	switch opt {
	case model.SortByPriority:
		return ByPriority(tasks)
	case model.SortByDueDate:
		return ByDueDate(tasks)
	case model.SortByCreationDate:
		return ByCreationDate(tasks)
	case model.SortByTitle:
		return ByTitle(tasks)
	case model.SortByCategory:
		return ByCategory(tasks)
	case model.SortByCompletionStatus:
		return ByCompletionStatus(tasks)
	}
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}
