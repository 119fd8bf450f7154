// Package query derives filtered, searched, sorted views of a task
// collection. All functions operate on snapshot copies and never
// mutate their input.
package query

import (
	"sort"
	"strings"

	"taskdeck/internal/domain"
)

// View applies the filter/search/sort pipeline, in order:
// status filter, case-insensitive course substring search, then a
// deterministic sort by (completed, deadline, id) ascending.
// Incomplete tasks always precede completed ones regardless of
// deadline; within each group earlier deadlines sort first, with id
// as the stable tie-break so results are identical across repeated
// calls with unchanged input.
func View(tasks []domain.Task, opts domain.ViewOptions) []domain.Task {
	filtered := filterByStatus(tasks, opts.Status)
	filtered = searchByCourse(filtered, opts.Course)
	sortTasks(filtered)
	return filtered
}

// IncompleteCount returns the number of tasks not yet completed.
func IncompleteCount(tasks []domain.Task) int {
	count := 0
	for _, task := range tasks {
		if !task.Completed {
			count++
		}
	}
	return count
}

// filterByStatus keeps tasks matching the completion filter.
// FilterAll is the identity; the returned slice is always a copy.
func filterByStatus(tasks []domain.Task, status domain.FilterStatus) []domain.Task {
	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		switch status {
		case domain.FilterIncomplete:
			if task.Completed {
				continue
			}
		case domain.FilterCompleted:
			if !task.Completed {
				continue
			}
		}
		filtered = append(filtered, task)
	}
	return filtered
}

// searchByCourse keeps tasks whose course contains the search term,
// compared case-insensitively. An empty term keeps everything; the
// term is matched as given, whitespace included.
func searchByCourse(tasks []domain.Task, course string) []domain.Task {
	term := strings.ToLower(course)
	if term == "" {
		return tasks
	}

	filtered := tasks[:0]
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Course), term) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// sortTasks orders tasks by the composite key
// (completed ascending, deadline ascending, id ascending).
func sortTasks(tasks []domain.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if !a.Deadline.Equal(b.Deadline) {
			return a.Deadline.Before(b.Deadline)
		}
		return a.ID < b.ID
	})
}
