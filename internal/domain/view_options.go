package domain

import (
	"fmt"
	"strings"
)

// FilterStatus selects tasks by completion state in a view.
type FilterStatus string

const (
	FilterAll        FilterStatus = "all"
	FilterIncomplete FilterStatus = "incomplete"
	FilterCompleted  FilterStatus = "completed"
)

// ParseFilterStatus parses a user-supplied status filter.
// An empty string means FilterAll.
func ParseFilterStatus(s string) (FilterStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FilterAll):
		return FilterAll, nil
	case string(FilterIncomplete):
		return FilterIncomplete, nil
	case string(FilterCompleted):
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("invalid status filter %q: must be one of all, incomplete, completed", s)
	}
}

// ViewOptions represents the filter and search criteria for a task view.
// Course is matched case-insensitively as a substring when non-empty.
type ViewOptions struct {
	Status FilterStatus
	Course string
}
