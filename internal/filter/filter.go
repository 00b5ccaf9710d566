// Package filter derives the displayed task sequence from the full
// collection. Nothing here mutates its input.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sandeepkv93/tasklist/internal/model"
)

type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

func Statuses() []Status {
	return []Status{StatusAll, StatusActive, StatusCompleted}
}

func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusAll, StatusActive, StatusCompleted:
		return s, nil
	case "":
		return StatusAll, nil
	default:
		return "", fmt.Errorf("filter: unknown status %q", raw)
	}
}

// Next cycles all -> active -> completed -> all.
func (s Status) Next() Status {
	switch s {
	case StatusAll:
		return StatusActive
	case StatusActive:
		return StatusCompleted
	default:
		return StatusAll
	}
}

type Criteria struct {
	Status   Status
	Category string
	Search   string
}

func DefaultCriteria() Criteria {
	return Criteria{Status: StatusAll, Category: CategoryAll}
}

// IsActive reports whether any criterion narrows the view.
func (c Criteria) IsActive() bool {
	return (c.Status != "" && c.Status != StatusAll) ||
		(c.Category != "" && c.Category != CategoryAll) ||
		c.Search != ""
}

func (c Criteria) Matches(t model.Task) bool {
	switch c.Status {
	case StatusActive:
		if t.Completed {
			return false
		}
	case StatusCompleted:
		if !t.Completed {
			return false
		}
	}

	if c.Category != "" && c.Category != CategoryAll && string(t.Category) != c.Category {
		return false
	}

	if c.Search != "" {
		if !strings.Contains(strings.ToLower(t.Text), strings.ToLower(c.Search)) {
			return false
		}
	}
	return true
}

// Apply returns the matching tasks sorted ascending by order. Ties keep their
// collection order.
func Apply(tasks []model.Task, c Criteria) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// ComputeStats counts over the full collection, ignoring any criteria.
func ComputeStats(tasks []model.Task) Stats {
	var s Stats
	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	return s
}
