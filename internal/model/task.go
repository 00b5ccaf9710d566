package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTask = errors.New("model: invalid task")

type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Categories lists the built-in category tags in display order.
func Categories() []Category {
	return []Category{CategoryPersonal, CategoryWork, CategoryShopping, CategoryHealth, CategoryOther}
}

// NormalizeCategory trims and lowercases raw, falling back to personal when empty.
func NormalizeCategory(raw string) Category {
	c := strings.ToLower(strings.TrimSpace(raw))
	if c == "" {
		return CategoryPersonal
	}
	return Category(c)
}

type Task struct {
	ID        string
	Text      string
	Category  Category
	Completed bool
	Date      time.Time
	Order     int
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTask)
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("%w: text is required for %s", ErrInvalidTask, t.ID)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required for %s", ErrInvalidTask, t.ID)
	}
	return nil
}

// CleanText returns the trimmed text and whether it is usable as task text.
func CleanText(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	return text, text != ""
}
