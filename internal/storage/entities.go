package storage

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/tasklist/internal/model"
)

// dateLayout matches JavaScript's Date.prototype.toISOString.
const dateLayout = "2006-01-02T15:04:05.000Z07:00"

// taskRecord is the persisted shape of one task. Order is a pointer because
// records written before manual ordering existed carry no order field.
type taskRecord struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
	Order     *int   `json:"order,omitempty"`
}

func recordFromTask(t model.Task) taskRecord {
	order := t.Order
	return taskRecord{
		ID:        t.ID,
		Text:      t.Text,
		Category:  string(t.Category),
		Completed: t.Completed,
		Date:      t.Date.UTC().Format(dateLayout),
		Order:     &order,
	}
}

func (r taskRecord) toTask() (model.Task, error) {
	date, err := time.Parse(time.RFC3339Nano, r.Date)
	if err != nil {
		return model.Task{}, fmt.Errorf("parse date of task %s: %w", r.ID, err)
	}
	out := model.Task{
		ID:        r.ID,
		Text:      r.Text,
		Category:  model.NormalizeCategory(r.Category),
		Completed: r.Completed,
		Date:      date.UTC(),
	}
	if r.Order != nil {
		out.Order = *r.Order
	}
	return out, nil
}
