package storage

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sandeepkv93/tasklist/internal/model"
)

//go:embed schema/tasks.schema.json
var tasksSchema string

const tasksSchemaURL = "https://tasklist.local/schema/tasks.schema.json"

// TaskRepository persists the whole task collection as one JSON document
// and the theme flag as a boolean string.
type TaskRepository struct {
	kv     KV
	schema *jsonschema.Schema
}

func NewTaskRepository(kv KV) (*TaskRepository, error) {
	if kv == nil {
		return nil, errors.New("storage: nil kv")
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(tasksSchemaURL, strings.NewReader(tasksSchema)); err != nil {
		return nil, fmt.Errorf("add tasks schema: %w", err)
	}
	schema, err := compiler.Compile(tasksSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile tasks schema: %w", err)
	}
	return &TaskRepository{kv: kv, schema: schema}, nil
}

// LoadTasks reads the persisted collection. A missing key yields an empty
// collection. Records without an order are migrated once and written back.
// Ids must be unique across the document.
func (r *TaskRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	raw, err := r.kv.Get(ctx, TasksKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	if strings.TrimSpace(raw) == "" || strings.TrimSpace(raw) == "null" {
		return []model.Task{}, nil
	}
	if err := r.validate(raw); err != nil {
		return nil, err
	}

	var records []taskRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	migrated := assignLegacyOrder(records)

	out := make([]model.Task, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		task, convErr := rec.toTask()
		if convErr != nil {
			return nil, convErr
		}
		if vErr := task.Validate(); vErr != nil {
			return nil, vErr
		}
		if _, dup := seen[task.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", model.ErrInvalidTask, task.ID)
		}
		seen[task.ID] = struct{}{}
		out = append(out, task)
	}
	if migrated {
		if err := r.SaveTasks(ctx, out); err != nil {
			return nil, fmt.Errorf("persist order migration: %w", err)
		}
	}
	return out, nil
}

// SaveTasks overwrites the persisted collection.
func (r *TaskRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, recordFromTask(t))
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := r.kv.Set(ctx, TasksKey, string(payload)); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

func (r *TaskRepository) LoadDarkTheme(ctx context.Context) (bool, error) {
	raw, err := r.kv.Get(ctx, ThemeKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read theme: %w", err)
	}
	return raw == "true", nil
}

func (r *TaskRepository) SaveDarkTheme(ctx context.Context, dark bool) error {
	value := "false"
	if dark {
		value = "true"
	}
	if err := r.kv.Set(ctx, ThemeKey, value); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

func (r *TaskRepository) validate(raw string) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode tasks: %w", err)
	}
	if err := r.schema.Validate(doc); err != nil {
		return fmt.Errorf("validate tasks: %w", err)
	}
	return nil
}

// assignLegacyOrder gives every record lacking an order a position after the
// highest existing order, newest first. It reports whether anything changed.
func assignLegacyOrder(records []taskRecord) bool {
	legacy := make([]int, 0)
	next := 0
	hasOrder := false
	for i, rec := range records {
		if rec.Order == nil {
			legacy = append(legacy, i)
			continue
		}
		if !hasOrder || *rec.Order+1 > next {
			next = *rec.Order + 1
			hasOrder = true
		}
	}
	if len(legacy) == 0 {
		return false
	}
	sort.SliceStable(legacy, func(a, b int) bool {
		return recordDate(records[legacy[a]]).After(recordDate(records[legacy[b]]))
	})
	for _, idx := range legacy {
		order := next
		records[idx].Order = &order
		next++
	}
	return true
}

func recordDate(rec taskRecord) time.Time {
	tm, err := time.Parse(time.RFC3339Nano, rec.Date)
	if err != nil {
		return time.Time{}
	}
	return tm
}
