package views

import (
	"strings"
	"testing"
	"time"
)

func TestRenderTaskListEmptyState(t *testing.T) {
	out := RenderTaskList(TaskListData{})
	if !strings.Contains(out, EmptyState) {
		t.Fatalf("expected empty state, got %q", out)
	}
}

func TestRenderTaskListRows(t *testing.T) {
	date := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	out := RenderTaskList(TaskListData{
		Rows: []TaskRowData{
			{ID: "a", Text: "Buy milk", Category: "shopping", Date: date},
			{ID: "b", Text: "Ship it", Category: "work", Completed: true, Date: date},
			{ID: "c", Text: "Run", Category: "health", Date: date},
		},
		Cursor:     1,
		Dragging:   "a",
		DropTarget: "c",
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "[ ]") || !strings.Contains(lines[0], "Buy milk") || !strings.Contains(lines[0], "#shopping") {
		t.Fatalf("unexpected first row: %q", lines[0])
	}
	if !strings.Contains(lines[0], "(moving)") {
		t.Fatalf("expected dragged marker on first row: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[x]") || !strings.Contains(lines[1], ">") {
		t.Fatalf("expected completed row under cursor: %q", lines[1])
	}
	if !strings.Contains(lines[2], "<- drop here") {
		t.Fatalf("expected drop marker on last row: %q", lines[2])
	}
	if !strings.Contains(out, FormatDate(date)) {
		t.Fatalf("expected formatted date in %q", out)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("expected empty string for zero date, got %q", got)
	}
	local := time.Date(2025, 3, 7, 10, 0, 0, 0, time.Local)
	if got := FormatDate(local); got != "Mar 7, 2025" {
		t.Fatalf("unexpected date format: %q", got)
	}
}

func TestRenderStatsAndFilterBar(t *testing.T) {
	if got := RenderStats(StatsData{Total: 3, Completed: 1, Pending: 2}); got != "Total: 3 | Completed: 1 | Pending: 2" {
		t.Fatalf("unexpected stats line: %q", got)
	}
	bar := RenderFilterBar(FilterBarData{Status: "active", Category: "all", Search: "milk"})
	if !strings.Contains(bar, "show: active") || !strings.Contains(bar, `search: "milk"`) {
		t.Fatalf("unexpected filter bar: %q", bar)
	}
	if strings.Contains(RenderFilterBar(FilterBarData{Status: "all", Category: "all"}), "search") {
		t.Fatal("search segment should be hidden when empty")
	}
}

func TestRenderAppIncludesSections(t *testing.T) {
	for _, dark := range []bool{false, true} {
		out := RenderApp(AppData{
			Header:     "tasklist",
			LeftPane:   "rows",
			RightPane:  "help",
			StatusLine: "status: saved",
			Footer:     "q quit",
			Dark:       dark,
		})
		for _, want := range []string{"tasklist", "rows", "help", "status: saved", "q quit"} {
			if !strings.Contains(out, want) {
				t.Fatalf("dark=%v: expected %q in output %q", dark, want, out)
			}
		}
	}
}

func TestRenderMarkdownFallsBackOnEmpty(t *testing.T) {
	if RenderMarkdown("   ", true) != "" {
		t.Fatal("expected empty output for blank markdown")
	}
	if RenderMarkdown("# Keys", false) == "" {
		t.Fatal("expected rendered markdown")
	}
}

func TestStatusStyleFollowsErrorFlag(t *testing.T) {
	for _, dark := range []bool{false, true} {
		theme := ThemeFor(dark)
		if got := theme.statusStyle(false).GetForeground(); got != theme.Status.GetForeground() {
			t.Fatalf("dark=%v: info status uses %v", dark, got)
		}
		if got := theme.statusStyle(true).GetForeground(); got != theme.Error.GetForeground() {
			t.Fatalf("dark=%v: error status uses %v", dark, got)
		}
	}
	out := RenderApp(AppData{Header: "tasklist", StatusLine: "status: added: fix error page"})
	if !strings.Contains(out, "added: fix error page") {
		t.Fatalf("expected status in output %q", out)
	}
}
