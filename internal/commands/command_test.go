package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/tasklist/internal/filter"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk #shopping", TypeAdd},
		{"edit 2 call mom", TypeEdit},
		{"delete 1", TypeDelete},
		{"DONE 3", TypeDone},
		{"filter active", TypeFilter},
		{"category work", TypeCategory},
		{"search milk", TypeSearch},
		{"search", TypeSearch},
		{"/theme", TypeTheme},
		{"clear", TypeClear},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddCategoryTag(t *testing.T) {
	cmd, err := Parse("add  Buy   milk #Shopping")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Text != "Buy   milk" || cmd.Add.Category != "shopping" {
		t.Fatalf("unexpected add args: %+v", cmd.Add)
	}

	cmd, err = Parse("add pay #3 invoice")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Text != "pay #3 invoice" || cmd.Add.Category != "" {
		t.Fatalf("only a trailing tag is a category: %+v", cmd.Add)
	}
}

func TestSplitTaskInput(t *testing.T) {
	cases := []struct {
		in, text, category string
	}{
		{"  Buy   milk  ", "Buy   milk", ""},
		{"Call room #101", "Call room #101", ""},
		{"Call room #101 #Work", "Call room #101", "work"},
		{"tidy\t#home-office", "tidy", "home-office"},
		{"#work", "", "work"},
		{"C# notes", "C# notes", ""},
		{"#", "#", ""},
	}
	for _, tc := range cases {
		text, category := SplitTaskInput(tc.in)
		if text != tc.text || category != tc.category {
			t.Fatalf("SplitTaskInput(%q) = (%q, %q), want (%q, %q)", tc.in, text, category, tc.text, tc.category)
		}
	}
}

func TestParseEditArgs(t *testing.T) {
	cmd, err := Parse("edit 4 write report #work")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Edit.Row != 4 || cmd.Edit.Text != "write report" || cmd.Edit.Category != "work" {
		t.Fatalf("unexpected edit args: %+v", cmd.Edit)
	}

	cmd, err = Parse("edit 2 room  #101")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Edit.Row != 2 || cmd.Edit.Text != "room  #101" || cmd.Edit.Category != "" {
		t.Fatalf("unexpected edit args: %+v", cmd.Edit)
	}
}

func TestParseFilterAndCategory(t *testing.T) {
	cmd, err := Parse("filter Completed")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Filter.Status != filter.StatusCompleted {
		t.Fatalf("unexpected status: %s", cmd.Filter.Status)
	}

	cmd, err = Parse("category #Health")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Category.Name != "health" {
		t.Fatalf("unexpected category: %s", cmd.Category.Name)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	cases := []string{
		"add",
		"add #work",
		"edit 1",
		"edit x new text",
		"delete",
		"delete 0",
		"done -2",
		"done 1 2",
		"filter",
		"filter done",
		"category",
		"theme dark",
		"clear all",
	}
	for _, in := range cases {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument error, got %v", in, err)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "/", " / "} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input error, got %v", in, err)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/snooze overdue 2 days")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/done 2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Done: func(a RowArgs) (Result, error) {
			called = true
			if a.Row != 2 {
				t.Fatalf("unexpected row: %d", a.Row)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteNoArgCommands(t *testing.T) {
	calls := 0
	handlers := Handlers{
		Theme: func() (Result, error) { calls++; return Result{}, nil },
		Clear: func() (Result, error) { calls++; return Result{}, nil },
	}
	for _, in := range []string{"theme", "clear"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		if _, err := Execute(cmd, handlers); err != nil {
			t.Fatalf("execute %q failed: %v", in, err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected 2 handler calls, got %d", calls)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("search milk")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}

func TestExecuteUnknownType(t *testing.T) {
	_, err := Execute(Command{Type: "snooze"}, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
